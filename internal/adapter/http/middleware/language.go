package middleware

import (
	"github.com/airtribe-projects/task-manager-api-SSaiPranay/pkg/translator"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

const langKey = "lang"

var languageMatcher = language.NewMatcher([]language.Tag{
	language.English,
	language.French,
})

// LanguageMiddleware resolves Accept-Language to one of the translated
// languages, defaulting to English.
func LanguageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(langKey, matchLanguage(c.GetHeader("Accept-Language")))
		c.Next()
	}
}

func GetLang(c *gin.Context) string {
	if lang, exists := c.Get(langKey); exists {
		if s, ok := lang.(string); ok {
			return s
		}
	}
	return translator.LanguageEn
}

func matchLanguage(header string) string {
	if header == "" {
		return translator.LanguageEn
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return translator.LanguageEn
	}
	_, index, confidence := languageMatcher.Match(tags...)
	if confidence == language.No || index != 1 {
		return translator.LanguageEn
	}
	return translator.LanguageFr
}
