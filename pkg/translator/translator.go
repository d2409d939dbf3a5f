package translator

import (
	"embed"
	"io/fs"
	"os"
	"path"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

var Translator *i18n.Bundle

//go:embed translation/*.toml
var embeddedTranslations embed.FS

type Config struct {
	// TranslationFolder overrides the embedded translation files when set.
	TranslationFolder  string
	SupportedLanguages []string // List of supported languages
}

const (
	LanguageFr = "fr"
	LanguageEn = "en"
)

func InitTranslator(cfg Config) {
	Translator = i18n.NewBundle(language.English)
	Translator.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	var (
		fsys fs.FS = embeddedTranslations
		dir        = "translation"
	)
	if cfg.TranslationFolder != "" {
		fsys = os.DirFS(cfg.TranslationFolder)
		dir = "."
	}

	// List files in the translation folder
	lstFiles, err := fs.ReadDir(fsys, dir)
	if err != nil {
		zap.L().Error("failed to list translation folder", zap.String("folder", cfg.TranslationFolder), zap.Error(err))
		return
	}

	for _, f := range lstFiles {
		if f.IsDir() || !isSupported(f.Name(), cfg.SupportedLanguages) {
			continue
		}

		// Load the message file into the Translator bundle
		if _, err := Translator.LoadMessageFileFS(fsys, path.Join(dir, f.Name())); err != nil {
			zap.L().Warn("failed to load translation file", zap.String("file", f.Name()), zap.Error(err))
		}
	}
}

// isSupported keeps files whose base name is one of the supported languages.
// An empty list accepts every file.
func isSupported(name string, languages []string) bool {
	if len(languages) == 0 {
		return true
	}
	base := name[:len(name)-len(path.Ext(name))]
	for _, lang := range languages {
		if base == lang {
			return true
		}
	}
	return false
}
