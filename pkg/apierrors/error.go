package apierrors

import (
	"fmt"

	"github.com/airtribe-projects/task-manager-api-SSaiPranay/pkg/translator"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"go.uber.org/zap"
)

// JsonErr is the error body returned by the API.
type JsonErr struct {
	Code    int    `json:"-"`
	Message string `json:"message"`
}

// Error implements the error interface for JsonErr.
func (e JsonErr) Error() string {
	return fmt.Sprintf("Code: %d, Message: %s", e.Code, e.Message)
}

// CreateError generates a JsonErr with a translated message.
func CreateError(code int, msgKey string, lang string) JsonErr {
	return JsonErr{Code: code, Message: GetTransErrorMsg(msgKey, lang)}
}

// GetTransErrorMsg retrieves the translated message, falling back to the key.
func GetTransErrorMsg(msgKey string, lang string) string {
	if translator.Translator == nil {
		zap.L().Warn("translator not initialised", zap.String("message_id", msgKey))
		return msgKey
	}
	l := i18n.NewLocalizer(translator.Translator, lang, translator.LanguageEn)
	m := i18n.LocalizeConfig{}
	m.MessageID = msgKey
	msg, err := l.Localize(&m)
	if err != nil {
		zap.L().Warn("translation not found", zap.String("lang", lang), zap.String("message_id", msgKey), zap.Error(err))
		return msgKey
	}
	return msg
}
