package apierrors

import (
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"go.uber.org/zap"

	"github.com/RIVAL231/unthinkable-smart-task-planner/pkg/translator"
)

// JsonErr is the failure envelope: {"success": false, "error": {...}}.
type JsonErr struct {
	Success    bool `json:"success"`
	ErrDetails Err  `json:"error"`
}

// Err carries the user-visible message plus optional field-level details.
type Err struct {
	Message string       `json:"message"`
	Details []FieldError `json:"details,omitempty"`
}

// FieldError describes one request field that failed validation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error implements the error interface for JsonErr.
func (e JsonErr) Error() string {
	return fmt.Sprintf("Message: %s", e.ErrDetails.Message)
}

// CreateError generates a JsonErr with a translated message.
func CreateError(msgKey string, lang string) JsonErr {
	return CreateErrorWithMessage(GetTransErrorMsg(msgKey, lang))
}

// CreateErrorWithMessage generates a JsonErr around an already-built
// message, for errors that carry their own descriptive text.
func CreateErrorWithMessage(message string) JsonErr {
	return JsonErr{Success: false, ErrDetails: Err{Message: message}}
}

// CreateValidationError generates the validation failure envelope with
// field-level details.
func CreateValidationError(lang string, details []FieldError) JsonErr {
	return JsonErr{
		Success: false,
		ErrDetails: Err{
			Message: GetTransErrorMsg(MsgValidationError, lang),
			Details: details,
		},
	}
}

// GetTransErrorMsg retrieves the translated message for a key.
func GetTransErrorMsg(msgKey string, lang string) string {
	l := i18n.NewLocalizer(translator.Translator, lang, "en")
	m := i18n.LocalizeConfig{}
	m.MessageID = msgKey
	msg, err := l.Localize(&m)
	if err != nil {
		zap.L().Warn("translation not found", zap.String("lang", lang), zap.String("message_id", msgKey), zap.Error(err))
		return msgKey
	}
	return msg
}
