package apierrors_test

import (
	"testing"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/RIVAL231/unthinkable-smart-task-planner/pkg/apierrors"
	"github.com/RIVAL231/unthinkable-smart-task-planner/pkg/translator"
)

func TestMain(m *testing.M) {
	// Initialize minimal translator for tests
	translator.Translator = i18n.NewBundle(language.English)
	err := translator.Translator.AddMessages(language.English,
		&i18n.Message{ID: "test_key", Other: "Test message"},
		&i18n.Message{ID: apierrors.MsgValidationError, Other: "Validation error"},
	)
	if err != nil {
		return
	}
	m.Run()
}

func TestCreateError_ReturnsJsonErr(t *testing.T) {
	err := apierrors.CreateError("test_key", "en")
	assert.False(t, err.Success)
	assert.Equal(t, "Test message", err.ErrDetails.Message)
	assert.Empty(t, err.ErrDetails.Details)
}

func TestCreateValidationError_CarriesDetails(t *testing.T) {
	err := apierrors.CreateValidationError("en", []apierrors.FieldError{
		{Field: "goalText", Message: "goalText must be at least 10 characters"},
	})
	assert.False(t, err.Success)
	assert.Equal(t, "Validation error", err.ErrDetails.Message)
	assert.Len(t, err.ErrDetails.Details, 1)
	assert.Equal(t, "goalText", err.ErrDetails.Details[0].Field)
}

func TestGetTransErrorMsg_ReturnsTranslation(t *testing.T) {
	msg := apierrors.GetTransErrorMsg("test_key", "en")
	assert.Equal(t, "Test message", msg)
}

func TestGetTransErrorMsg_FallbackToKey(t *testing.T) {
	// No translation exists for "unknown_key"
	msg := apierrors.GetTransErrorMsg("unknown_key", "en")
	assert.Equal(t, "unknown_key", msg)
}

func TestJsonErr_ErrorMethod(t *testing.T) {
	err := apierrors.CreateError("test_key", "en")
	assert.Equal(t, "Message: Test message", err.Error())
}
