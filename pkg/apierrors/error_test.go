package apierrors_test

import (
	"net/http"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"tasklist/pkg/apierrors"
	"tasklist/pkg/translator"
)

func TestMain(m *testing.M) {
	translator.InitTranslator(translator.Config{
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageFr},
	})
	os.Exit(m.Run())
}

func TestCreateError_ReturnsJsonErr(t *testing.T) {
	err := apierrors.CreateError(http.StatusNotFound, apierrors.MsgProjectNotFound, translator.LanguageEn)
	assert.Equal(t, http.StatusNotFound, err.ErrDetails.Code)
	assert.Equal(t, "Project not found", err.ErrDetails.Message)
}

func TestCreateError_French(t *testing.T) {
	err := apierrors.CreateError(http.StatusNotFound, apierrors.MsgProjectNotFound, translator.LanguageFr)
	assert.Equal(t, "Projet introuvable", err.ErrDetails.Message)
}

func TestGetTransErrorMsg_UnsupportedLanguageFallsBackToEnglish(t *testing.T) {
	assert.Equal(t, "Invalid id", apierrors.GetTransErrorMsg(apierrors.MsgInvalidTaskID, "de"))
}

func TestGetTransErrorMsg_FallbackToKey(t *testing.T) {
	assert.Equal(t, "unknown_key", apierrors.GetTransErrorMsg("unknown_key", translator.LanguageEn))
}

func TestJsonErr_ErrorMethod(t *testing.T) {
	err := apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, translator.LanguageEn)
	assert.Equal(t, "Code: 400, Message: Invalid task payload", err.Error())
}
