package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthErrorMessageMappedCodes(t *testing.T) {
	codes := []string{
		AuthCodeInvalidCredential,
		AuthCodeUserNotFound,
		AuthCodeWrongPassword,
		AuthCodeEmailInUse,
		AuthCodeWeakPassword,
		AuthCodeInvalidEmail,
		AuthCodeTooManyRequests,
		AuthCodeNetworkFailed,
		AuthCodePopupClosed,
		AuthCodeUserDisabled,
	}

	for _, code := range codes {
		msg := AuthErrorMessage(code)
		assert.NotEmpty(t, msg, "code %s", code)
		assert.NotEqual(t, AuthErrorMessage("auth/definitely-unknown"), msg, "code %s should have its own message", code)
	}
}

func TestAuthErrorMessageUnknownCodeFallsBack(t *testing.T) {
	msg := AuthErrorMessage("auth/some-new-code")
	assert.NotEmpty(t, msg)
	assert.Equal(t, AuthErrorMessage(""), msg)
}
