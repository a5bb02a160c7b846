package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindStatusMapping(t *testing.T) {
	cases := map[Kind]int{
		UserNotFound:       http.StatusNotFound,
		ReviewNotFound:     http.StatusNotFound,
		ChallengeNotFound:  http.StatusNotFound,
		DuplicatedEmail:    http.StatusConflict,
		DuplicatedNickname: http.StatusConflict,
		InvalidPassword:    http.StatusUnauthorized,
		InvalidToken:       http.StatusUnauthorized,
		InvalidPermission:  http.StatusUnauthorized,
		InvalidEmailFormat: http.StatusBadRequest,
		DatabaseError:      http.StatusInternalServerError,
	}

	for kind, status := range cases {
		assert.Equal(t, status, New(kind).Status(), "status for %s", kind)
	}
}

func TestDefaultMessages(t *testing.T) {
	err := New(DuplicatedEmail)
	assert.Equal(t, "email is already registered", err.Message)
	assert.Equal(t, "DUPLICATED_EMAIL: email is already registered", err.Error())
}

func TestNewfOverridesMessage(t *testing.T) {
	err := Newf(DuplicatedNickname, "nickname %q is taken", "bob")
	assert.Equal(t, `nickname "bob" is taken`, err.Message)
	assert.Equal(t, http.StatusConflict, err.Status())
}

func TestErrorsIsMatchesByKind(t *testing.T) {
	wrapped := fmt.Errorf("saving user: %w", New(DuplicatedEmail))
	assert.True(t, errors.Is(wrapped, New(DuplicatedEmail)))
	assert.False(t, errors.Is(wrapped, New(DuplicatedNickname)))

	var appErr *AppError
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, DuplicatedEmail, appErr.Kind)
}
