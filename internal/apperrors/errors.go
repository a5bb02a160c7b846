package apperrors

import (
	"fmt"
	"net/http"
)

// Kind is one member of the closed set of domain failures. Every error that
// crosses the service boundary is one of these, so the handlers can map it to
// a status code and envelope in a single place.
type Kind string

const (
	UserNotFound       Kind = "USER_NOT_FOUND"
	ReviewNotFound     Kind = "REVIEW_NOT_FOUND"
	ChallengeNotFound  Kind = "CHALLENGE_NOT_FOUND"
	DuplicatedEmail    Kind = "DUPLICATED_EMAIL"
	DuplicatedNickname Kind = "DUPLICATED_NICKNAME"
	InvalidPassword    Kind = "INVALID_PASSWORD"
	InvalidToken       Kind = "INVALID_TOKEN"
	InvalidPermission  Kind = "INVALID_PERMISSION"
	InvalidEmailFormat Kind = "INVALID_EMAIL_FORMAT"
	DatabaseError      Kind = "DATABASE_ERROR"
)

type kindInfo struct {
	status  int
	message string
}

var kinds = map[Kind]kindInfo{
	UserNotFound:       {http.StatusNotFound, "user not found"},
	ReviewNotFound:     {http.StatusNotFound, "review not found"},
	ChallengeNotFound:  {http.StatusNotFound, "challenge not found"},
	DuplicatedEmail:    {http.StatusConflict, "email is already registered"},
	DuplicatedNickname: {http.StatusConflict, "nickname is already registered"},
	InvalidPassword:    {http.StatusUnauthorized, "invalid password"},
	InvalidToken:       {http.StatusUnauthorized, "invalid token"},
	InvalidPermission:  {http.StatusUnauthorized, "permission denied"},
	InvalidEmailFormat: {http.StatusBadRequest, "invalid email format"},
	DatabaseError:      {http.StatusInternalServerError, "database error"},
}

// AppError binds a Kind to an optional overriding message.
type AppError struct {
	Kind    Kind
	Message string
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// New returns an AppError of the given kind with its default message.
func New(kind Kind) *AppError {
	return &AppError{Kind: kind, Message: kinds[kind].message}
}

// Newf returns an AppError of the given kind with a custom message.
func Newf(kind Kind, format string, args ...any) *AppError {
	return &AppError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Status reports the HTTP status bound to the error's kind.
func (e *AppError) Status() int {
	if info, ok := kinds[e.Kind]; ok {
		return info.status
	}
	return http.StatusInternalServerError
}

// Is lets errors.Is match two AppErrors by kind.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && t.Kind == e.Kind
}
