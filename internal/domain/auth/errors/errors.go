package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind sentinels. An *Error matches its kind with errors.Is.
var (
	ErrValidation     = errors.New("validation error")
	ErrAuthentication = errors.New("authentication error")
	ErrHashing        = errors.New("hashing error")
	ErrDatabase       = errors.New("database error")
)

// Repository-level sentinels. They never cross the transport boundary.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
)

const (
	MsgAlreadyExists      = "Username or email already exists."
	MsgInvalidCredentials = "Invalid username or password"
	MsgInvalidToken       = "Invalid token"
	MsgInternal           = "Internal server error"
	MsgHashing            = "Password processing failed"
)

// Error is the single failure type returned by the auth and study services.
type Error struct {
	Kind error
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool { return target == e.Kind }

func NewValidation(msg string) error {
	return &Error{Kind: ErrValidation, Msg: msg}
}

func NewAuthentication(msg string) error {
	return &Error{Kind: ErrAuthentication, Msg: msg}
}

func WrapAuthentication(err error, msg string) error {
	return &Error{Kind: ErrAuthentication, Msg: msg, Err: err}
}

func WrapHashing(err error, context string) error {
	return &Error{Kind: ErrHashing, Msg: context, Err: err}
}

func WrapDatabase(err error, context string) error {
	return &Error{Kind: ErrDatabase, Msg: context, Err: err}
}

func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

func IsAuthentication(err error) bool {
	return errors.Is(err, ErrAuthentication)
}

func IsHashing(err error) bool {
	return errors.Is(err, ErrHashing)
}

func IsDatabase(err error) bool {
	return errors.Is(err, ErrDatabase)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// Response maps an error to the HTTP status and the message that may be shown
// to the caller. Storage and hashing details are always redacted.
func Response(err error) (int, string) {
	var e *Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError, MsgInternal
	}
	switch e.Kind {
	case ErrValidation:
		return http.StatusBadRequest, e.Msg
	case ErrAuthentication:
		return http.StatusUnauthorized, e.Msg
	case ErrHashing:
		return http.StatusInternalServerError, MsgHashing
	default:
		return http.StatusInternalServerError, MsgInternal
	}
}
