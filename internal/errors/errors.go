package errors

import (
	"errors"
	"fmt"
)

// Kind classifies an error for the HTTP boundary.
type Kind int

const (
	KindUnknown Kind = iota
	KindUnauthorized
	KindForbidden
	KindBadRequest
	KindNotFound
	KindConflict
)

// Error is a typed service error. Sentinels below cover the common
// cases; New and Newf build ad hoc ones.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the Kind of err, or KindUnknown for untyped errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

var (
	ErrInvalidSession     = New(KindUnauthorized, "invalid or expired session")
	ErrInvalidAuthAttempt = New(KindUnauthorized, "invalid auth attempt")

	ErrIdentifierBlocked  = New(KindForbidden, "temporarily blocked")
	ErrCaptchaFailed      = New(KindForbidden, "captcha verification failed")
	ErrCaptchaRequired    = New(KindForbidden, "captcha verification required")
	ErrStepOutOfOrder     = New(KindForbidden, "previous steps must be verified first")
	ErrTooManyAttempts    = New(KindForbidden, "too many attempts")
	ErrTooManyCodes       = New(KindForbidden, "too many codes issued")
	ErrResendTooSoon      = New(KindForbidden, "code was sent recently")
	ErrTermsNotAccepted   = New(KindForbidden, "terms must be accepted")
	ErrIntentNotVerified  = New(KindForbidden, "verification is not complete")
	ErrIntentConsumed     = New(KindForbidden, "login flow already completed")
	ErrUserAlreadySet     = New(KindForbidden, "user already attached")

	ErrIncorrectCode = New(KindBadRequest, "incorrect code")

	ErrIntentNotFound = New(KindNotFound, "login flow expired or not found")
	ErrUserNotFound   = New(KindNotFound, "user not found")
	ErrGroupNotFound  = New(KindNotFound, "access group not found")
)
