package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type ErrorKind int

const (
	KindValidation ErrorKind = iota + 1
	KindAuthorization
	KindNotFound
	KindConflict
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuthorization:
		return "authorization"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	}
	return "unknown"
}

// Error is what every manager returns for a request-level failure. Msg is
// safe to show to the user; Reason is for logs only.
type Error struct {
	Kind   ErrorKind
	Msg    string
	Reason string
}

func (e *Error) Error() string { return e.Msg }

// Is matches on kind so callers can use errors.Is(err, ErrNotFound).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t == ErrBadAction {
		return e.Kind == KindAuthorization || e.Kind == KindConflict
	}
	if t.Msg == "" {
		return e.Kind == t.Kind
	}
	return e.Kind == t.Kind && e.Msg == t.Msg
}

const badAction = "bad action"

var (
	ErrValidation = &Error{Kind: KindValidation}
	ErrNotFound   = &Error{Kind: KindNotFound}
	// ErrBadAction matches both authorization failures and unmet state
	// preconditions; the user sees the same message for either.
	ErrBadAction = &Error{Kind: KindConflict, Msg: badAction}
	ErrForbidden = &Error{Kind: KindAuthorization}

	ErrInvalidPayment = &Error{Kind: KindValidation, Msg: "invalid payment info"}
	ErrUserNotExist   = &Error{Kind: KindNotFound, Msg: "user does not exist"}
)

func validation(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Msg: fmt.Sprintf(format, args...)}
}

func notFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf(format, args...)}
}

func forbidden(reason string) *Error {
	return &Error{Kind: KindAuthorization, Msg: badAction, Reason: reason}
}

func conflict(reason string) *Error {
	return &Error{Kind: KindConflict, Msg: badAction, Reason: reason}
}

// IsBadAction reports whether err should be shown as the generic message.
func IsBadAction(err error) bool {
	return errors.Is(err, ErrBadAction)
}

// KindOf returns the kind of err, or 0 for infrastructure errors.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
