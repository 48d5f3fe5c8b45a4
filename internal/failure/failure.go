package failure

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a Failure.
type Kind int

const (
	KindStorage Kind = iota
	KindNotFound
	KindValidation
	KindDeleteFailed
	KindForbidden
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation_failed"
	case KindDeleteFailed:
		return "delete_failed"
	case KindForbidden:
		return "forbidden"
	default:
		return "storage_failure"
	}
}

// Failure is an error carrying its Kind and a message safe to show to callers.
type Failure struct {
	Kind    Kind
	Message string
	Err     error
}

// Error returns the message followed by the underlying cause, if any.
func (f *Failure) Error() string {
	if f.Err != nil {
		return f.Message + ": " + f.Err.Error()
	}
	return f.Message
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// NotFound returns a Failure for a missing entity.
func NotFound(entity string, id int64) error {
	return &Failure{Kind: KindNotFound, Message: fmt.Sprintf("%s %d not found", entity, id)}
}

// Validation returns a Failure for rejected input.
func Validation(msg string) error {
	return &Failure{Kind: KindValidation, Message: msg}
}

// Validationf formats a validation message.
func Validationf(format string, args ...any) error {
	return Validation(fmt.Sprintf(format, args...))
}

// DeleteFailed wraps a storage rejection raised while deleting entity.
func DeleteFailed(entity string, err error) error {
	return &Failure{
		Kind:    KindDeleteFailed,
		Message: fmt.Sprintf("unable to delete %s, try deleting related records first", entity),
		Err:     err,
	}
}

// Storage wraps an unexpected store error.
func Storage(err error) error {
	if err == nil {
		return nil
	}
	return &Failure{Kind: KindStorage, Message: "storage failure", Err: err}
}

// Forbidden returns a Failure for a rejected request.
func Forbidden(msg string) error {
	return &Failure{Kind: KindForbidden, Message: msg}
}

// KindOf returns the Kind of err. Errors that are not a Failure are storage failures.
func KindOf(err error) Kind {
	var f *Failure
	if errors.As(err, &f) {
		return f.Kind
	}
	return KindStorage
}

// Is reports whether err is a Failure of the given kind.
func Is(err error, kind Kind) bool {
	var f *Failure
	return errors.As(err, &f) && f.Kind == kind
}

// Message returns the caller-facing message of err.
func Message(err error) string {
	var f *Failure
	if errors.As(err, &f) {
		return f.Message
	}
	return "internal server error"
}

// HTTPStatus maps err to a response status code.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindNotFound:
		return http.StatusNotFound
	case KindValidation:
		return http.StatusBadRequest
	case KindDeleteFailed:
		return http.StatusConflict
	case KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
