package roster

import (
	"errors"
	"fmt"
)

// Виды ошибок генерации. Проверяются через errors.Is.
var (
	ErrNotFound             = errors.New("not found")
	ErrConstraintViolation  = errors.New("constraint violation")
	ErrGenerationInProgress = errors.New("roster generation already in progress")
)

// Error несёт вид ошибки и человекочитаемую причину.
type Error struct {
	Kind   error
	Reason string
}

func (e *Error) Error() string { return e.Reason }

func (e *Error) Unwrap() error { return e.Kind }

func notFound(format string, args ...any) error {
	return &Error{Kind: ErrNotFound, Reason: fmt.Sprintf(format, args...)}
}

func violation(format string, args ...any) error {
	return &Error{Kind: ErrConstraintViolation, Reason: fmt.Sprintf(format, args...)}
}

func inProgress(format string, args ...any) error {
	return &Error{Kind: ErrGenerationInProgress, Reason: fmt.Sprintf(format, args...)}
}
