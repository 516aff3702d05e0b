package domain

import (
	"errors"
	"fmt"
	"math"
)

// Domain-specific errors for due date calculation.
var (
	// ErrInvalidArgument is returned for requests the calculator refuses.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidCalendar is returned when a calendar cannot describe a working day.
	ErrInvalidCalendar = errors.New("invalid calendar")

	// ErrInvalidTimeFormat is returned when a submit time string matches no known layout.
	ErrInvalidTimeFormat = errors.New("invalid time format")
)

// User-facing validation messages.
const (
	MsgSubmitTimeMissing   = "Submit time information cannot be null!"
	MsgTurnoverNotPositive = "Turnover cannot be negative or zero!"
	MsgTurnoverTooLarge    = "Turnover cannot exceed 2147483647 hours!"
)

// MaxTurnoverHours bounds the turnover so the whole weeks it spans stay
// well inside the range time.AddDate handles.
const MaxTurnoverHours = math.MaxInt32

// InvalidArgumentError carries a human-readable message and unwraps to
// ErrInvalidArgument.
type InvalidArgumentError struct {
	Message string
}

func (e *InvalidArgumentError) Error() string {
	return e.Message
}

func (e *InvalidArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

// NewInvalidArgument returns an InvalidArgumentError with the given message.
func NewInvalidArgument(message string) error {
	return &InvalidArgumentError{Message: message}
}

func invalidCalendarError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidCalendar, fmt.Sprintf(format, args...))
}
