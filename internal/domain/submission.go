package domain

import (
	"fmt"
	"time"
)

// TimeLayout is the layout used when printing due dates.
const TimeLayout = "2006-01-02 15:04"

// submitTimeLayouts are tried in order when parsing a submit time.
var submitTimeLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	TimeLayout,
}

// SubmissionRequest describes an issue to schedule: when it was submitted
// and how many working hours the turnover allows.
type SubmissionRequest struct {
	SubmitTime    time.Time
	TurnoverHours int
}

// NewSubmissionRequest creates a SubmissionRequest.
func NewSubmissionRequest(submitTime time.Time, turnoverHours int) *SubmissionRequest {
	return &SubmissionRequest{
		SubmitTime:    submitTime,
		TurnoverHours: turnoverHours,
	}
}

// ParseSubmitTime parses a wall-clock timestamp. RFC 3339 input is accepted;
// its offset is dropped and the wall clock kept, since the calendar has no
// timezone semantics.
func ParseSubmitTime(value string) (time.Time, error) {
	for _, layout := range submitTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC), nil
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, value)
}

// FormatDueDate formats t with TimeLayout.
func FormatDueDate(t time.Time) string {
	return t.Format(TimeLayout)
}
