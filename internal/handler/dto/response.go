package dto

import (
	"time"

	"github.com/mtlprog/duedate/internal/domain"
)

// wallClockLayout renders timestamps without a zone; the calendar has none.
const wallClockLayout = "2006-01-02T15:04:05"

// DueDateResponse represents the response for POST /api/v1/due-date.
type DueDateResponse struct {
	SubmitTime           string `json:"submit_time"`
	NormalizedSubmitTime string `json:"normalized_submit_time"`
	DueDate              string `json:"due_date"`
	TurnoverHours        int    `json:"turnover_hours"`
}

// NewDueDateResponse builds a DueDateResponse.
func NewDueDateResponse(submit, normalized, due time.Time, turnoverHours int) DueDateResponse {
	return DueDateResponse{
		SubmitTime:           submit.Format(wallClockLayout),
		NormalizedSubmitTime: normalized.Format(wallClockLayout),
		DueDate:              due.Format(wallClockLayout),
		TurnoverHours:        turnoverHours,
	}
}

// CalendarResponse represents the response for GET /api/v1/calendar.
type CalendarResponse struct {
	StartHour    int      `json:"start_hour"`
	EndHour      int      `json:"end_hour"`
	HoursPerDay  int      `json:"hours_per_day"`
	HoursPerWeek int      `json:"hours_per_week"`
	WorkDays     []string `json:"work_days"`
}

// NewCalendarResponse converts a domain calendar.
func NewCalendarResponse(cal domain.Calendar) CalendarResponse {
	workDays := make([]string, 0, domain.WorkDaysPerWeek)
	for day := time.Monday; day <= time.Friday; day++ {
		workDays = append(workDays, day.String())
	}

	return CalendarResponse{
		StartHour:    cal.StartHour,
		EndHour:      cal.EndHour,
		HoursPerDay:  cal.HoursPerDay(),
		HoursPerWeek: cal.HoursPerWeek(),
		WorkDays:     workDays,
	}
}
