package dto

// CalculateDueDateRequest represents the request body for POST /api/v1/due-date.
type CalculateDueDateRequest struct {
	SubmitTime    string `json:"submit_time"`
	TurnoverHours int    `json:"turnover_hours"`
}
