package service

import "github.com/mtlprog/duedate/internal/domain"

// ValidateRequest rejects requests the calculator cannot schedule.
// It runs before any date arithmetic.
func ValidateRequest(req *domain.SubmissionRequest) error {
	// Missing request or zero submit time
	if req == nil || req.SubmitTime.IsZero() {
		return domain.NewInvalidArgument(domain.MsgSubmitTimeMissing)
	}

	// Turnover must be a positive number of working hours
	if req.TurnoverHours <= 0 {
		return domain.NewInvalidArgument(domain.MsgTurnoverNotPositive)
	}

	if req.TurnoverHours > domain.MaxTurnoverHours {
		return domain.NewInvalidArgument(domain.MsgTurnoverTooLarge)
	}

	return nil
}
