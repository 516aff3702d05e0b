package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/mtlprog/duedate/internal/domain"
	"github.com/mtlprog/duedate/internal/handler/dto"
	"github.com/mtlprog/duedate/internal/middleware"
)

// maxBodyBytes bounds request bodies; a due date request is tiny.
const maxBodyBytes = 1 << 16

// decodeJSONBody decodes exactly one JSON object with no unknown fields
// and nothing after it.
func decodeJSONBody(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("request body must contain a single JSON object")
	}
	return nil
}

// handleCalculateDueDate computes the due date for a submitted issue.
// @Summary Calculate due date
// @Description Normalize the submit time to working hours and add the turnover in working hours
// @Tags due-date
// @Accept json
// @Produce json
// @Param request body dto.CalculateDueDateRequest true "Submit time and turnover"
// @Success 200 {object} dto.DueDateResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /due-date [post]
func (h *Handler) handleCalculateDueDate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req dto.CalculateDueDateRequest
	if err := decodeJSONBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "invalid JSON body")
		return
	}

	// An absent submit time is a validation failure, not a parse failure
	var submission domain.SubmissionRequest
	if req.SubmitTime != "" {
		parsed, err := domain.ParseSubmitTime(req.SubmitTime)
		if err != nil {
			respondDomainError(w, err)
			return
		}
		submission.SubmitTime = parsed
	}
	submission.TurnoverHours = req.TurnoverHours

	due, err := h.calculator.CalculateDueDate(&submission)
	if err != nil {
		slog.Debug("due date request rejected",
			"error", err,
			"request_id", middleware.GetRequestID(r.Context()),
		)
		respondDomainError(w, err)
		return
	}

	normalized := h.calculator.Normalize(submission.SubmitTime)
	respondJSON(w, http.StatusOK, dto.NewDueDateResponse(submission.SubmitTime, normalized, due, submission.TurnoverHours))
}

// handleGetCalendar returns the working calendar in use.
// @Summary Get working calendar
// @Description Get the working hours and work days used for due date calculation
// @Tags calendar
// @Produce json
// @Success 200 {object} dto.CalendarResponse
// @Router /calendar [get]
func (h *Handler) handleGetCalendar(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, dto.NewCalendarResponse(h.calculator.Calendar()))
}
