package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/sammeh543/CycleTrackApp-sub001/internal"
	"github.com/sammeh543/CycleTrackApp-sub001/internal/cycle"
	"github.com/sammeh543/CycleTrackApp-sub001/internal/storage"
)

var validate = validator.New()

type FlowLogRequest struct {
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	Intensity string `json:"intensity" validate:"required,oneof=spotting light medium heavy"`
	Notes     string `json:"notes,omitempty" validate:"omitempty,max=500"`
}

func ValidateFlowLogRequest(body *FlowLogRequest) error {
	return validate.Struct(body)
}

// LogFlow records one day's flow. Storage upserts by (user, date), so
// re-logging a day replaces the earlier entry.
func LogFlow(ctx context.Context, flowRepo storage.FlowRepository, user *internal.User, body *FlowLogRequest) (*internal.FlowLog, error) {
	log := &internal.FlowLog{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Date:      body.Date,
		Intensity: body.Intensity,
		Notes:     body.Notes,
		CreatedAt: time.Now(),
	}
	if err := flowRepo.SaveFlowLog(ctx, log); err != nil {
		return nil, err
	}
	return log, nil
}

// FlowEntries maps stored logs to the engine's read-only entry view.
func FlowEntries(logs []internal.FlowLog) []cycle.Entry {
	entries := make([]cycle.Entry, 0, len(logs))
	for _, l := range logs {
		entries = append(entries, cycle.Entry{
			Date:      l.Date,
			Intensity: cycle.Intensity(l.Intensity),
		})
	}
	return entries
}
