package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/sammeh543/CycleTrackApp-sub001/internal"
	"github.com/sammeh543/CycleTrackApp-sub001/internal/storage"
)

var (
	// ErrCycleInProgress rejects opening a second cycle while one is unclosed.
	ErrCycleInProgress = errors.New("service: a cycle is already in progress")
	// ErrEndBeforeStart rejects closing a cycle before it started.
	ErrEndBeforeStart = errors.New("service: end date is before start date")
)

type CycleStartRequest struct {
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	Notes     string `json:"notes,omitempty" validate:"omitempty,max=500"`
}

type CycleEndRequest struct {
	EndDate string `json:"end_date" validate:"required,datetime=2006-01-02"`
}

func ValidateCycleStartRequest(req *CycleStartRequest) error {
	return validate.Struct(req)
}

func ValidateCycleEndRequest(req *CycleEndRequest) error {
	return validate.Struct(req)
}

// StartCycle opens a new cycle record. While the newest record has no end
// date the period counts as ongoing, which the prediction engine uses to
// keep the episode unterminated.
func StartCycle(ctx context.Context, cycleRepo storage.CycleRepository, user *internal.User, req *CycleStartRequest) (*internal.CycleRecord, error) {
	records, err := cycleRepo.ListCycleRecords(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if n := len(records); n > 0 && records[n-1].EndDate == nil {
		return nil, ErrCycleInProgress
	}

	rec := &internal.CycleRecord{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		StartDate: req.StartDate,
		Notes:     req.Notes,
		CreatedAt: time.Now(),
	}
	if err := cycleRepo.SaveCycleRecord(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// EndCycle closes an open cycle record.
func EndCycle(ctx context.Context, cycleRepo storage.CycleRepository, user *internal.User, id string, req *CycleEndRequest) (*internal.CycleRecord, error) {
	rec, err := cycleRepo.GetCycleRecord(ctx, user.ID, id)
	if err != nil {
		return nil, err
	}
	if req.EndDate < rec.StartDate {
		return nil, ErrEndBeforeStart
	}

	end := req.EndDate
	rec.EndDate = &end
	if err := cycleRepo.SaveCycleRecord(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// OngoingCycle reports whether the user's period should be treated as still
// being logged: true when no cycle record exists yet (nothing was ever
// explicitly closed) or when the newest record has no end date.
func OngoingCycle(records []internal.CycleRecord) bool {
	if len(records) == 0 {
		return true
	}
	return records[len(records)-1].EndDate == nil
}
