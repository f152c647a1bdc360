package storage

import (
	"context"
	"errors"

	"github.com/sammeh543/CycleTrackApp-sub001/internal"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("storage: not found")

// FlowRepository persists daily flow logs. Saving upserts by (user, date):
// at most one logical entry exists per user per calendar day.
type FlowRepository interface {
	SaveFlowLog(ctx context.Context, log *internal.FlowLog) error
	ListFlowLogs(ctx context.Context, userID string) ([]internal.FlowLog, error)
	DeleteFlowLog(ctx context.Context, userID, id string) error
}

// CycleRepository persists explicit cycle records. The most recent record
// with no end date marks the ongoing period.
type CycleRepository interface {
	SaveCycleRecord(ctx context.Context, rec *internal.CycleRecord) error
	GetCycleRecord(ctx context.Context, userID, id string) (*internal.CycleRecord, error)
	ListCycleRecords(ctx context.Context, userID string) ([]internal.CycleRecord, error)
}

type SymptomRepository interface {
	SaveSymptomLog(ctx context.Context, log *internal.SymptomLog) error
	ListSymptomLogs(ctx context.Context, userID string) ([]internal.SymptomLog, error)
}

// SettingsRepository persists per-user defaults. GetSettings returns
// ErrNotFound when the user never saved any.
type SettingsRepository interface {
	SaveSettings(ctx context.Context, settings *internal.UserSettings) error
	GetSettings(ctx context.Context, userID string) (*internal.UserSettings, error)
}

// Repositories bundles the per-resource interfaces one backend serves.
type Repositories struct {
	Flow     FlowRepository
	Cycles   CycleRepository
	Symptoms SymptomRepository
	Settings SettingsRepository
}
