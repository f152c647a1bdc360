package service

import (
	"context"
	"errors"
	"time"

	"github.com/sammeh543/CycleTrackApp-sub001/internal"
	"github.com/sammeh543/CycleTrackApp-sub001/internal/cycle"
	"github.com/sammeh543/CycleTrackApp-sub001/internal/storage"
)

type SettingsRequest struct {
	DefaultCycleLength  *int `json:"default_cycle_length,omitempty" validate:"omitempty,gte=15,lte=60"`
	DefaultPeriodLength *int `json:"default_period_length,omitempty" validate:"omitempty,gte=1,lte=14"`
}

func ValidateSettingsRequest(req *SettingsRequest) error {
	return validate.Struct(req)
}

// UpdateSettings replaces the user's stored defaults. Omitted fields clear
// the corresponding default.
func UpdateSettings(ctx context.Context, settingsRepo storage.SettingsRepository, user *internal.User, req *SettingsRequest) (*internal.UserSettings, error) {
	settings := &internal.UserSettings{
		UserID:              user.ID,
		DefaultCycleLength:  req.DefaultCycleLength,
		DefaultPeriodLength: req.DefaultPeriodLength,
		UpdatedAt:           time.Now(),
	}
	if err := settingsRepo.SaveSettings(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// GetSettings loads the user's settings, falling back to an empty object
// when none were ever saved.
func GetSettings(ctx context.Context, settingsRepo storage.SettingsRepository, userID string) (*internal.UserSettings, error) {
	settings, err := settingsRepo.GetSettings(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return &internal.UserSettings{UserID: userID}, nil
		}
		return nil, err
	}
	return settings, nil
}

// EngineSettings maps stored settings to the engine's view; nil means unset.
func EngineSettings(settings *internal.UserSettings) cycle.Settings {
	out := cycle.Settings{}
	if settings == nil {
		return out
	}
	if settings.DefaultCycleLength != nil {
		out.DefaultCycleLength = *settings.DefaultCycleLength
	}
	if settings.DefaultPeriodLength != nil {
		out.DefaultPeriodLength = *settings.DefaultPeriodLength
	}
	return out
}
