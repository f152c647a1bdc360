// Package cycle implements the menstrual-cycle inference engine: it
// reconstructs period episodes from daily flow logs, estimates effective
// cycle/period lengths, classifies any calendar date into a cycle phase and
// projects upcoming period and fertile windows.
//
// The package is purely functional. Every operation reads immutable snapshots
// and returns derived values; nothing here performs I/O, holds state or
// blocks, so concurrent calls with the same inputs are safe and idempotent.
package cycle

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-day format used across the engine and the API.
const DateLayout = "2006-01-02"

const (
	// DefaultCycleLength is the last-resort cycle length when neither logged
	// history nor user settings provide one.
	DefaultCycleLength = 28
	// DefaultPeriodLength is the last-resort period length.
	DefaultPeriodLength = 5
	// LutealPhaseDays anchors phase boundaries from the end of the cycle.
	// The luteal phase varies far less between people than the follicular
	// phase, so ovulation is placed LutealPhaseDays before the next period.
	LutealPhaseDays = 14
	// EpisodeGapDays is the largest gap (in days) between flow entries that
	// still extends the same period episode.
	EpisodeGapDays = 2
	// MaxCycleGapSamples bounds how many of the newest start-to-start gaps
	// feed the cycle-length average, limiting the pull of very old data.
	MaxCycleGapSamples = 6
	// PredictionHorizon is how many future cycles Predict projects by default.
	PredictionHorizon = 3
	// FertileWindowLeadDays and FertileWindowTrailDays bound the fertile
	// window around the ovulation day (sperm viability before, one day after).
	FertileWindowLeadDays  = 5
	FertileWindowTrailDays = 1
)

// Intensity is the closed set of flow intensities a day can be logged with.
type Intensity string

const (
	IntensitySpotting Intensity = "spotting"
	IntensityLight    Intensity = "light"
	IntensityMedium   Intensity = "medium"
	IntensityHeavy    Intensity = "heavy"
)

func (i Intensity) Valid() bool {
	switch i {
	case IntensitySpotting, IntensityLight, IntensityMedium, IntensityHeavy:
		return true
	}
	return false
}

// Phase is the closed set of cycle phases.
type Phase string

const (
	PhasePeriod     Phase = "period"
	PhaseFollicular Phase = "follicular"
	PhaseOvulation  Phase = "ovulation"
	PhaseLuteal     Phase = "luteal"
)

// Entry is one dated flow log as the engine sees it. Date uses DateLayout;
// entries with unparsable dates are skipped, never fatal.
type Entry struct {
	Date      string
	Intensity Intensity
}

// Episode is a contiguous run of logged (or forecast) period days.
// Start and End are inclusive date-only times; Start <= End always holds.
type Episode struct {
	Start     time.Time
	End       time.Time
	Predicted bool
	// Ongoing marks the most recent episode when the caller's cycle record
	// has not been explicitly closed. An ongoing episode has no confirmed
	// end, so it is excluded from period-length averaging and from the
	// prediction overlap adjustment.
	Ongoing bool
}

// Contains reports whether day falls inside the episode, inclusive.
func (e Episode) Contains(day time.Time) bool {
	return !day.Before(e.Start) && !day.After(e.End)
}

// Lengths are the effective cycle and period lengths used for all
// predictions, resolved by EstimateLengths' tiered fallback.
type Lengths struct {
	Cycle  int `json:"cycle_length"`
	Period int `json:"period_length"`
}

// Settings mirrors the user's stored defaults. Zero means "not set".
type Settings struct {
	DefaultCycleLength  int
	DefaultPeriodLength int
}

// Validate reports a ValidationError for shapes only a programmer can
// produce. Sparse or messy user data never fails validation.
func (s Settings) Validate() error {
	if s.DefaultCycleLength < 0 {
		return &ValidationError{Field: "DefaultCycleLength", Message: "must not be negative"}
	}
	if s.DefaultPeriodLength < 0 {
		return &ValidationError{Field: "DefaultPeriodLength", Message: "must not be negative"}
	}
	return nil
}

// PhaseResult is the engine's per-date output. It is ephemeral: recomputed on
// demand and never persisted.
type PhaseResult struct {
	Phase             Phase `json:"phase"`
	IsPeriod          bool  `json:"is_period"`
	IsPredictedPeriod bool  `json:"is_predicted_period"`
	IsFertile         bool  `json:"is_fertile"`
}

// DayStatus is one calendar day's annotation for rendering.
type DayStatus struct {
	Date string `json:"date"`
	PhaseResult
	Spotting bool `json:"spotting"`
	Logged   bool `json:"logged"`
}

// Snapshot is the immutable input the engine computes over. Storage owns the
// underlying records; the engine only reads.
type Snapshot struct {
	Entries  []Entry
	Settings Settings
	// Ongoing is the caller-supplied flag marking the most recent episode as
	// still being logged (the matching cycle record has no end date).
	Ongoing bool
}

// ValidationError signals a programmer-error input, such as a settings object
// with impossible values. Real-world sparse data never raises it.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("cycle: invalid %s: %s", e.Field, e.Message)
}

// ParseDate parses a DateLayout calendar day into a date-only UTC time.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return dateOnly(t), nil
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// daysBetween returns b - a in whole days for date-only times.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}
