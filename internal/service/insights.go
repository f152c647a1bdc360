package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sammeh543/CycleTrackApp-sub001/internal/cycle"
	"github.com/sammeh543/CycleTrackApp-sub001/internal/storage"
)

// InsightsService assembles read-only snapshots from storage and runs the
// cycle engine over them. All derived values are recomputed per call; the
// engine itself holds no state.
type InsightsService struct {
	flow     storage.FlowRepository
	cycles   storage.CycleRepository
	settings storage.SettingsRepository
}

func NewInsightsService(flow storage.FlowRepository, cycles storage.CycleRepository, settings storage.SettingsRepository) *InsightsService {
	return &InsightsService{flow: flow, cycles: cycles, settings: settings}
}

// Snapshot loads a consistent engine input for the user.
func (s *InsightsService) Snapshot(ctx context.Context, userID string) (cycle.Snapshot, error) {
	logs, err := s.flow.ListFlowLogs(ctx, userID)
	if err != nil {
		return cycle.Snapshot{}, fmt.Errorf("insights: failed to load flow logs: %w", err)
	}
	records, err := s.cycles.ListCycleRecords(ctx, userID)
	if err != nil {
		return cycle.Snapshot{}, fmt.Errorf("insights: failed to load cycle records: %w", err)
	}
	settings, err := GetSettings(ctx, s.settings, userID)
	if err != nil {
		return cycle.Snapshot{}, fmt.Errorf("insights: failed to load settings: %w", err)
	}

	return cycle.Snapshot{
		Entries:  FlowEntries(logs),
		Settings: EngineSettings(settings),
		Ongoing:  OngoingCycle(records),
	}, nil
}

// StatsResponse is the dashboard payload. Empty date strings mean "unknown".
type StatsResponse struct {
	CycleLength        int    `json:"cycle_length"`
	PeriodLength       int    `json:"period_length"`
	CycleDay           int    `json:"cycle_day"`
	Phase              string `json:"phase"`
	LastPeriodStart    string `json:"last_period_start,omitempty"`
	NextPeriodStart    string `json:"next_period_start,omitempty"`
	OvulationDate      string `json:"ovulation_date,omitempty"`
	FertileWindowStart string `json:"fertile_window_start,omitempty"`
	FertileWindowEnd   string `json:"fertile_window_end,omitempty"`
}

func (s *InsightsService) Stats(ctx context.Context, userID string, now time.Time) (StatsResponse, error) {
	snap, err := s.Snapshot(ctx, userID)
	if err != nil {
		return StatsResponse{}, err
	}
	summary := cycle.Summarize(snap, now)
	return StatsResponse{
		CycleLength:        summary.Cycle,
		PeriodLength:       summary.Period,
		CycleDay:           summary.CycleDay,
		Phase:              string(summary.Phase),
		LastPeriodStart:    formatDate(summary.LastPeriodStart),
		NextPeriodStart:    formatDate(summary.NextPeriodStart),
		OvulationDate:      formatDate(summary.OvulationDate),
		FertileWindowStart: formatDate(summary.FertileWindowStart),
		FertileWindowEnd:   formatDate(summary.FertileWindowEnd),
	}, nil
}

// CalendarMonth annotates every day of month ("2006-01"), consistent with
// DayDetail for the same dates.
func (s *InsightsService) CalendarMonth(ctx context.Context, userID, month string, now time.Time) ([]cycle.DayStatus, error) {
	first, err := time.Parse("2006-01", month)
	if err != nil {
		return nil, fmt.Errorf("insights: invalid month %q: %w", month, err)
	}
	snap, err := s.Snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}
	last := first.AddDate(0, 1, -1)
	return cycle.Annotate(snap, first, last, now), nil
}

func (s *InsightsService) DayDetail(ctx context.Context, userID, date string, now time.Time) (cycle.DayStatus, error) {
	day, err := cycle.ParseDate(date)
	if err != nil {
		return cycle.DayStatus{}, fmt.Errorf("insights: invalid date %q: %w", date, err)
	}
	snap, err := s.Snapshot(ctx, userID)
	if err != nil {
		return cycle.DayStatus{}, err
	}
	return cycle.Day(snap, day, now), nil
}

// PredictedWindow is one upcoming projected period for display.
type PredictedWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func (s *InsightsService) Upcoming(ctx context.Context, userID string, now time.Time) ([]PredictedWindow, error) {
	snap, err := s.Snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}
	episodes := cycle.Cluster(snap.Entries, snap.Ongoing)
	lengths := cycle.EstimateLengths(episodes, snap.Settings)
	predicted := cycle.Predict(episodes, lengths, cycle.PredictionHorizon, now)

	windows := make([]PredictedWindow, 0, len(predicted))
	for _, ep := range predicted {
		windows = append(windows, PredictedWindow{
			Start: ep.Start.Format(cycle.DateLayout),
			End:   ep.End.Format(cycle.DateLayout),
		})
	}
	return windows, nil
}

// Trend returns the newest inter-episode gaps for the cycle-length chart.
func (s *InsightsService) Trend(ctx context.Context, userID string) ([]int, error) {
	snap, err := s.Snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}
	return cycle.Trend(snap.Entries, snap.Ongoing), nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(cycle.DateLayout)
}
