package cycle

import "time"

// Annotate composes clustering, estimation, prediction and classification
// into one per-day status per date in [from, to]. The calendar grid, the
// day detail view and the dashboard all go through this single entry point,
// so a batch result for a day can never diverge from a single-day query.
func Annotate(snap Snapshot, from, to time.Time, today time.Time) []DayStatus {
	from = dateOnly(from)
	to = dateOnly(to)
	if to.Before(from) {
		return []DayStatus{}
	}

	episodes := Cluster(snap.Entries, snap.Ongoing)
	lengths := EstimateLengths(episodes, snap.Settings)
	predicted := Predict(episodes, lengths, PredictionHorizon, today)

	spotting := make(map[string]bool, len(snap.Entries))
	logged := make(map[string]bool, len(snap.Entries))
	for _, e := range snap.Entries {
		d, err := ParseDate(e.Date)
		if err != nil {
			continue
		}
		key := d.Format(DateLayout)
		logged[key] = true
		if e.Intensity == IntensitySpotting {
			spotting[key] = true
		}
	}

	days := make([]DayStatus, 0, daysBetween(from, to)+1)
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		key := day.Format(DateLayout)
		days = append(days, DayStatus{
			Date:        key,
			PhaseResult: Classify(day, snap.Entries, episodes, predicted, lengths),
			Spotting:    spotting[key],
			Logged:      logged[key],
		})
	}
	return days
}

// Day is the single-date form of Annotate and shares its logic exactly.
func Day(snap Snapshot, date time.Time, today time.Time) DayStatus {
	return Annotate(snap, date, date, today)[0]
}

// Summary is the dashboard view of the current cycle, recomputed on demand.
// Zero times mean "unknown" (insufficient history).
type Summary struct {
	Lengths
	CycleDay           int       `json:"cycle_day"` // 1-based; 0 when unknown
	Phase              Phase     `json:"phase"`
	LastPeriodStart    time.Time `json:"last_period_start"`
	NextPeriodStart    time.Time `json:"next_period_start"`
	OvulationDate      time.Time `json:"ovulation_date"`
	FertileWindowStart time.Time `json:"fertile_window_start"`
	FertileWindowEnd   time.Time `json:"fertile_window_end"`
}

// Summarize derives the current-cycle summary for today.
func Summarize(snap Snapshot, today time.Time) Summary {
	today = dateOnly(today)
	episodes := Cluster(snap.Entries, snap.Ongoing)
	lengths := EstimateLengths(episodes, snap.Settings)
	predicted := Predict(episodes, lengths, PredictionHorizon, today)

	s := Summary{Lengths: lengths}
	s.Phase = Classify(today, snap.Entries, episodes, predicted, lengths).Phase

	if len(episodes) > 0 {
		last := episodes[len(episodes)-1]
		s.LastPeriodStart = last.Start
		if !today.Before(last.Start) {
			s.CycleDay = daysBetween(last.Start, today) + 1
		}
		ovulationDay := lengths.Cycle - LutealPhaseDays
		s.OvulationDate = last.Start.AddDate(0, 0, ovulationDay)
		s.FertileWindowStart = s.OvulationDate.AddDate(0, 0, -FertileWindowLeadDays)
		s.FertileWindowEnd = s.OvulationDate.AddDate(0, 0, FertileWindowTrailDays)
	}
	if len(predicted) > 0 {
		s.NextPeriodStart = predicted[0].Start
	}
	return s
}

// Trend returns the newest inter-episode start gaps (at most
// MaxCycleGapSamples), oldest first, for the cycle-length trend chart.
func Trend(entries []Entry, ongoing bool) []int {
	episodes := Cluster(entries, ongoing)
	if len(episodes) < 2 {
		return []int{}
	}
	gaps := make([]int, 0, len(episodes)-1)
	for i := 1; i < len(episodes); i++ {
		gaps = append(gaps, daysBetween(episodes[i-1].Start, episodes[i].Start))
	}
	if len(gaps) > MaxCycleGapSamples {
		gaps = gaps[len(gaps)-MaxCycleGapSamples:]
	}
	return gaps
}
