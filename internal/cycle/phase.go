package cycle

import "time"

// Classify determines the cycle phase for an arbitrary date. First match
// wins:
//
//  1. a logged, non-spotting entry on the date -> period (actual);
//  2. a day inside a real episode span -> period (actual), covering unlogged
//     days bridged by the episode gap rule;
//  3. a day inside a predicted episode -> period (predicted); an actual log
//     always wins over a coincidentally matching prediction;
//  4. otherwise phase arithmetic against the anchor, the most recent episode
//     starting on or before the date. With no anchor the result is
//     follicular, the optimistic insufficient-history default.
//
// The arithmetic places ovulation LutealPhaseDays before the cycle's end
// (ovulationDay = cycle - LutealPhaseDays) with a one-day band either side.
// An anchor older than a full cycle is stale: rather than rolling into a
// second unconfirmed cycle the day is clamped to luteal.
//
// IsFertile is computed against the same anchor and forced false on period
// days.
func Classify(date time.Time, entries []Entry, episodes, predicted []Episode, lengths Lengths) PhaseResult {
	day := dateOnly(date)

	for _, e := range entries {
		if e.Intensity == IntensitySpotting {
			continue
		}
		d, err := ParseDate(e.Date)
		if err != nil {
			continue
		}
		if d.Equal(day) {
			return PhaseResult{Phase: PhasePeriod, IsPeriod: true}
		}
	}

	for _, ep := range episodes {
		if ep.Contains(day) {
			return PhaseResult{Phase: PhasePeriod, IsPeriod: true}
		}
	}

	for _, ep := range predicted {
		if ep.Contains(day) {
			return PhaseResult{Phase: PhasePeriod, IsPredictedPeriod: true}
		}
	}

	anchor, ok := anchorFor(day, episodes)
	if !ok {
		return PhaseResult{Phase: PhaseFollicular}
	}

	offset := daysBetween(anchor.Start, day)
	ovulationDay := lengths.Cycle - LutealPhaseDays

	var phase Phase
	switch {
	case offset >= lengths.Cycle:
		phase = PhaseLuteal
	case offset < lengths.Period:
		phase = PhasePeriod
	case offset < ovulationDay-1:
		phase = PhaseFollicular
	case offset <= ovulationDay+1:
		phase = PhaseOvulation
	default:
		phase = PhaseLuteal
	}

	result := PhaseResult{Phase: phase}
	if phase != PhasePeriod {
		result.IsFertile = InFertileWindow(day, anchor.Start, lengths)
	}
	return result
}

// anchorFor returns the most recent episode whose start is on or before day.
func anchorFor(day time.Time, episodes []Episode) (Episode, bool) {
	for i := len(episodes) - 1; i >= 0; i-- {
		if !episodes[i].Start.After(day) {
			return episodes[i], true
		}
	}
	return Episode{}, false
}
