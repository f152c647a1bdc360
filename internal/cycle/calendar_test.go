package cycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func januarySnapshot() Snapshot {
	return Snapshot{
		Entries: append(
			flowDays(IntensityMedium,
				"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04", "2024-01-05",
				"2024-01-29", "2024-01-30", "2024-01-31", "2024-02-01", "2024-02-02"),
			Entry{Date: "2024-01-20", Intensity: IntensitySpotting},
		),
	}
}

func TestAnnotateCoversEveryDayInRange(t *testing.T) {
	snap := januarySnapshot()
	today := mustParse(t, "2024-02-02")

	days := Annotate(snap, mustParse(t, "2024-01-01"), mustParse(t, "2024-01-31"), today)
	assert.Len(t, days, 31)
	assert.Equal(t, "2024-01-01", days[0].Date)
	assert.Equal(t, "2024-01-31", days[30].Date)

	assert.Equal(t, PhasePeriod, days[0].Phase)
	assert.True(t, days[0].IsPeriod)
	assert.True(t, days[0].Logged)

	// Jan 20 is a spotting day: flagged, logged, but not a period day.
	jan20 := days[19]
	assert.True(t, jan20.Spotting)
	assert.True(t, jan20.Logged)
	assert.False(t, jan20.IsPeriod)
}

// The batch interface must agree with the single-date query for every day.
func TestAnnotateMatchesSingleDayQuery(t *testing.T) {
	snap := januarySnapshot()
	today := mustParse(t, "2024-02-02")

	days := Annotate(snap, mustParse(t, "2024-01-01"), mustParse(t, "2024-03-15"), today)
	for _, d := range days {
		single := Day(snap, mustParse(t, d.Date), today)
		assert.Equal(t, d, single, "calendar and day view diverge on %s", d.Date)
	}
}

func TestAnnotateMarksPredictedWindow(t *testing.T) {
	snap := januarySnapshot()
	today := mustParse(t, "2024-02-05")

	// Third period predicted to start Feb 26 (cycle 28 from Jan 29 start).
	days := Annotate(snap, mustParse(t, "2024-02-26"), mustParse(t, "2024-03-01"), today)
	for _, d := range days {
		assert.True(t, d.IsPredictedPeriod, "day %s", d.Date)
		assert.Equal(t, PhasePeriod, d.Phase)
		assert.False(t, d.IsPeriod)
	}
}

func TestAnnotateEmptyLogStillRenders(t *testing.T) {
	days := Annotate(Snapshot{}, mustParse(t, "2024-04-01"), mustParse(t, "2024-04-30"), mustParse(t, "2024-04-15"))
	assert.Len(t, days, 30)
	for _, d := range days {
		assert.False(t, d.IsPeriod)
		assert.False(t, d.Logged)
	}
	// Defaults: the engine always has something to render.
	assert.Equal(t, PhaseFollicular, days[0].Phase)
}

func TestAnnotateInvertedRange(t *testing.T) {
	days := Annotate(Snapshot{}, mustParse(t, "2024-04-30"), mustParse(t, "2024-04-01"), mustParse(t, "2024-04-15"))
	assert.Empty(t, days)
}

func TestSummarize(t *testing.T) {
	snap := januarySnapshot()
	today := mustParse(t, "2024-02-10")

	s := Summarize(snap, today)
	assert.Equal(t, 28, s.Cycle)
	assert.Equal(t, 5, s.Period)
	assert.Equal(t, "2024-01-29", s.LastPeriodStart.Format(DateLayout))
	assert.Equal(t, 13, s.CycleDay) // Feb 10 is day 13 of the cycle begun Jan 29
	assert.Equal(t, "2024-02-26", s.NextPeriodStart.Format(DateLayout))
	assert.Equal(t, "2024-02-12", s.OvulationDate.Format(DateLayout))
	assert.Equal(t, "2024-02-07", s.FertileWindowStart.Format(DateLayout))
	assert.Equal(t, "2024-02-13", s.FertileWindowEnd.Format(DateLayout))
	assert.Equal(t, PhaseFollicular, s.Phase)
}

func TestSummarizeEmptyLog(t *testing.T) {
	s := Summarize(Snapshot{}, mustParse(t, "2024-04-15"))
	assert.Equal(t, DefaultCycleLength, s.Cycle)
	assert.Equal(t, DefaultPeriodLength, s.Period)
	assert.Equal(t, 0, s.CycleDay)
	assert.True(t, s.LastPeriodStart.IsZero())
	assert.Equal(t, PhaseFollicular, s.Phase)
	// Even with nothing logged the next window projects from today.
	assert.Equal(t, "2024-05-13", s.NextPeriodStart.Format(DateLayout))
}

func TestTrend(t *testing.T) {
	entries := flowDays(IntensityMedium, "2024-01-01", "2024-01-29", "2024-02-27")
	assert.Equal(t, []int{28, 29}, Trend(entries, false))
	assert.Empty(t, Trend(nil, false))
	assert.Empty(t, Trend(flowDays(IntensityMedium, "2024-01-01"), true))
}
