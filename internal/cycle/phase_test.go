package cycle

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Scenario: the anchor sits at 2024-01-01 with a 28-day cycle and 5-day
// period, so the ovulation day offset is 14 and the fertile window spans
// offsets 9 through 15.
func TestClassifyPhaseBoundaries(t *testing.T) {
	entries := flowDays(IntensityMedium,
		"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04", "2024-01-05")
	episodes := Cluster(entries, false)
	lengths := Lengths{Cycle: 28, Period: 5}
	anchor := mustParse(t, "2024-01-01")

	cases := []struct {
		offset  int
		phase   Phase
		fertile bool
	}{
		{0, PhasePeriod, false},
		{4, PhasePeriod, false},
		{5, PhaseFollicular, false},
		{8, PhaseFollicular, false},
		{9, PhaseFollicular, true},
		{12, PhaseFollicular, true},
		{13, PhaseOvulation, true},
		{14, PhaseOvulation, true},
		{15, PhaseOvulation, true},
		{16, PhaseLuteal, false},
		{27, PhaseLuteal, false},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("offset_%d", tc.offset), func(t *testing.T) {
			day := anchor.AddDate(0, 0, tc.offset)
			result := Classify(day, entries, episodes, nil, lengths)
			assert.Equal(t, tc.phase, result.Phase, "offset %d", tc.offset)
			assert.Equal(t, tc.fertile, result.IsFertile, "offset %d fertile", tc.offset)
		})
	}
}

func TestClassifyLoggedDayIsPeriod(t *testing.T) {
	entries := flowDays(IntensityLight, "2024-03-10")
	episodes := Cluster(entries, true)
	lengths := EstimateLengths(episodes, Settings{})

	result := Classify(mustParse(t, "2024-03-10"), entries, episodes, nil, lengths)
	assert.Equal(t, PhasePeriod, result.Phase)
	assert.True(t, result.IsPeriod)
	assert.False(t, result.IsPredictedPeriod)
	assert.False(t, result.IsFertile)
}

// Scenario: an unterminated third period that started yesterday. The day
// after its only logged entry still classifies as an actual period, not a
// predicted one.
func TestClassifyOngoingEpisodeDay(t *testing.T) {
	entries := flowDays(IntensityMedium,
		"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04", "2024-01-05",
		"2024-01-29", "2024-01-30", "2024-01-31", "2024-02-01", "2024-02-02",
		"2024-02-26",
	)
	episodes := Cluster(entries, true)
	lengths := EstimateLengths(episodes, Settings{})
	predicted := Predict(episodes, lengths, PredictionHorizon, mustParse(t, "2024-02-27"))

	result := Classify(mustParse(t, "2024-02-27"), entries, episodes, predicted, lengths)
	assert.Equal(t, PhasePeriod, result.Phase)
	assert.False(t, result.IsPredictedPeriod)
}

func TestClassifyPredictedWindow(t *testing.T) {
	entries := flowDays(IntensityMedium,
		"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04", "2024-01-05",
		"2024-01-29", "2024-01-30", "2024-01-31", "2024-02-01", "2024-02-02",
	)
	episodes := Cluster(entries, false)
	lengths := EstimateLengths(episodes, Settings{})
	predicted := Predict(episodes, lengths, PredictionHorizon, mustParse(t, "2024-02-10"))

	result := Classify(mustParse(t, "2024-02-26"), entries, episodes, predicted, lengths)
	assert.Equal(t, PhasePeriod, result.Phase)
	assert.False(t, result.IsPeriod)
	assert.True(t, result.IsPredictedPeriod)
}

// An actual log always beats a coincidentally matching predicted window.
func TestClassifyActualLogWinsOverPrediction(t *testing.T) {
	entries := flowDays(IntensityMedium, "2024-01-29")
	episodes := Cluster(entries, true)
	predicted := []Episode{{
		Start:     mustParse(t, "2024-01-29"),
		End:       mustParse(t, "2024-02-02"),
		Predicted: true,
	}}

	result := Classify(mustParse(t, "2024-01-29"), entries, episodes, predicted, Lengths{Cycle: 28, Period: 5})
	assert.True(t, result.IsPeriod)
	assert.False(t, result.IsPredictedPeriod)
}

func TestClassifyNoAnchorDefaultsToFollicular(t *testing.T) {
	result := Classify(mustParse(t, "2024-04-20"), nil, nil, nil, Lengths{Cycle: 30, Period: 6})
	assert.Equal(t, PhaseFollicular, result.Phase)
	assert.False(t, result.IsFertile)

	// A date before every episode start has no anchor either.
	episodes := Cluster(flowDays(IntensityMedium, "2024-03-01"), false)
	result = Classify(mustParse(t, "2024-02-01"), nil, episodes, nil, Lengths{Cycle: 28, Period: 5})
	assert.Equal(t, PhaseFollicular, result.Phase)
}

func TestClassifyStaleAnchorClampsToLuteal(t *testing.T) {
	entries := flowDays(IntensityMedium, "2024-01-01", "2024-01-02")
	episodes := Cluster(entries, false)
	lengths := Lengths{Cycle: 28, Period: 5}

	// A full cycle has elapsed with no newer episode: clamp to luteal
	// rather than rolling into a second unconfirmed cycle.
	for _, offset := range []int{28, 35, 60} {
		day := mustParse(t, "2024-01-01").AddDate(0, 0, offset)
		result := Classify(day, entries, episodes, nil, lengths)
		assert.Equal(t, PhaseLuteal, result.Phase, "offset %d", offset)
	}
}

func TestClassifySpottingDayIsNotPeriod(t *testing.T) {
	entries := []Entry{{Date: "2024-01-10", Intensity: IntensitySpotting}}
	result := Classify(mustParse(t, "2024-01-10"), entries, nil, nil, Lengths{Cycle: 28, Period: 5})
	assert.NotEqual(t, PhasePeriod, result.Phase)
	assert.False(t, result.IsPeriod)
}

func TestClassifyIdempotent(t *testing.T) {
	entries := flowDays(IntensityMedium,
		"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-29", "2024-01-30")
	episodes := Cluster(entries, false)
	lengths := EstimateLengths(episodes, Settings{DefaultPeriodLength: 4})
	predicted := Predict(episodes, lengths, 3, mustParse(t, "2024-02-01"))

	day := mustParse(t, "2024-02-14")
	first := Classify(day, entries, episodes, predicted, lengths)
	second := Classify(day, entries, episodes, predicted, lengths)
	assert.Equal(t, first, second)
}

func TestInFertileWindow(t *testing.T) {
	anchor := mustParse(t, "2024-01-01")
	lengths := Lengths{Cycle: 28, Period: 5}

	assert.False(t, InFertileWindow(anchor.AddDate(0, 0, 8), anchor, lengths))
	assert.True(t, InFertileWindow(anchor.AddDate(0, 0, 9), anchor, lengths))
	assert.True(t, InFertileWindow(anchor.AddDate(0, 0, 15), anchor, lengths))
	assert.False(t, InFertileWindow(anchor.AddDate(0, 0, 16), anchor, lengths))

	// No known anchor: never fertile.
	assert.False(t, InFertileWindow(anchor, time.Time{}, lengths))
}
