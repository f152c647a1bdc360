package cycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func mustParse(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDate(s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return d
}

// Scenario: two fully logged 5-day periods 28 days apart, no settings.
func TestEstimateFromTwoEpisodes(t *testing.T) {
	entries := flowDays(IntensityMedium,
		"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04", "2024-01-05",
		"2024-01-29", "2024-01-30", "2024-01-31", "2024-02-01", "2024-02-02",
	)
	episodes := Cluster(entries, false)
	assert.Len(t, episodes, 2)

	lengths := EstimateLengths(episodes, Settings{})
	assert.Equal(t, 28, lengths.Cycle)
	assert.Equal(t, 5, lengths.Period)
}

// Scenario: a single just-started episode with nothing closed falls all the
// way back to the global defaults.
func TestEstimateSingleOngoingEpisodeUsesDefaults(t *testing.T) {
	episodes := Cluster(flowDays(IntensityLight, "2024-03-10"), true)
	assert.Len(t, episodes, 1)

	lengths := EstimateLengths(episodes, Settings{})
	assert.Equal(t, DefaultCycleLength, lengths.Cycle)
	assert.Equal(t, DefaultPeriodLength, lengths.Period)
}

func TestEstimateTieredFallbackOrdering(t *testing.T) {
	settings := Settings{DefaultCycleLength: 30, DefaultPeriodLength: 6}

	// No data at all: settings beat the global constants.
	lengths := EstimateLengths(nil, settings)
	assert.Equal(t, 30, lengths.Cycle)
	assert.Equal(t, 6, lengths.Period)

	// No data and no settings: global constants.
	lengths = EstimateLengths(nil, Settings{})
	assert.Equal(t, DefaultCycleLength, lengths.Cycle)
	assert.Equal(t, DefaultPeriodLength, lengths.Period)

	// One closed 4-day episode: observed period beats the settings default,
	// while cycle length (needing two episodes) still comes from settings.
	episodes := Cluster(flowDays(IntensityMedium,
		"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04"), false)
	lengths = EstimateLengths(episodes, settings)
	assert.Equal(t, 30, lengths.Cycle)
	assert.Equal(t, 4, lengths.Period)
}

func TestEstimateUsesNewestGapsOnly(t *testing.T) {
	// Eight starts, 7 gaps: one ancient 40-day gap followed by six 28-day
	// gaps. Only the newest six feed the average.
	dates := []string{
		"2024-01-01",
		"2024-02-10", // 40 days later, should age out
		"2024-03-09", "2024-04-06", "2024-05-04",
		"2024-06-01", "2024-06-29", "2024-07-27",
	}
	episodes := Cluster(flowDays(IntensityMedium, dates...), false)
	assert.Len(t, episodes, len(dates))

	lengths := EstimateLengths(episodes, Settings{})
	assert.Equal(t, 28, lengths.Cycle)
}

func TestEstimateExcludesOngoingFromPeriodAverage(t *testing.T) {
	entries := flowDays(IntensityMedium,
		"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04", "2024-01-05",
		"2024-01-29", "2024-01-30", "2024-01-31", "2024-02-01", "2024-02-02",
		"2024-02-26", // third period only just started
	)
	lengths := EstimateLengths(Cluster(entries, true), Settings{})
	assert.Equal(t, 5, lengths.Period, "a 1-day ongoing episode must not drag the average down")
	assert.Equal(t, 28, lengths.Cycle)
}

func TestEstimateClampsDegenerateLengths(t *testing.T) {
	// Two episodes one day apart produce a 1-day "cycle"; the invariant
	// cycle >= period+1 must still hold.
	episodes := []Episode{
		{Start: mustParse(t, "2024-01-01"), End: mustParse(t, "2024-01-01")},
		{Start: mustParse(t, "2024-01-02"), End: mustParse(t, "2024-01-02")},
	}
	lengths := EstimateLengths(episodes, Settings{})
	assert.GreaterOrEqual(t, lengths.Period, 1)
	assert.GreaterOrEqual(t, lengths.Cycle, lengths.Period+1)
}

func TestSettingsValidate(t *testing.T) {
	assert.NoError(t, Settings{}.Validate())
	assert.NoError(t, Settings{DefaultCycleLength: 28, DefaultPeriodLength: 5}.Validate())

	err := Settings{DefaultCycleLength: -1}.Validate()
	assert.Error(t, err)
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}
