package cycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func flowDays(intensity Intensity, dates ...string) []Entry {
	entries := make([]Entry, 0, len(dates))
	for _, d := range dates {
		entries = append(entries, Entry{Date: d, Intensity: intensity})
	}
	return entries
}

func TestClusterGapRule(t *testing.T) {
	// 2-day gaps bridge the same episode, 3-day gaps split it.
	entries := flowDays(IntensityMedium, "2024-01-01", "2024-01-03", "2024-01-06")
	episodes := Cluster(entries, false)

	assert.Len(t, episodes, 2)
	assert.Equal(t, "2024-01-01", episodes[0].Start.Format(DateLayout))
	assert.Equal(t, "2024-01-03", episodes[0].End.Format(DateLayout))
	assert.Equal(t, "2024-01-06", episodes[1].Start.Format(DateLayout))
}

func TestClusterExcludesSpotting(t *testing.T) {
	entries := flowDays(IntensityMedium, "2024-01-01", "2024-01-02")
	// Spotting between two distant runs must not bridge them into one episode.
	entries = append(entries, Entry{Date: "2024-01-05", Intensity: IntensitySpotting})
	entries = append(entries, flowDays(IntensityHeavy, "2024-01-09")...)

	episodes := Cluster(entries, false)
	assert.Len(t, episodes, 2)

	// Spotting alone never forms an episode.
	only := Cluster(flowDays(IntensitySpotting, "2024-02-01", "2024-02-02"), false)
	assert.Empty(t, only)
}

func TestClusterSkipsUnparsableDates(t *testing.T) {
	entries := []Entry{
		{Date: "2024-01-01", Intensity: IntensityMedium},
		{Date: "not-a-date", Intensity: IntensityHeavy},
		{Date: "", Intensity: IntensityMedium},
		{Date: "2024-01-02", Intensity: IntensityLight},
	}
	episodes := Cluster(entries, false)
	assert.Len(t, episodes, 1)
	assert.Equal(t, "2024-01-01", episodes[0].Start.Format(DateLayout))
	assert.Equal(t, "2024-01-02", episodes[0].End.Format(DateLayout))
}

func TestClusterUnsortedAndDuplicateInput(t *testing.T) {
	entries := flowDays(IntensityMedium, "2024-01-03", "2024-01-01", "2024-01-02", "2024-01-02")
	episodes := Cluster(entries, false)
	assert.Len(t, episodes, 1)
	assert.Equal(t, "2024-01-01", episodes[0].Start.Format(DateLayout))
	assert.Equal(t, "2024-01-03", episodes[0].End.Format(DateLayout))
}

func TestClusterOngoingFlag(t *testing.T) {
	entries := flowDays(IntensityMedium, "2024-01-01", "2024-01-29")
	episodes := Cluster(entries, true)
	assert.Len(t, episodes, 2)
	assert.False(t, episodes[0].Ongoing)
	assert.True(t, episodes[1].Ongoing)

	closed := Cluster(entries, false)
	assert.False(t, closed[1].Ongoing)
}

func TestClusterEpisodeSeparationInvariant(t *testing.T) {
	entries := flowDays(IntensityMedium,
		"2024-01-01", "2024-01-02", "2024-01-04",
		"2024-01-10", "2024-01-11",
		"2024-02-07", "2024-02-08", "2024-02-09",
		"2024-03-06",
	)
	episodes := Cluster(entries, false)
	assert.GreaterOrEqual(t, len(episodes), 2)
	for i := 1; i < len(episodes); i++ {
		assert.False(t, episodes[i-1].End.After(episodes[i].Start))
		gap := daysBetween(episodes[i-1].End, episodes[i].Start)
		assert.Greater(t, gap, EpisodeGapDays, "adjacent episodes must be separated by more than %d days", EpisodeGapDays)
	}
	for _, ep := range episodes {
		assert.False(t, ep.Start.After(ep.End))
	}
}
