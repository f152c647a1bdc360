package cycle

import (
	"sort"
	"time"
)

// Cluster groups raw flow entries into discrete period episodes.
//
// Spotting entries never form or extend an episode; they are tracked as a
// per-day flag elsewhere. Entries with unparsable dates are skipped. The scan
// extends the current episode while the gap to the next entry stays within
// EpisodeGapDays and opens a new one otherwise, so adjacent episodes are
// always separated by more than EpisodeGapDays.
//
// ongoing marks the most recent episode as unterminated. It is supplied by
// the caller from the matching cycle record, not inferred from gaps: a period
// can be mid-way through logging.
func Cluster(entries []Entry, ongoing bool) []Episode {
	days := make([]time.Time, 0, len(entries))
	for _, e := range entries {
		if e.Intensity == IntensitySpotting {
			continue
		}
		day, err := ParseDate(e.Date)
		if err != nil {
			continue
		}
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	var episodes []Episode
	for _, day := range days {
		if n := len(episodes); n > 0 && daysBetween(episodes[n-1].End, day) <= EpisodeGapDays {
			episodes[n-1].End = day
			continue
		}
		episodes = append(episodes, Episode{Start: day, End: day})
	}

	if ongoing && len(episodes) > 0 {
		episodes[len(episodes)-1].Ongoing = true
	}
	return episodes
}
