package cycle

// EstimateLengths resolves the effective cycle and period lengths by tiered
// fallback. Each tier requires strictly more data than the next; a present
// higher tier always wins.
//
// Cycle length: with two or more episodes, the mean of the newest
// MaxCycleGapSamples start-to-start gaps; else the settings default; else
// DefaultCycleLength.
//
// Period length: the mean span of episodes with a confirmed end (predicted
// episodes and an ongoing one never count, since their end is not final);
// with none, the settings default; else DefaultPeriodLength.
//
// Results are clamped so period >= 1 and cycle >= period+1, guarding against
// pathological logs such as duplicate dates collapsing a gap to zero.
func EstimateLengths(episodes []Episode, settings Settings) Lengths {
	cycleLen := 0
	if len(episodes) >= 2 {
		gaps := make([]int, 0, len(episodes)-1)
		for i := 1; i < len(episodes); i++ {
			gaps = append(gaps, daysBetween(episodes[i-1].Start, episodes[i].Start))
		}
		if len(gaps) > MaxCycleGapSamples {
			gaps = gaps[len(gaps)-MaxCycleGapSamples:]
		}
		cycleLen = roundedMean(gaps)
	}
	if cycleLen <= 0 {
		cycleLen = settings.DefaultCycleLength
	}
	if cycleLen <= 0 {
		cycleLen = DefaultCycleLength
	}

	periodLen := 0
	spans := make([]int, 0, len(episodes))
	for _, ep := range episodes {
		if ep.Predicted || ep.Ongoing {
			continue
		}
		spans = append(spans, daysBetween(ep.Start, ep.End)+1)
	}
	if len(spans) > 0 {
		periodLen = roundedMean(spans)
	}
	if periodLen <= 0 {
		periodLen = settings.DefaultPeriodLength
	}
	if periodLen <= 0 {
		periodLen = DefaultPeriodLength
	}

	if periodLen < 1 {
		periodLen = 1
	}
	if cycleLen < periodLen+1 {
		cycleLen = periodLen + 1
	}
	return Lengths{Cycle: cycleLen, Period: periodLen}
}

func roundedMean(values []int) int {
	if len(values) == 0 {
		return 0
	}
	total := 0
	for _, v := range values {
		total += v
	}
	return int(float64(total)/float64(len(values)) + 0.5)
}
