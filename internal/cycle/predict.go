package cycle

import "time"

// Predict projects future period windows, one per cycle, horizon cycles ahead
// (PredictionHorizon when horizon <= 0). Episodes come back marked
// Predicted=true and chronologically ordered.
//
// The projection anchors on the most recent episode's start. When the period
// runs long enough that the naive next start (anchor start + cycle length)
// would land on or inside the just-logged episode, the first predicted start
// is pushed to the day after that episode's end, so a prediction never
// overlaps days that were actually logged. Subsequent starts step by one
// cycle length each.
//
// With no episodes at all, today serves as the assumed anchor start: the
// first predicted window opens one cycle from today.
func Predict(episodes []Episode, lengths Lengths, horizon int, today time.Time) []Episode {
	if horizon <= 0 {
		horizon = PredictionHorizon
	}
	if lengths.Cycle <= 0 || lengths.Period <= 0 {
		return nil
	}

	var anchorStart, anchorEnd time.Time
	if len(episodes) > 0 {
		last := episodes[len(episodes)-1]
		anchorStart = last.Start
		anchorEnd = last.End
	} else {
		if today.IsZero() {
			return nil
		}
		anchorStart = dateOnly(today)
	}

	start := anchorStart.AddDate(0, 0, lengths.Cycle)
	if !anchorEnd.IsZero() && !start.After(anchorEnd) {
		start = anchorEnd.AddDate(0, 0, 1)
	}

	predicted := make([]Episode, 0, horizon)
	for i := 0; i < horizon; i++ {
		s := start.AddDate(0, 0, i*lengths.Cycle)
		predicted = append(predicted, Episode{
			Start:     s,
			End:       s.AddDate(0, 0, lengths.Period-1),
			Predicted: true,
		})
	}
	return predicted
}
