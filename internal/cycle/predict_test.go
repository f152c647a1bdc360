package cycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPredictProjectsHorizonCycles(t *testing.T) {
	episodes := []Episode{
		{Start: mustParse(t, "2024-01-01"), End: mustParse(t, "2024-01-05")},
	}
	lengths := Lengths{Cycle: 28, Period: 5}

	predicted := Predict(episodes, lengths, 3, mustParse(t, "2024-01-10"))
	assert.Len(t, predicted, 3)

	assert.Equal(t, "2024-01-29", predicted[0].Start.Format(DateLayout))
	assert.Equal(t, "2024-02-02", predicted[0].End.Format(DateLayout))
	assert.Equal(t, "2024-02-26", predicted[1].Start.Format(DateLayout))
	assert.Equal(t, "2024-03-25", predicted[2].Start.Format(DateLayout))
	for _, ep := range predicted {
		assert.True(t, ep.Predicted)
		assert.Equal(t, lengths.Period-1, daysBetween(ep.Start, ep.End))
	}
}

func TestPredictAvoidsOverlapWithLoggedPeriod(t *testing.T) {
	// A long logged run: the naive next start (Jan 29) lands inside it.
	episodes := []Episode{
		{Start: mustParse(t, "2024-01-01"), End: mustParse(t, "2024-01-30")},
	}
	lengths := Lengths{Cycle: 28, Period: 5}

	predicted := Predict(episodes, lengths, 3, mustParse(t, "2024-01-30"))
	assert.Len(t, predicted, 3)
	assert.Equal(t, "2024-01-31", predicted[0].Start.Format(DateLayout),
		"prediction must start the day after the logged episode ends")

	end := episodes[0].End
	for _, ep := range predicted {
		assert.True(t, ep.Start.After(end), "predicted episodes never start before the real episode end + 1 day")
	}
	// Subsequent starts still step by one cycle length from the shifted start.
	assert.Equal(t, lengths.Cycle, daysBetween(predicted[0].Start, predicted[1].Start))
}

func TestPredictWithoutEpisodesAnchorsOnToday(t *testing.T) {
	lengths := Lengths{Cycle: 30, Period: 6}
	today := mustParse(t, "2024-05-01")

	predicted := Predict(nil, lengths, 0, today)
	assert.Len(t, predicted, PredictionHorizon)
	assert.Equal(t, "2024-05-31", predicted[0].Start.Format(DateLayout))
	assert.Equal(t, "2024-06-05", predicted[0].End.Format(DateLayout))

	// Without even a reference day there is nothing to anchor on.
	assert.Nil(t, Predict(nil, lengths, 3, time.Time{}))
}

func TestPredictOrderedAndNonOverlapping(t *testing.T) {
	episodes := []Episode{
		{Start: mustParse(t, "2024-01-01"), End: mustParse(t, "2024-01-05")},
	}
	predicted := Predict(episodes, Lengths{Cycle: 28, Period: 5}, 4, time.Time{})
	for i := 1; i < len(predicted); i++ {
		assert.True(t, predicted[i-1].End.Before(predicted[i].Start))
	}
}
