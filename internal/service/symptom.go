package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/sammeh543/CycleTrackApp-sub001/internal"
	"github.com/sammeh543/CycleTrackApp-sub001/internal/storage"
)

type SymptomLogRequest struct {
	Date     string `json:"date" validate:"required,datetime=2006-01-02"`
	Symptom  string `json:"symptom" validate:"required,min=1,max=64"`
	Severity int    `json:"severity,omitempty" validate:"omitempty,gte=1,lte=5"`
}

func ValidateSymptomLogRequest(req *SymptomLogRequest) error {
	return validate.Struct(req)
}

func LogSymptom(ctx context.Context, symptomRepo storage.SymptomRepository, user *internal.User, req *SymptomLogRequest) (*internal.SymptomLog, error) {
	log := &internal.SymptomLog{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Date:      req.Date,
		Symptom:   req.Symptom,
		Severity:  req.Severity,
		CreatedAt: time.Now(),
	}
	if err := symptomRepo.SaveSymptomLog(ctx, log); err != nil {
		return nil, err
	}
	return log, nil
}

type SymptomFrequency struct {
	Symptom string `json:"symptom"`
	Count   int    `json:"count"`
}

// TopSymptoms ranks symptoms by how often they were logged, most frequent
// first, ties broken alphabetically. limit <= 0 returns the full ranking.
func TopSymptoms(logs []internal.SymptomLog, limit int) []SymptomFrequency {
	counts := make(map[string]int, len(logs))
	for _, l := range logs {
		counts[l.Symptom]++
	}

	ranked := make([]SymptomFrequency, 0, len(counts))
	for symptom, count := range counts {
		ranked = append(ranked, SymptomFrequency{Symptom: symptom, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Symptom < ranked[j].Symptom
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
