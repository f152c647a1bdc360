package storage

import (
	"github.com/sammeh543/CycleTrackApp-sub001/internal"
	"github.com/sammeh543/CycleTrackApp-sub001/internal/config"
)

// NewRepositories builds the repository set for the configured backend.
// The returned io.Closer-style Close flushes pending data.
func NewRepositories(cfg *config.Config, logger internal.Logger) (Repositories, func() error, error) {
	if cfg.DBType == "postgres" {
		s, err := NewPostgresStorage(cfg.DBDSN, logger)
		if err != nil {
			return Repositories{}, nil, err
		}
		return bundle(s), s.Close, nil
	}

	s, err := NewFileStorage(cfg.FileFlow, cfg.FileCycles, cfg.FileSymptoms, cfg.FileSettings, logger)
	if err != nil {
		return Repositories{}, nil, err
	}
	return bundle(s), s.Close, nil
}

type backend interface {
	FlowRepository
	CycleRepository
	SymptomRepository
	SettingsRepository
}

func bundle(b backend) Repositories {
	return Repositories{Flow: b, Cycles: b, Symptoms: b, Settings: b}
}
