package storage

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sammeh543/CycleTrackApp-sub001/internal"
)

type PostgresStorage struct {
	pool   *pgxpool.Pool
	logger internal.Logger
}

func NewPostgresStorage(dsn string, logger internal.Logger) (*PostgresStorage, error) {
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		logger.Errorf("failed to connect to postgres: %v", err)
		return nil, err
	}
	return &PostgresStorage{pool: pool, logger: logger}, nil
}

func (p *PostgresStorage) Close() error {
	p.pool.Close()
	return nil
}

// --- FlowRepository ---

func (p *PostgresStorage) SaveFlowLog(ctx context.Context, log *internal.FlowLog) error {
	_, err := p.pool.Exec(ctx, `INSERT INTO flow_logs (id, user_id, date, intensity, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, date) DO UPDATE SET id = $1, intensity = $4, notes = $5, created_at = $6`,
		log.ID, log.UserID, log.Date, log.Intensity, log.Notes, log.CreatedAt)
	if err != nil {
		p.logger.Errorf("failed to upsert flow log: %v", err)
		return err
	}
	return nil
}

func (p *PostgresStorage) ListFlowLogs(ctx context.Context, userID string) ([]internal.FlowLog, error) {
	rows, err := p.pool.Query(ctx, `SELECT id, user_id, date, intensity, notes, created_at
		FROM flow_logs WHERE user_id = $1 ORDER BY date ASC`, userID)
	if err != nil {
		p.logger.Errorf("failed to query flow logs: %v", err)
		return nil, err
	}
	defer rows.Close()

	logs := []internal.FlowLog{}
	for rows.Next() {
		var l internal.FlowLog
		if err := rows.Scan(&l.ID, &l.UserID, &l.Date, &l.Intensity, &l.Notes, &l.CreatedAt); err != nil {
			p.logger.Errorf("failed to scan flow log: %v", err)
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

func (p *PostgresStorage) DeleteFlowLog(ctx context.Context, userID, id string) error {
	tag, err := p.pool.Exec(ctx, `DELETE FROM flow_logs WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		p.logger.Errorf("failed to delete flow log: %v", err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// --- CycleRepository ---

func (p *PostgresStorage) SaveCycleRecord(ctx context.Context, rec *internal.CycleRecord) error {
	_, err := p.pool.Exec(ctx, `INSERT INTO cycle_records (id, user_id, start_date, end_date, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET start_date = $3, end_date = $4, notes = $5`,
		rec.ID, rec.UserID, rec.StartDate, rec.EndDate, rec.Notes, rec.CreatedAt)
	if err != nil {
		p.logger.Errorf("failed to upsert cycle record: %v", err)
		return err
	}
	return nil
}

func (p *PostgresStorage) GetCycleRecord(ctx context.Context, userID, id string) (*internal.CycleRecord, error) {
	row := p.pool.QueryRow(ctx, `SELECT id, user_id, start_date, end_date, notes, created_at
		FROM cycle_records WHERE id = $1 AND user_id = $2`, id, userID)
	var r internal.CycleRecord
	if err := row.Scan(&r.ID, &r.UserID, &r.StartDate, &r.EndDate, &r.Notes, &r.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		p.logger.Errorf("failed to fetch cycle record: %v", err)
		return nil, err
	}
	return &r, nil
}

func (p *PostgresStorage) ListCycleRecords(ctx context.Context, userID string) ([]internal.CycleRecord, error) {
	rows, err := p.pool.Query(ctx, `SELECT id, user_id, start_date, end_date, notes, created_at
		FROM cycle_records WHERE user_id = $1 ORDER BY start_date ASC`, userID)
	if err != nil {
		p.logger.Errorf("failed to query cycle records: %v", err)
		return nil, err
	}
	defer rows.Close()

	records := []internal.CycleRecord{}
	for rows.Next() {
		var r internal.CycleRecord
		if err := rows.Scan(&r.ID, &r.UserID, &r.StartDate, &r.EndDate, &r.Notes, &r.CreatedAt); err != nil {
			p.logger.Errorf("failed to scan cycle record: %v", err)
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// --- SymptomRepository ---

func (p *PostgresStorage) SaveSymptomLog(ctx context.Context, log *internal.SymptomLog) error {
	_, err := p.pool.Exec(ctx, `INSERT INTO symptom_logs (id, user_id, date, symptom, severity, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		log.ID, log.UserID, log.Date, log.Symptom, log.Severity, log.CreatedAt)
	if err != nil {
		p.logger.Errorf("failed to insert symptom log: %v", err)
		return err
	}
	return nil
}

func (p *PostgresStorage) ListSymptomLogs(ctx context.Context, userID string) ([]internal.SymptomLog, error) {
	rows, err := p.pool.Query(ctx, `SELECT id, user_id, date, symptom, severity, created_at
		FROM symptom_logs WHERE user_id = $1 ORDER BY date ASC`, userID)
	if err != nil {
		p.logger.Errorf("failed to query symptom logs: %v", err)
		return nil, err
	}
	defer rows.Close()

	logs := []internal.SymptomLog{}
	for rows.Next() {
		var l internal.SymptomLog
		if err := rows.Scan(&l.ID, &l.UserID, &l.Date, &l.Symptom, &l.Severity, &l.CreatedAt); err != nil {
			p.logger.Errorf("failed to scan symptom log: %v", err)
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

// --- SettingsRepository ---

func (p *PostgresStorage) SaveSettings(ctx context.Context, settings *internal.UserSettings) error {
	_, err := p.pool.Exec(ctx, `INSERT INTO user_settings (user_id, default_cycle_length, default_period_length, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE SET default_cycle_length = $2, default_period_length = $3, updated_at = $4`,
		settings.UserID, settings.DefaultCycleLength, settings.DefaultPeriodLength, settings.UpdatedAt)
	if err != nil {
		p.logger.Errorf("failed to upsert settings: %v", err)
		return err
	}
	return nil
}

func (p *PostgresStorage) GetSettings(ctx context.Context, userID string) (*internal.UserSettings, error) {
	row := p.pool.QueryRow(ctx, `SELECT user_id, default_cycle_length, default_period_length, updated_at
		FROM user_settings WHERE user_id = $1`, userID)
	var s internal.UserSettings
	if err := row.Scan(&s.UserID, &s.DefaultCycleLength, &s.DefaultPeriodLength, &s.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		p.logger.Errorf("failed to fetch settings: %v", err)
		return nil, err
	}
	return &s, nil
}

// --- Compile-time assertions ---
var _ FlowRepository = (*PostgresStorage)(nil)
var _ CycleRepository = (*PostgresStorage)(nil)
var _ SymptomRepository = (*PostgresStorage)(nil)
var _ SettingsRepository = (*PostgresStorage)(nil)
