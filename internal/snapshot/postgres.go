package snapshot

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/escalamed/plantao/backend/internal/config"
	"github.com/escalamed/plantao/backend/internal/domain"
)

type PostgresStore struct {
	cfg    *config.Config
	dbpool *sql.DB
}

func NewPostgresStore(cfg *config.Config, dbpool *sql.DB) (*PostgresStore, error) {
	query := `
		CREATE TABLE IF NOT EXISTS snapshots (
			name TEXT PRIMARY KEY,
			data JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if _, err := dbpool.ExecContext(ctx, query); err != nil {
		return nil, err
	}

	return &PostgresStore{
		cfg:    cfg,
		dbpool: dbpool,
	}, nil
}

func (s *PostgresStore) Load(ctx context.Context) ([]domain.Schedule, bool, error) {
	query := `
		SELECT data FROM snapshots WHERE name = $1
	`

	ctx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	var data []byte
	if err := s.dbpool.QueryRowContext(ctx, query, s.cfg.Snapshot.Name).Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var schedules []domain.Schedule
	if err := json.Unmarshal(data, &schedules); err != nil {
		return nil, false, err
	}

	return schedules, true, nil
}

func (s *PostgresStore) Save(ctx context.Context, schedules []domain.Schedule) error {
	query := `
		INSERT INTO snapshots (name, data) VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()
	`

	data, err := json.Marshal(schedules)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if _, err := s.dbpool.ExecContext(ctx, query, s.cfg.Snapshot.Name, data); err != nil {
		return err
	}

	return nil
}
