package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/escalamed/plantao/backend/internal/config"
	"github.com/escalamed/plantao/backend/internal/domain"
	"github.com/redis/go-redis/v9"
)

type RedisStore struct {
	cfg *config.Config
	rdb *redis.Client
}

func NewRedisStore(cfg *config.Config, rdb *redis.Client) *RedisStore {
	return &RedisStore{
		cfg: cfg,
		rdb: rdb,
	}
}

func (s *RedisStore) Load(ctx context.Context) ([]domain.Schedule, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.Redis.OperationTimeout)*time.Second)
	defer cancel()

	data, err := s.rdb.Get(ctx, s.cfg.Snapshot.Name).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
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

func (s *RedisStore) Save(ctx context.Context, schedules []domain.Schedule) error {
	data, err := json.Marshal(schedules)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.Redis.OperationTimeout)*time.Second)
	defer cancel()

	// o snapshot não expira, ele é o estado durável da coleção
	return s.rdb.Set(ctx, s.cfg.Snapshot.Name, data, 0).Err()
}
