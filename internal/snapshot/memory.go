package snapshot

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/escalamed/plantao/backend/internal/domain"
)

// MemoryStore guarda o snapshot em memória. Serve para desenvolvimento sem
// banco e para os testes. O documento passa por JSON do mesmo jeito que nos
// stores duráveis, para que o comportamento de serialização seja o mesmo.
type MemoryStore struct {
	mu   sync.Mutex
	data []byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load(ctx context.Context) ([]domain.Schedule, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data == nil {
		return nil, false, nil
	}

	var schedules []domain.Schedule
	if err := json.Unmarshal(s.data, &schedules); err != nil {
		return nil, false, err
	}

	return schedules, true, nil
}

func (s *MemoryStore) Save(ctx context.Context, schedules []domain.Schedule) error {
	data, err := json.Marshal(schedules)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = data

	return nil
}
