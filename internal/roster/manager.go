package roster

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/escalamed/plantao/backend/internal/domain"
	"github.com/escalamed/plantao/backend/internal/snapshot"
	"github.com/escalamed/plantao/backend/internal/utils"
	"github.com/google/uuid"
)

const persistTimeout = 10 * time.Second

// Manager é o agregado de escalas: uma coleção em memória semeada pelo
// dataset de demonstração e sobreposta pelo snapshot durável. Toda mutação
// valida a entrada, atualiza a coleção de forma atômica e grava o snapshot
// como efeito colateral fire-and-forget.
type Manager struct {
	mu                sync.Mutex
	organizationID    string
	defaultLocationID string
	locations         []domain.Location
	schedules         []domain.Schedule
	store             snapshot.Store
	now               func() time.Time
}

func NewManager(organizationID string, locations []domain.Location, seed []domain.Schedule, store snapshot.Store) *Manager {
	m := &Manager{
		organizationID: organizationID,
		locations:      locations,
		store:          store,
		now:            time.Now,
	}
	if len(locations) > 0 {
		m.defaultLocationID = locations[0].ID
	}

	m.mu.Lock()
	m.setSchedulesLocked(seed)
	m.mu.Unlock()

	return m
}

// Load sobrepõe o seed pelo snapshot durável, quando ele existe. A lista
// gravada substitui a coleção inteira, mas cada registro ainda passa pela
// normalização.
func (m *Manager) Load(ctx context.Context) error {
	if m.store == nil {
		return nil
	}

	loaded, ok, err := m.store.Load(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	m.mu.Lock()
	m.setSchedulesLocked(loaded)
	m.mu.Unlock()

	return nil
}

func (m *Manager) CreateSchedule(input domain.ScheduleInput) (*domain.Schedule, error) {
	if err := validateScheduleInput(&input); err != nil {
		return nil, err
	}

	m.mu.Lock()
	today := m.today()
	sched := m.buildSchedule(uuid.NewString(), m.organizationID, input, today, nil)
	m.schedules = append([]domain.Schedule{sched}, m.schedules...)
	m.sortSchedulesLocked()
	snap := m.copySchedulesLocked()
	m.mu.Unlock()

	m.persist(snap)

	out := cloneSchedule(sched)
	return &out, nil
}

func (m *Manager) UpdateSchedule(id string, input domain.ScheduleInput) (*domain.Schedule, error) {
	if err := validateScheduleInput(&input); err != nil {
		return nil, err
	}

	m.mu.Lock()
	idx := m.indexOfLocked(id)
	if idx < 0 {
		m.mu.Unlock()
		return nil, ErrScheduleNotFound
	}

	// id, organização, data de criação e plantões extras sobrevivem à
	// atualização, todo o resto é recomputado como na criação
	current := m.schedules[idx]
	sched := m.buildSchedule(current.ID, current.OrganizationID, input, current.CreatedAt, current.ExtraShifts)
	m.schedules[idx] = sched
	m.sortSchedulesLocked()
	snap := m.copySchedulesLocked()
	m.mu.Unlock()

	m.persist(snap)

	out := cloneSchedule(sched)
	return &out, nil
}

// DeleteSchedule remove a escala da coleção. Remover um id inexistente não é
// um erro.
func (m *Manager) DeleteSchedule(id string) {
	m.mu.Lock()
	idx := m.indexOfLocked(id)
	if idx < 0 {
		m.mu.Unlock()
		return
	}

	m.schedules = append(m.schedules[:idx], m.schedules[idx+1:]...)
	snap := m.copySchedulesLocked()
	m.mu.Unlock()

	m.persist(snap)
}

func (m *Manager) AddExtraShift(scheduleID string, input domain.ExtraShiftInput) (*domain.ExtraShift, error) {
	if err := validateExtraShiftInput(&input); err != nil {
		return nil, err
	}

	m.mu.Lock()
	idx := m.indexOfLocked(scheduleID)
	if idx < 0 {
		m.mu.Unlock()
		return nil, ErrScheduleNotFound
	}

	sched := &m.schedules[idx]

	// invariante dura: o plantão extra precisa caber no período da escala
	date := utils.TruncateDate(input.Date)
	if date < sched.StartDate || date > sched.EndDate {
		m.mu.Unlock()
		return nil, errors.New("a data do plantão extra está fora do período da escala")
	}

	extraShift := domain.ExtraShift{
		ID:            uuid.NewString(),
		ScheduleID:    sched.ID,
		LocationID:    strings.TrimSpace(input.LocationID),
		Date:          date,
		StartTime:     input.StartTime,
		EndTime:       input.EndTime,
		RequiredCount: input.RequiredCount,
		Notes:         input.Notes,
	}
	if extraShift.LocationID == "" {
		extraShift.LocationID = sched.LocationID
	}

	sched.ExtraShifts = append(sched.ExtraShifts, extraShift)
	sortExtraShifts(sched.ExtraShifts)
	sched.UpdatedAt = m.today()
	snap := m.copySchedulesLocked()
	m.mu.Unlock()

	m.persist(snap)

	out := extraShift
	return &out, nil
}

// RemoveExtraShift é idempotente, remover um plantão extra inexistente não é
// um erro.
func (m *Manager) RemoveExtraShift(scheduleID, extraShiftID string) {
	m.mu.Lock()
	idx := m.indexOfLocked(scheduleID)
	if idx < 0 {
		m.mu.Unlock()
		return
	}

	sched := &m.schedules[idx]
	removed := false
	for i, es := range sched.ExtraShifts {
		if es.ID == extraShiftID {
			sched.ExtraShifts = append(sched.ExtraShifts[:i], sched.ExtraShifts[i+1:]...)
			removed = true
			break
		}
	}
	if !removed {
		m.mu.Unlock()
		return
	}

	sched.UpdatedAt = m.today()
	snap := m.copySchedulesLocked()
	m.mu.Unlock()

	m.persist(snap)
}

// Schedules devolve uma cópia da coleção, ordenada por data de início
// decrescente.
func (m *Manager) Schedules() []domain.Schedule {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.copySchedulesLocked()
}

func (m *Manager) GetSchedule(id string) (*domain.Schedule, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := m.indexOfLocked(id)
	if idx < 0 {
		return nil, false
	}

	sched := cloneSchedule(m.schedules[idx])
	return &sched, true
}

func (m *Manager) Locations() []domain.Location {
	out := make([]domain.Location, len(m.locations))
	copy(out, m.locations)
	return out
}

// LocationByName procura um setor pelo nome de exibição, ignorando acentos,
// maiúsculas e espaços das bordas.
func (m *Manager) LocationByName(name string) (domain.Location, bool) {
	normalized := utils.NormalizeName(name)
	if normalized == "" {
		return domain.Location{}, false
	}

	for _, loc := range m.locations {
		if utils.NormalizeName(loc.Name) == normalized {
			return loc, true
		}
	}

	return domain.Location{}, false
}

func (m *Manager) locationByID(id string) (domain.Location, bool) {
	for _, loc := range m.locations {
		if loc.ID == id {
			return loc, true
		}
	}
	return domain.Location{}, false
}

func (m *Manager) buildSchedule(id, organizationID string, input domain.ScheduleInput, createdAt string, extraShifts []domain.ExtraShift) domain.Schedule {
	status := input.Status
	if status == "" {
		status = domain.StatusDraft
	}

	// publishedAt é computado, nunca aceito literalmente: limpo em rascunho,
	// senão o valor informado ou a data de hoje
	publishedAt := ""
	if status != domain.StatusDraft {
		publishedAt = utils.TruncateDate(input.PublishedAt)
		if publishedAt == "" {
			publishedAt = m.today()
		}
	}

	sched := domain.Schedule{
		ID:                  id,
		OrganizationID:      organizationID,
		LocationID:          strings.TrimSpace(input.LocationID),
		Title:               strings.TrimSpace(input.Title),
		Description:         input.Description,
		StartDate:           utils.TruncateDate(input.StartDate),
		EndDate:             utils.TruncateDate(input.EndDate),
		Status:              status,
		PublishedAt:         publishedAt,
		ShiftValue:          input.ShiftValue,
		ExtraShifts:         extraShifts,
		RequireSwapApproval: input.RequireSwapApproval,
		CreatedAt:           createdAt,
		UpdatedAt:           m.today(),
	}

	return m.NormalizeSchedule(sched)
}

func (m *Manager) setSchedulesLocked(schedules []domain.Schedule) {
	normalized := make([]domain.Schedule, len(schedules))
	for i, s := range schedules {
		normalized[i] = m.NormalizeSchedule(s)
	}
	m.schedules = normalized
	m.sortSchedulesLocked()
}

func (m *Manager) sortSchedulesLocked() {
	sort.SliceStable(m.schedules, func(i, j int) bool {
		return m.schedules[i].StartDate > m.schedules[j].StartDate
	})
}

func (m *Manager) indexOfLocked(id string) int {
	for i, s := range m.schedules {
		if s.ID == id {
			return i
		}
	}
	return -1
}

func (m *Manager) copySchedulesLocked() []domain.Schedule {
	out := make([]domain.Schedule, len(m.schedules))
	for i, s := range m.schedules {
		out[i] = cloneSchedule(s)
	}
	return out
}

func (m *Manager) today() string {
	return m.now().Format("2006-01-02")
}

// persist grava o snapshot fora do caminho da mutação: a coleção em memória
// já foi atualizada e uma falha de gravação não desfaz a operação.
func (m *Manager) persist(schedules []domain.Schedule) {
	if m.store == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	if err := m.store.Save(ctx, schedules); err != nil {
		slog.Error("não foi possível gravar o snapshot das escalas", "error", err)
	}
}

func cloneSchedule(s domain.Schedule) domain.Schedule {
	out := s
	out.ExtraShifts = make([]domain.ExtraShift, len(s.ExtraShifts))
	copy(out.ExtraShifts, s.ExtraShifts)
	if s.RequireSwapApproval != nil {
		requireSwapApproval := *s.RequireSwapApproval
		out.RequireSwapApproval = &requireSwapApproval
	}
	return out
}
