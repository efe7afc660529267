package roster

import (
	"sort"
	"strings"

	"github.com/escalamed/plantao/backend/internal/domain"
	"github.com/escalamed/plantao/backend/internal/utils"
)

const (
	defaultTitle        = "Escala sem título"
	unknownLocationName = "Setor não informado"
)

// NormalizeSchedule completa um registro parcial vindo do snapshot ou do seed
// até a forma canônica. A função é total (nunca falha com campos ausentes) e
// idempotente: normalizar um registro já normalizado devolve o mesmo valor.
func (m *Manager) NormalizeSchedule(s domain.Schedule) domain.Schedule {
	if s.LocationID == "" {
		s.LocationID = m.defaultLocationID
	}
	if strings.TrimSpace(s.Title) == "" {
		s.Title = defaultTitle
	}
	if s.OrganizationID == "" {
		s.OrganizationID = m.organizationID
	}

	s.StartDate = utils.TruncateDate(s.StartDate)
	s.EndDate = utils.TruncateDate(s.EndDate)
	s.PublishedAt = utils.TruncateDate(s.PublishedAt)
	s.CreatedAt = utils.TruncateDate(s.CreatedAt)
	s.UpdatedAt = utils.TruncateDate(s.UpdatedAt)

	if s.Status == "" {
		s.Status = domain.StatusDraft
	}
	// publishedAt só existe quando a escala saiu de rascunho
	if s.Status == domain.StatusDraft {
		s.PublishedAt = ""
	}

	if loc, ok := m.locationByID(s.LocationID); ok {
		s.Location = loc
	} else {
		s.Location = domain.Location{ID: s.LocationID, Name: unknownLocationName}
	}

	if s.RequireSwapApproval == nil {
		requireSwapApproval := true
		s.RequireSwapApproval = &requireSwapApproval
	}

	// valor zero ou negativo significa "sem valor definido"
	if s.ShiftValue < 0 {
		s.ShiftValue = 0
	}

	extraShifts := make([]domain.ExtraShift, len(s.ExtraShifts))
	for i, es := range s.ExtraShifts {
		extraShifts[i] = normalizeExtraShift(es, &s)
	}
	sortExtraShifts(extraShifts)
	s.ExtraShifts = extraShifts

	return s
}

func normalizeExtraShift(es domain.ExtraShift, parent *domain.Schedule) domain.ExtraShift {
	es.ScheduleID = parent.ID
	if es.LocationID == "" {
		es.LocationID = parent.LocationID
	}
	es.Date = utils.TruncateDate(es.Date)
	if es.RequiredCount < 1 {
		es.RequiredCount = 1
	}
	return es
}

func sortExtraShifts(extraShifts []domain.ExtraShift) {
	sort.SliceStable(extraShifts, func(i, j int) bool {
		if extraShifts[i].Date != extraShifts[j].Date {
			return extraShifts[i].Date < extraShifts[j].Date
		}
		return extraShifts[i].StartTime < extraShifts[j].StartTime
	})
}
