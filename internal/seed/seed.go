package seed

import (
	"time"

	"github.com/escalamed/plantao/backend/internal/domain"
)

// Dataset de demonstração usado na primeira execução, antes de existir
// qualquer snapshot durável. Os períodos são relativos à data atual para que
// a resolução de valores por contenção de data sempre encontre candidatas.

const OrganizationID = "org-demo"

func Locations() []domain.Location {
	return []domain.Location{
		{ID: "loc-uti-adulto", Name: "UTI Adulto"},
		{ID: "loc-uti-neonatal", Name: "UTI Neonatal"},
		{ID: "loc-pronto-socorro", Name: "Pronto-Socorro"},
		{ID: "loc-centro-cirurgico", Name: "Centro Cirúrgico"},
		{ID: "loc-enfermaria", Name: "Enfermaria"},
	}
}

func Schedules() []domain.Schedule {
	today := time.Now()
	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)
	date := func(t time.Time) string { return t.Format("2006-01-02") }

	return []domain.Schedule{
		{
			ID:          "sched-demo-uti-adulto",
			LocationID:  "loc-uti-adulto",
			Title:       "UTI Adulto — plantões do mês",
			Description: "Cobertura diurna e noturna da UTI adulto",
			StartDate:   date(monthStart),
			EndDate:     date(monthEnd),
			Status:      domain.StatusPublished,
			PublishedAt: date(monthStart.AddDate(0, 0, -5)),
			ShiftValue:  180000,
			CreatedAt:   date(monthStart.AddDate(0, 0, -10)),
			UpdatedAt:   date(monthStart.AddDate(0, 0, -2)),
		},
		{
			ID:          "sched-demo-pronto-socorro",
			LocationID:  "loc-pronto-socorro",
			Title:       "Pronto-Socorro — escala geral",
			StartDate:   date(monthStart),
			EndDate:     date(monthEnd),
			Status:      domain.StatusPublished,
			PublishedAt: date(monthStart.AddDate(0, 0, -3)),
			ShiftValue:  150000,
			CreatedAt:   date(monthStart.AddDate(0, 0, -8)),
			UpdatedAt:   date(monthStart.AddDate(0, 0, -3)),
		},
		{
			// rascunho sem valor definido: o resolvedor deve ignorá-la e
			// seguir para o próximo nível da cascata
			ID:         "sched-demo-enfermaria",
			LocationID: "loc-enfermaria",
			Title:      "Enfermaria — rascunho",
			StartDate:  date(monthStart),
			EndDate:    date(monthEnd),
			Status:     domain.StatusDraft,
			CreatedAt:  date(monthStart.AddDate(0, 0, -1)),
			UpdatedAt:  date(monthStart.AddDate(0, 0, -1)),
		},
	}
}
