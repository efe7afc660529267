package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/escalamed/plantao/backend/internal/domain"
	"github.com/escalamed/plantao/backend/internal/utils"
)

type stubSource struct {
	schedules []domain.Schedule
	locations []domain.Location
}

func (s *stubSource) Schedules() []domain.Schedule {
	out := make([]domain.Schedule, len(s.schedules))
	copy(out, s.schedules)
	return out
}

func (s *stubSource) LocationByName(name string) (domain.Location, bool) {
	normalized := utils.NormalizeName(name)
	for _, loc := range s.locations {
		if utils.NormalizeName(loc.Name) == normalized {
			return loc, true
		}
	}
	return domain.Location{}, false
}

func newStubSource() *stubSource {
	return &stubSource{
		locations: []domain.Location{
			{ID: "loc-uti", Name: "UTI Adulto"},
			{ID: "loc-ps", Name: "Pronto-Socorro"},
		},
		schedules: []domain.Schedule{
			{
				ID:         "sched-uti",
				LocationID: "loc-uti",
				Location:   domain.Location{ID: "loc-uti", Name: "UTI Adulto"},
				StartDate:  "2026-02-01",
				EndDate:    "2026-02-28",
				ShiftValue: 200000,
				UpdatedAt:  "2026-01-20",
			},
			{
				ID:         "sched-ps",
				LocationID: "loc-ps",
				Location:   domain.Location{ID: "loc-ps", Name: "Pronto-Socorro"},
				StartDate:  "2026-02-01",
				EndDate:    "2026-02-28",
				ShiftValue: 150000,
				UpdatedAt:  "2026-01-25",
			},
			{
				// valor zero conta como "sem valor definido", mesmo sendo a
				// escala mais recente
				ID:         "sched-sem-valor",
				LocationID: "loc-uti",
				Location:   domain.Location{ID: "loc-uti", Name: "UTI Adulto"},
				StartDate:  "2026-02-01",
				EndDate:    "2026-02-28",
				ShiftValue: 0,
				UpdatedAt:  "2026-01-28",
			},
			{
				// setor que não existe no diretório, só o nome embutido
				ID:         "sched-cc",
				LocationID: "loc-cc",
				Location:   domain.Location{ID: "loc-cc", Name: "Centro Cirúrgico"},
				StartDate:  "2026-02-01",
				EndDate:    "2026-02-28",
				ShiftValue: 120000,
				UpdatedAt:  "2026-01-10",
			},
		},
	}
}

func TestResolveDirectScheduleMatch(t *testing.T) {
	r := NewResolver(newStubSource())

	amount := r.Resolve(domain.ShiftValueQuery{
		ScheduleID: "sched-uti",
		Date:       "2030-12-25",
		SectorName: "Pronto-Socorro",
	})

	assert.Equal(t, int64(200000), amount, "o id da escala vence qualquer outro critério")
}

func TestResolveZeroValueFallsThrough(t *testing.T) {
	r := NewResolver(newStubSource())

	amount := r.Resolve(domain.ShiftValueQuery{
		ScheduleID: "sched-sem-valor",
		Date:       "2026-02-10",
		SectorName: "UTI Adulto",
	})

	assert.Equal(t, int64(200000), amount, "escala sem valor definido cai para o match por setor")
}

func TestResolveLocationMatchIgnoresAccentsAndCase(t *testing.T) {
	r := NewResolver(newStubSource())

	for _, sectorName := range []string{"UTI Adulto", "uti adulto", "  UTI ADULTO  "} {
		amount := r.Resolve(domain.ShiftValueQuery{
			Date:       "2026-02-10",
			SectorName: sectorName,
		})
		assert.Equal(t, int64(200000), amount, "sectorName %q", sectorName)
	}
}

func TestResolveEmbeddedNameFallback(t *testing.T) {
	r := NewResolver(newStubSource())

	// "Centro Cirúrgico" não está no diretório de setores, o match vem do
	// nome embutido na própria escala, sem acentos e em minúsculas
	amount := r.Resolve(domain.ShiftValueQuery{
		Date:       "2026-02-10",
		SectorName: "centro cirurgico",
	})

	assert.Equal(t, int64(120000), amount)
}

func TestResolveDateOnlyPrefersMostRecent(t *testing.T) {
	r := NewResolver(newStubSource())

	// setor desconhecido: só a data decide, e a escala com valor mais
	// recentemente atualizada vence (a mais recente de todas não tem valor)
	amount := r.Resolve(domain.ShiftValueQuery{
		Date:       "2026-02-10",
		SectorName: "Setor Fantasma",
	})

	assert.Equal(t, int64(150000), amount)
}

func TestResolveDateTruncation(t *testing.T) {
	r := NewResolver(newStubSource())

	amount := r.Resolve(domain.ShiftValueQuery{
		Date:       "2026-02-10T19:00:00.000Z",
		SectorName: "UTI Adulto",
	})

	assert.Equal(t, int64(200000), amount, "datas com horário são truncadas antes da comparação")
}

func TestResolveFallbackValue(t *testing.T) {
	r := NewResolver(newStubSource())

	fallback := func(v float64) *float64 { return &v }

	tests := []struct {
		name     string
		fallback *float64
		want     int64
	}{
		{name: "fallback positivo arredondado", fallback: fallback(1234.6), want: 1235},
		{name: "fallback zero ignorado", fallback: fallback(0), want: DefaultShiftValue},
		{name: "fallback negativo ignorado", fallback: fallback(-50), want: DefaultShiftValue},
		{name: "fallback NaN ignorado", fallback: fallback(math.NaN()), want: DefaultShiftValue},
		{name: "fallback infinito ignorado", fallback: fallback(math.Inf(1)), want: DefaultShiftValue},
		{name: "sem fallback", fallback: nil, want: DefaultShiftValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount := r.Resolve(domain.ShiftValueQuery{
				Date:          "2030-12-25",
				SectorName:    "Setor Fantasma",
				FallbackValue: tt.fallback,
			})
			assert.Equal(t, tt.want, amount)
		})
	}
}

func TestResolveNeverReturnsNonPositive(t *testing.T) {
	r := NewResolver(newStubSource())

	queries := []domain.ShiftValueQuery{
		{},
		{Date: "2026-02-10"},
		{SectorName: "UTI Adulto"},
		{ScheduleID: "nao-existe"},
		{Date: "1999-01-01", SectorName: "nada", ScheduleID: "nada"},
	}

	for _, q := range queries {
		amount := r.Resolve(q)
		require.Positive(t, amount)
	}
}
