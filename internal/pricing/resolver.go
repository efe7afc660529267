package pricing

import (
	"math"
	"sort"

	"github.com/escalamed/plantao/backend/internal/domain"
	"github.com/escalamed/plantao/backend/internal/utils"
)

// DefaultShiftValue é o valor aplicado quando nenhuma escala cobre o plantão
// e nenhum fallback positivo foi informado, em centavos.
const DefaultShiftValue int64 = 140000

// ScheduleSource é o que o resolvedor precisa enxergar do agregado de
// escalas: a coleção atual e o diretório de setores.
type ScheduleSource interface {
	Schedules() []domain.Schedule
	LocationByName(name string) (domain.Location, bool)
}

// Resolver determina o valor de um plantão a partir de dados parciais do
// cliente. O plantão carrega só o nome do setor, não o id, e pode ou não
// saber a qual escala pertence, então a resolução degrada do match exato para
// o aproximado em vez de falhar.
type Resolver struct {
	src ScheduleSource
}

func NewResolver(src ScheduleSource) *Resolver {
	return &Resolver{src: src}
}

// Resolve nunca falha e sempre devolve um valor positivo. A precedência, na
// ordem, é: escala indicada pelo id → setor resolvido pelo nome + data dentro
// do período → nome do setor embutido na escala + data → só a data → fallback
// informado → valor padrão. Valor zero ou negativo de escala conta como "sem
// valor definido" e cai para o próximo nível.
func (r *Resolver) Resolve(query domain.ShiftValueQuery) int64 {
	date := utils.TruncateDate(query.Date)
	schedules := r.src.Schedules()

	// 1. match direto pela escala
	if query.ScheduleID != "" {
		for _, s := range schedules {
			if s.ID == query.ScheduleID && s.ShiftValue > 0 {
				return s.ShiftValue
			}
		}
	}

	// 2. setor resolvido pelo nome no diretório + data dentro do período
	sector := utils.NormalizeName(query.SectorName)
	if sector != "" {
		if loc, ok := r.src.LocationByName(query.SectorName); ok {
			for _, s := range schedules {
				if s.LocationID == loc.ID && containsDate(&s, date) && s.ShiftValue > 0 {
					return s.ShiftValue
				}
			}
		}
	}

	// as varreduras por nome e por data precisam de uma ordem total sobre as
	// candidatas para serem determinísticas: mais recentes primeiro
	sortByRecency(schedules)

	// 3. nome do setor embutido na escala + data dentro do período
	if sector != "" {
		for _, s := range schedules {
			if utils.NormalizeName(s.Location.Name) == sector && containsDate(&s, date) && s.ShiftValue > 0 {
				return s.ShiftValue
			}
		}
	}

	// 4. qualquer escala cujo período contenha a data
	for _, s := range schedules {
		if containsDate(&s, date) && s.ShiftValue > 0 {
			return s.ShiftValue
		}
	}

	// 5. fallback informado, senão o valor padrão
	if query.FallbackValue != nil {
		v := *query.FallbackValue
		if !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0 {
			return int64(math.Round(v))
		}
	}

	return DefaultShiftValue
}

// containsDate testa se a data cai no período da escala, inclusivo nas duas
// pontas. A comparação de strings só vale porque todas as datas já estão na
// forma fixa YYYY-MM-DD.
func containsDate(s *domain.Schedule, date string) bool {
	if date == "" || s.StartDate == "" || s.EndDate == "" {
		return false
	}
	return s.StartDate <= date && date <= s.EndDate
}

func sortByRecency(schedules []domain.Schedule) {
	sort.SliceStable(schedules, func(i, j int) bool {
		if schedules[i].UpdatedAt != schedules[j].UpdatedAt {
			return schedules[i].UpdatedAt > schedules[j].UpdatedAt
		}
		return schedules[i].StartDate > schedules[j].StartDate
	})
}
