package handler

import (
	"net/http"

	"github.com/escalamed/plantao/backend/internal/domain"
)

// ResolveShiftValue nunca devolve erro: com dados incompletos a resolução
// degrada até o valor padrão.
func (h *Handler) ResolveShiftValue(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Date          string   `json:"date"`
		SectorName    string   `json:"sectorName"`
		ScheduleID    string   `json:"scheduleId"`
		FallbackValue *float64 `json:"fallbackValue"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	amount := h.resolver.Resolve(domain.ShiftValueQuery{
		Date:          req.Date,
		SectorName:    req.SectorName,
		ScheduleID:    req.ScheduleID,
		FallbackValue: req.FallbackValue,
	})

	h.successResponse(w, r, "valor do plantão resolvido com sucesso", map[string]int64{"amount": amount})
}
