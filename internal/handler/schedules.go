package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/escalamed/plantao/backend/internal/domain"
	"github.com/escalamed/plantao/backend/internal/events"
)

type scheduleRequest struct {
	Title               string                `json:"title"`
	Description         string                `json:"description"`
	LocationID          string                `json:"locationId"`
	StartDate           string                `json:"startDate"`
	EndDate             string                `json:"endDate"`
	Status              domain.ScheduleStatus `json:"status" validate:"omitempty,oneof=DRAFT PUBLISHED CLOSED ARCHIVED"`
	PublishedAt         string                `json:"publishedAt"`
	ShiftValue          int64                 `json:"shiftValue" validate:"omitempty,min=0"`
	RequireSwapApproval *bool                 `json:"requireSwapApproval"`
}

func (req *scheduleRequest) toInput() domain.ScheduleInput {
	return domain.ScheduleInput{
		Title:               req.Title,
		Description:         req.Description,
		LocationID:          req.LocationID,
		StartDate:           req.StartDate,
		EndDate:             req.EndDate,
		Status:              req.Status,
		PublishedAt:         req.PublishedAt,
		ShiftValue:          req.ShiftValue,
		RequireSwapApproval: req.RequireSwapApproval,
	}
}

func (h *Handler) CreateSchedule(w http.ResponseWriter, r *http.Request) {
	var req scheduleRequest

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	// as regras de domínio (título, setor, ordem das datas) rodam no
	// agregado e já produzem a mensagem exibida ao usuário
	sched, err := h.roster.CreateSchedule(req.toInput())
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	h.publishEvent(r, events.TypeScheduleCreated, sched.ID)
	h.successResponse(w, r, "escala criada com sucesso", sched)
}

func (h *Handler) GetAllSchedules(w http.ResponseWriter, r *http.Request) {
	h.successResponse(w, r, "escalas obtidas com sucesso", h.roster.Schedules())
}

func (h *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	sched := r.Context().Value(ScheduleCtx).(*domain.Schedule)

	h.successResponse(w, r, "escala obtida com sucesso", sched)
}

func (h *Handler) UpdateSchedule(w http.ResponseWriter, r *http.Request) {
	sched := r.Context().Value(ScheduleCtx).(*domain.Schedule)

	var req scheduleRequest

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	updated, err := h.roster.UpdateSchedule(sched.ID, req.toInput())
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	h.publishEvent(r, events.TypeScheduleUpdated, updated.ID)
	h.successResponse(w, r, "escala atualizada com sucesso", updated)
}

func (h *Handler) DeleteSchedule(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	h.roster.DeleteSchedule(id)

	h.publishEvent(r, events.TypeScheduleDeleted, id)
	h.successResponse(w, r, "escala removida com sucesso", nil)
}

// publishEvent publica a mudança na fila sem bloquear a resposta: uma falha
// de publicação é registrada e a mutação segue valendo.
func (h *Handler) publishEvent(r *http.Request, eventType, scheduleID string) {
	if err := h.publisher.Publish(r.Context(), eventType, scheduleID); err != nil {
		slog.Error("não foi possível publicar o evento de escala", "type", eventType, "scheduleID", scheduleID, "error", err)
	}
}
