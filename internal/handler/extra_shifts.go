package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/escalamed/plantao/backend/internal/domain"
	"github.com/escalamed/plantao/backend/internal/events"
)

func (h *Handler) AddExtraShift(w http.ResponseWriter, r *http.Request) {
	sched := r.Context().Value(ScheduleCtx).(*domain.Schedule)

	var req struct {
		LocationID    string `json:"locationId"`
		Date          string `json:"date"`
		StartTime     string `json:"startTime"`
		EndTime       string `json:"endTime"`
		RequiredCount int    `json:"requiredCount"`
		Notes         string `json:"notes"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	extraShift, err := h.roster.AddExtraShift(sched.ID, domain.ExtraShiftInput{
		LocationID:    req.LocationID,
		Date:          req.Date,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		RequiredCount: req.RequiredCount,
		Notes:         req.Notes,
	})
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	h.publishEvent(r, events.TypeExtraShiftAdded, sched.ID)
	h.successResponse(w, r, "plantão extra adicionado com sucesso", extraShift)
}

func (h *Handler) RemoveExtraShift(w http.ResponseWriter, r *http.Request) {
	scheduleID := chi.URLParam(r, "id")
	extraShiftID := chi.URLParam(r, "extraShiftID")

	h.roster.RemoveExtraShift(scheduleID, extraShiftID)

	h.publishEvent(r, events.TypeExtraShiftRemoved, scheduleID)
	h.successResponse(w, r, "plantão extra removido com sucesso", nil)
}
