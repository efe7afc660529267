package handler

import "net/http"

func (h *Handler) GetAllLocations(w http.ResponseWriter, r *http.Request) {
	h.successResponse(w, r, "setores obtidos com sucesso", h.roster.Locations())
}
