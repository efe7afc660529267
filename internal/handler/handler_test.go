package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/escalamed/plantao/backend/internal/config"
	"github.com/escalamed/plantao/backend/internal/domain"
	"github.com/escalamed/plantao/backend/internal/pricing"
	"github.com/escalamed/plantao/backend/internal/roster"
	"github.com/escalamed/plantao/backend/internal/snapshot"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()

	locations := []domain.Location{
		{ID: "loc-uti-adulto", Name: "UTI Adulto"},
	}
	seed := []domain.Schedule{
		{
			ID:         "sched-uti",
			LocationID: "loc-uti-adulto",
			Title:      "Escala da UTI",
			StartDate:  "2026-02-01",
			EndDate:    "2026-02-28",
			Status:     domain.StatusPublished,
			ShiftValue: 200000,
		},
	}

	manager := roster.NewManager("org-test", locations, seed, snapshot.NewMemoryStore())
	resolver := pricing.NewResolver(manager)

	h, err := NewHandler(&config.Config{}, manager, resolver, nil)
	require.NoError(t, err)
	h.RegisterRoutes()

	return h
}

func doRequest(t *testing.T, h *Handler, method, path string, body any) Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestCreateScheduleEndpoint(t *testing.T) {
	h := newTestHandler(t)

	resp := doRequest(t, h, http.MethodPost, "/schedules", map[string]any{
		"title":      "Escala nova",
		"locationId": "loc-uti-adulto",
		"startDate":  "2026-03-01",
		"endDate":    "2026-03-31",
	})
	require.True(t, resp.Success, resp.Message)

	resp = doRequest(t, h, http.MethodGet, "/schedules", nil)
	require.True(t, resp.Success)
	schedules, ok := resp.Data.([]any)
	require.True(t, ok)
	assert.Len(t, schedules, 2)
}

func TestCreateScheduleEndpointValidation(t *testing.T) {
	h := newTestHandler(t)

	resp := doRequest(t, h, http.MethodPost, "/schedules", map[string]any{
		"title":      "",
		"locationId": "loc-uti-adulto",
		"startDate":  "2026-03-01",
		"endDate":    "2026-03-31",
	})
	require.False(t, resp.Success)
	assert.Equal(t, "o título da escala é obrigatório", resp.Message)
}

func TestDeleteScheduleEndpointIdempotent(t *testing.T) {
	h := newTestHandler(t)

	resp := doRequest(t, h, http.MethodDelete, "/schedules/nao-existe", nil)
	assert.True(t, resp.Success, "remoção é idempotente mesmo sem a escala")
}

func TestResolveShiftValueEndpoint(t *testing.T) {
	h := newTestHandler(t)

	resp := doRequest(t, h, http.MethodPost, "/shift-value/resolve", map[string]any{
		"date":       "2026-02-10",
		"sectorName": "uti adulto",
	})
	require.True(t, resp.Success)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(200000), data["amount"])
}

func TestGetScheduleEndpointNotFound(t *testing.T) {
	h := newTestHandler(t)

	resp := doRequest(t, h, http.MethodGet, "/schedules/nao-existe", nil)
	require.False(t, resp.Success)
	assert.Equal(t, "escala não encontrada", resp.Message)
}
