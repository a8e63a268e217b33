// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/csv"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/danielhkuo/crowdvote/metrics"
	"github.com/danielhkuo/crowdvote/middleware"
	"github.com/danielhkuo/crowdvote/models"
	"github.com/danielhkuo/crowdvote/service"
)

// lastRoundsShown is how many recent rounds the summary endpoint returns.
const lastRoundsShown = 10

type HistoryHandler struct {
	svc *service.Service
}

func NewHistoryHandler(svc *service.Service) *HistoryHandler {
	return &HistoryHandler{svc: svc}
}

// Summary handles GET /history
// Returns the total retained round count and the last 10 rounds in
// chronological order.
func (h *HistoryHandler) Summary(w http.ResponseWriter, r *http.Request) {
	count, err := h.svc.RoundCount(r.Context())
	if err != nil {
		slog.Error("failed to count rounds", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	last, err := h.svc.LastRounds(r.Context(), lastRoundsShown)
	if err != nil {
		slog.Error("failed to query rounds", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if last == nil {
		last = []models.Round{}
	}

	middleware.JSONResponse(w, http.StatusOK, models.HistoryResponse{
		Count:      count,
		LastRounds: last,
	})
}

// Export handles GET /history/export
// Streams the full retained history as a CSV download.
func (h *HistoryHandler) Export(w http.ResponseWriter, r *http.Request) {
	rounds, err := h.svc.AllRounds(r.Context())
	if err != nil {
		slog.Error("failed to export rounds", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment;filename=stored_votes.csv`)

	cw := csv.NewWriter(w)
	cw.Write([]string{"Time", "Average", "Standard Deviation", "Median", "Votes", "Users"})
	for _, rec := range rounds {
		cw.Write([]string{
			rec.Timestamp,
			strconv.FormatFloat(rec.Avg, 'f', 2, 64),
			strconv.FormatFloat(rec.Sdev, 'f', 2, 64),
			strconv.FormatFloat(rec.Median, 'f', 2, 64),
			joinFloats(rec.Votes),
			joinInts(rec.Users),
		})
	}
	cw.Flush()

	if err := cw.Error(); err != nil {
		// Headers are gone; nothing left to do but log
		slog.Error("failed to write CSV export", "error", err)
	}
}

// Clear handles POST /history/clear
// Irreversible.
func (h *HistoryHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.ClearHistory(r.Context()); err != nil {
		slog.Error("failed to clear history", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	metrics.HistoryCleared()
	slog.Info("round history cleared")

	middleware.JSONResponse(w, http.StatusOK, models.StatusResponse{
		Status: "Round history cleared",
	})
}

func joinFloats(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}
