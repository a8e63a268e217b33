// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/crowdvote/metrics"
	"github.com/danielhkuo/crowdvote/middleware"
	"github.com/danielhkuo/crowdvote/models"
	"github.com/danielhkuo/crowdvote/service"
)

type RoundHandler struct {
	svc *service.Service
}

func NewRoundHandler(svc *service.Service) *RoundHandler {
	return &RoundHandler{svc: svc}
}

// Open handles POST /rounds/open
// Valid from any state; re-opening an open round just re-clears the ledger.
func (h *RoundHandler) Open(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.OpenRound(r.Context()); err != nil {
		slog.Error("failed to open round", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to open round")
		return
	}

	metrics.RoundOpened()
	slog.Info("voting round opened")

	middleware.JSONResponse(w, http.StatusOK, models.StatusResponse{
		Status: "Voting is now open",
	})
}

// Close handles POST /rounds/close
// Returns the round statistics, or null statistics if nobody voted.
func (h *RoundHandler) Close(w http.ResponseWriter, r *http.Request) {
	rec, err := h.svc.CloseRound(r.Context())
	if err != nil {
		slog.Error("failed to close round", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to close round")
		return
	}

	metrics.RoundClosed()

	resp := models.CloseRoundResponse{
		Status: "Voting round is closed",
		Votes:  []float64{},
	}
	if rec != nil {
		resp.Avg = &rec.Avg
		resp.Sdev = &rec.Sdev
		resp.Median = &rec.Median
		resp.Votes = rec.Votes
		slog.Info("voting round closed", "votes", len(rec.Votes), "avg", rec.Avg)
	} else {
		slog.Info("voting round closed", "votes", 0)
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// Status handles GET /rounds/status
func (h *RoundHandler) Status(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.VotingStatusResponse{
		VotingOpen: h.svc.VotingOpen(),
	})
}
