// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/crowdvote/metrics"
	"github.com/danielhkuo/crowdvote/middleware"
	"github.com/danielhkuo/crowdvote/models"
	"github.com/danielhkuo/crowdvote/service"
)

type VoteHandler struct {
	svc *service.Service
}

func NewVoteHandler(svc *service.Service) *VoteHandler {
	return &VoteHandler{svc: svc}
}

// Submit handles POST /votes
// Rejections carry a code (round_closed, invalid_value, duplicate_vote) so
// clients can distinguish them from server failures.
func (h *VoteHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.UserID == "" {
		metrics.VoteRejected(models.CodeInvalidValue)
		middleware.RejectionResponse(w, http.StatusBadRequest, models.CodeInvalidValue, "user_id is required")
		return
	}

	err := h.svc.SubmitVote(r.Context(), req.UserID, req.VoteValue)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrRoundClosed):
		metrics.VoteRejected(models.CodeRoundClosed)
		middleware.RejectionResponse(w, http.StatusConflict, models.CodeRoundClosed, "Voting round is closed")
		return
	case errors.Is(err, service.ErrInvalidValue):
		metrics.VoteRejected(models.CodeInvalidValue)
		middleware.RejectionResponse(w, http.StatusBadRequest, models.CodeInvalidValue, "Invalid vote value")
		return
	case errors.Is(err, service.ErrDuplicateVote):
		metrics.VoteRejected(models.CodeDuplicateVote)
		middleware.RejectionResponse(w, http.StatusConflict, models.CodeDuplicateVote, "You have already voted")
		return
	default:
		slog.Error("failed to record vote", "error", err, "user_id", req.UserID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	metrics.VoteAccepted()
	slog.Debug("vote recorded", "user_id", req.UserID)

	middleware.JSONResponse(w, http.StatusCreated, models.StatusResponse{
		Status: "Your vote has been recorded",
	})
}

// Count handles GET /votes/count
// Polled by the admin page; excluded from request logging.
func (h *VoteHandler) Count(w http.ResponseWriter, r *http.Request) {
	count, err := h.svc.VoteCount(r.Context())
	if err != nil {
		slog.Error("failed to count votes", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.VoteCountResponse{Count: count})
}

// CheckStatus handles GET /votes/check
func (h *VoteHandler) CheckStatus(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.DuplicateCheckResponse{
		Enabled: h.svc.DuplicateCheck(),
	})
}

// ToggleCheck handles POST /votes/check/toggle
func (h *VoteHandler) ToggleCheck(w http.ResponseWriter, r *http.Request) {
	enabled, err := h.svc.ToggleDuplicateCheck(r.Context())
	if err != nil {
		slog.Error("failed to toggle duplicate check", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	status := "Check for repeated votes is now disabled"
	if enabled {
		status = "Check for repeated votes is now enabled"
	}
	slog.Info("duplicate check toggled", "enabled", enabled)

	middleware.JSONResponse(w, http.StatusOK, models.DuplicateCheckResponse{
		Enabled: enabled,
		Status:  status,
	})
}
