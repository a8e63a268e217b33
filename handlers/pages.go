// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/crowdvote/service"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pages = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

type PageHandler struct {
	svc *service.Service
}

func NewPageHandler(svc *service.Service) *PageHandler {
	return &PageHandler{svc: svc}
}

// Vote handles GET /
// The page only needs the current open/closed state; everything else it
// learns from the API.
func (h *PageHandler) Vote(w http.ResponseWriter, r *http.Request) {
	data := struct {
		VotingOpen bool
	}{
		VotingOpen: h.svc.VotingOpen(),
	}

	if err := pages.ExecuteTemplate(w, "vote.html", data); err != nil {
		slog.Error("failed to render vote page", "error", err)
	}
}

// Admin handles GET /admin
func (h *PageHandler) Admin(w http.ResponseWriter, r *http.Request) {
	if err := pages.ExecuteTemplate(w, "admin.html", nil); err != nil {
		slog.Error("failed to render admin page", "error", err)
	}
}
