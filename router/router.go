// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/crowdvote/cliparse"
	"github.com/danielhkuo/crowdvote/handlers"
	"github.com/danielhkuo/crowdvote/metrics"
	"github.com/danielhkuo/crowdvote/middleware"
	"github.com/danielhkuo/crowdvote/service"
)

func NewRouter(svc *service.Service, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	roundHandler := handlers.NewRoundHandler(svc)
	voteHandler := handlers.NewVoteHandler(svc)
	historyHandler := handlers.NewHistoryHandler(svc)
	eventsHandler := handlers.NewEventsHandler(svc)
	pageHandler := handlers.NewPageHandler(svc)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Round lifecycle (admin operations)
	mux.HandleFunc("POST /rounds/open", middleware.WithLogging(roundHandler.Open))
	mux.HandleFunc("POST /rounds/close", middleware.WithLogging(roundHandler.Close))
	mux.HandleFunc("GET /rounds/status", middleware.WithLogging(roundHandler.Status))

	// Voting operations (public)
	mux.HandleFunc("POST /votes", middleware.WithLogging(voteHandler.Submit))
	mux.HandleFunc("GET /votes/count", middleware.WithLogging(voteHandler.Count))
	mux.HandleFunc("GET /votes/check", middleware.WithLogging(voteHandler.CheckStatus))
	mux.HandleFunc("POST /votes/check/toggle", middleware.WithLogging(voteHandler.ToggleCheck))

	// Round history
	mux.HandleFunc("GET /history", middleware.WithLogging(historyHandler.Summary))
	mux.HandleFunc("GET /history/export", middleware.WithLogging(historyHandler.Export))
	mux.HandleFunc("POST /history/clear", middleware.WithLogging(historyHandler.Clear))

	// State-change stream
	mux.HandleFunc("GET /events", middleware.WithLogging(eventsHandler.Stream))

	// Prometheus scrape endpoint
	mux.Handle("GET /metrics", metrics.Handler())

	// HTML pages
	mux.HandleFunc("GET /{$}", middleware.WithLogging(pageHandler.Vote))
	mux.HandleFunc("GET /admin", middleware.WithLogging(pageHandler.Admin))

	return middleware.CORS(mux)
}
