// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"net/http"

	"github.com/danielhkuo/crowdvote/middleware"
	"github.com/danielhkuo/crowdvote/service"
)

type EventsHandler struct {
	svc *service.Service
}

func NewEventsHandler(svc *service.Service) *EventsHandler {
	return &EventsHandler{svc: svc}
}

// Stream handles GET /events
// Server-sent events: emits the open/closed boolean once on connect and
// then only when it changes. The subscription is cancelled when the client
// disconnects.
func (h *EventsHandler) Stream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Streaming unsupported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch := h.svc.Subscribe(r.Context())
	for {
		select {
		case <-r.Context().Done():
			return
		case open := <-ch:
			fmt.Fprintf(w, "data: %t\n\n", open)
			flusher.Flush()
		}
	}
}
