// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package metrics provides Prometheus instrumentation for the voting
// service: vote acceptance/rejection counters, round lifecycle counters,
// and HTTP request metrics. All collectors register on the default
// registry; Handler exposes them for scraping.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "crowdvote"

var (
	votesAccepted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "votes_accepted_total",
		Help:      "Votes accepted into the current round ledger.",
	})

	votesRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "votes_rejected_total",
		Help:      "Votes rejected, by reason (round_closed, invalid_value, duplicate_vote).",
	}, []string{"reason"})

	roundsOpened = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rounds_opened_total",
		Help:      "Voting rounds opened (including idempotent re-opens).",
	})

	roundsClosed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rounds_closed_total",
		Help:      "Voting rounds closed.",
	})

	historyClears = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "history_clears_total",
		Help:      "Times the round history was cleared.",
	})

	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by method, path, and status code.",
	}, []string{"method", "path", "status"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by method and path.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path"})
)

func VoteAccepted()              { votesAccepted.Inc() }
func VoteRejected(reason string) { votesRejected.WithLabelValues(reason).Inc() }
func RoundOpened()               { roundsOpened.Inc() }
func RoundClosed()               { roundsClosed.Inc() }
func HistoryCleared()            { historyClears.Inc() }

// ObserveHTTPRequest records one completed request. The route set is small
// and static, so the raw path is safe as a label.
func ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// Handler returns the scrape endpoint for the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
