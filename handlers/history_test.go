package handlers

import (
	"context"
	"encoding/csv"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/crowdvote/models"
	"github.com/danielhkuo/crowdvote/service"
	"github.com/danielhkuo/crowdvote/testutil"
)

func runTestRound(t *testing.T, svc *service.Service, votes map[string]string) {
	t.Helper()

	ctx := context.Background()
	if err := svc.OpenRound(ctx); err != nil {
		t.Fatal(err)
	}
	for user, value := range votes {
		if err := svc.SubmitVote(ctx, user, value); err != nil {
			t.Fatalf("vote %s: %v", user, err)
		}
	}
	if _, err := svc.CloseRound(ctx); err != nil {
		t.Fatal(err)
	}
}

func TestHistorySummary(t *testing.T) {
	svc := testutil.NewTestService(t, 100)
	handler := NewHistoryHandler(svc)

	// Empty history serves an empty list, not null
	req := testutil.MakeRequest("GET", "/history", nil, nil)
	w := httptest.NewRecorder()
	handler.Summary(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.HistoryResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Count != 0 || resp.LastRounds == nil || len(resp.LastRounds) != 0 {
		t.Errorf("expected empty history, got %+v", resp)
	}

	runTestRound(t, svc, map[string]string{"a": "1", "b": "2"})
	runTestRound(t, svc, map[string]string{"a": "3", "b": "4"})

	w = httptest.NewRecorder()
	handler.Summary(w, testutil.MakeRequest("GET", "/history", nil, nil))
	testutil.AssertJSON(t, w, &resp)

	if resp.Count != 2 {
		t.Errorf("expected 2 rounds, got %d", resp.Count)
	}
	if len(resp.LastRounds) != 2 {
		t.Fatalf("expected 2 rounds listed, got %d", len(resp.LastRounds))
	}
	// Chronological: first round first
	if resp.LastRounds[0].Avg != 1.5 || resp.LastRounds[1].Avg != 3.5 {
		t.Errorf("expected avgs [1.5 3.5], got [%v %v]", resp.LastRounds[0].Avg, resp.LastRounds[1].Avg)
	}
}

func TestHistoryExportCSV(t *testing.T) {
	svc := testutil.NewTestService(t, 100)
	handler := NewHistoryHandler(svc)

	runTestRound(t, svc, map[string]string{"a": "4.0", "b": "5.0", "c": "4.5"})

	req := testutil.MakeRequest("GET", "/history/export", nil, nil)
	w := httptest.NewRecorder()
	handler.Export(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	if ct := w.Header().Get("Content-Type"); ct != "text/csv" {
		t.Errorf("expected text/csv, got %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "stored_votes.csv") {
		t.Errorf("expected attachment filename, got %q", cd)
	}

	records, err := csv.NewReader(w.Body).ReadAll()
	if err != nil {
		t.Fatalf("failed to parse CSV: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected header + 1 row, got %d records", len(records))
	}

	header := []string{"Time", "Average", "Standard Deviation", "Median", "Votes", "Users"}
	for i, col := range header {
		if records[0][i] != col {
			t.Errorf("header column %d: expected %q, got %q", i, col, records[0][i])
		}
	}

	row := records[1]
	if row[1] != "4.50" || row[2] != "0.41" || row[3] != "4.50" {
		t.Errorf("expected stats 4.50/0.41/4.50, got %v/%v/%v", row[1], row[2], row[3])
	}
	if len(strings.Split(row[4], ",")) != 3 || len(strings.Split(row[5], ",")) != 3 {
		t.Errorf("expected 3 paired votes and users, got %q / %q", row[4], row[5])
	}
}

func TestHistoryClear(t *testing.T) {
	svc := testutil.NewTestService(t, 100)
	handler := NewHistoryHandler(svc)

	runTestRound(t, svc, map[string]string{"a": "1"})

	req := testutil.MakeRequest("POST", "/history/clear", nil, nil)
	w := httptest.NewRecorder()
	handler.Clear(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	w = httptest.NewRecorder()
	handler.Summary(w, testutil.MakeRequest("GET", "/history", nil, nil))

	var resp models.HistoryResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Count != 0 {
		t.Errorf("expected empty history after clear, got %d", resp.Count)
	}
}
