package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/danielhkuo/crowdvote/testutil"
)

// streamRecorder is a flushable ResponseWriter safe to read while the
// stream handler is still writing.
type streamRecorder struct {
	header http.Header

	mu    sync.Mutex
	buf   bytes.Buffer
	wrote chan struct{}
}

func newStreamRecorder() *streamRecorder {
	return &streamRecorder{
		header: make(http.Header),
		wrote:  make(chan struct{}, 8),
	}
}

func (r *streamRecorder) Header() http.Header { return r.header }

func (r *streamRecorder) WriteHeader(int) {}

func (r *streamRecorder) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, err := r.buf.Write(p)
	select {
	case r.wrote <- struct{}{}:
	default:
	}
	return n, err
}

func (r *streamRecorder) Flush() {}

func (r *streamRecorder) String() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.buf.String()
}

func TestEventStream(t *testing.T) {
	svc := testutil.NewTestService(t, 100)
	handler := NewEventsHandler(svc)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	req := testutil.MakeRequest("GET", "/events", nil, nil).WithContext(ctx)
	rec := newStreamRecorder()

	done := make(chan struct{})
	go func() {
		handler.Stream(rec, req)
		close(done)
	}()

	waitWrite := func() {
		t.Helper()
		select {
		case <-rec.wrote:
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for stream write")
		}
	}

	// Current state arrives on connect
	waitWrite()

	if err := svc.OpenRound(ctx); err != nil {
		t.Fatal(err)
	}
	waitWrite()

	// Disconnect ends the stream
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("stream did not stop after disconnect")
	}

	if got, want := rec.String(), "data: false\n\ndata: true\n\n"; got != want {
		t.Errorf("expected stream %q, got %q", want, got)
	}

	if ct := rec.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Errorf("expected text/event-stream, got %q", ct)
	}
}

func TestEventStreamRequiresFlusher(t *testing.T) {
	svc := testutil.NewTestService(t, 100)
	handler := NewEventsHandler(svc)

	// A plain writer without http.Flusher cannot stream
	rec := httptest.NewRecorder()
	w := struct{ http.ResponseWriter }{rec}

	handler.Stream(w, testutil.MakeRequest("GET", "/events", nil, nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500 for non-flushable writer, got %d", rec.Code)
	}
}
