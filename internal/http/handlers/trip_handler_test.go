// README: Handler tests for trip create/get/regenerate.
package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"tripforge/internal/http/handlers"
	"tripforge/internal/logger"
	"tripforge/internal/modules/trip"
	"tripforge/internal/types"
)

type stubStore struct {
	trips map[types.ID]*trip.Trip
}

func newStubStore() *stubStore {
	return &stubStore{trips: map[types.ID]*trip.Trip{}}
}

func (s *stubStore) Create(_ context.Context, t *trip.Trip) error {
	s.trips[t.ID] = t
	return nil
}

func (s *stubStore) Get(_ context.Context, id types.ID) (*trip.Trip, error) {
	t, ok := s.trips[id]
	if !ok {
		return nil, trip.ErrNotFound
	}
	return t, nil
}

func (s *stubStore) BeginGeneration(_ context.Context, id types.ID) (int, error) {
	t, ok := s.trips[id]
	if !ok {
		return 0, trip.ErrNotFound
	}
	t.Generation++
	t.Status = trip.StatusGenerating
	return t.Generation, nil
}

type runCall struct {
	id         types.ID
	generation int
}

// stubRunner records dispatched runs and signals the test, since dispatch
// happens on a detached goroutine.
type stubRunner struct {
	calls chan runCall
}

func newStubRunner() *stubRunner {
	return &stubRunner{calls: make(chan runCall, 4)}
}

func (r *stubRunner) Run(_ context.Context, id types.ID, generation int) error {
	r.calls <- runCall{id: id, generation: generation}
	return nil
}

func (r *stubRunner) wait(t *testing.T) runCall {
	t.Helper()
	select {
	case c := <-r.calls:
		return c
	case <-time.After(2 * time.Second):
		t.Fatal("no generation run dispatched")
		return runCall{}
	}
}

func buildTestRouter(store handlers.TripStore, runner handlers.PipelineRunner) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handlers.NewTripHandler(store, runner, logger.Nop())
	r := gin.New()
	r.POST("/api/trips", h.Create)
	r.GET("/api/trips/:id", h.Get)
	r.POST("/api/trips/:id/regenerate", h.Regenerate)
	return r
}

func doRequest(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validCreateBody() map[string]any {
	return map[string]any{
		"destination": "Rome",
		"origin":      "London",
		"startDate":   "2026-05-10T00:00:00Z",
		"endDate":     "2026-05-12T00:00:00Z",
		"travelers":   2,
		"budget":      1500,
	}
}

func TestCreate_DispatchesGeneration(t *testing.T) {
	store := newStubStore()
	runner := newStubRunner()
	r := buildTestRouter(store, runner)

	w := doRequest(r, http.MethodPost, "/api/trips", validCreateBody())
	if w.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != string(trip.StatusGenerating) {
		t.Errorf("status = %s, want generating", resp.Status)
	}

	call := runner.wait(t)
	if string(call.id) != resp.ID || call.generation != 1 {
		t.Errorf("dispatched run = %+v, want trip %s generation 1", call, resp.ID)
	}
}

func TestCreate_InvalidBody(t *testing.T) {
	r := buildTestRouter(newStubStore(), newStubRunner())
	w := doRequest(r, http.MethodPost, "/api/trips", map[string]any{"destination": "Rome"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestCreate_InvertedDates(t *testing.T) {
	body := validCreateBody()
	body["startDate"] = "2026-05-12T00:00:00Z"
	body["endDate"] = "2026-05-10T00:00:00Z"
	r := buildTestRouter(newStubStore(), newStubRunner())
	w := doRequest(r, http.MethodPost, "/api/trips", body)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestGet_NotFound(t *testing.T) {
	r := buildTestRouter(newStubStore(), newStubRunner())
	w := doRequest(r, http.MethodGet, "/api/trips/nope", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestRegenerate_BumpsGeneration(t *testing.T) {
	store := newStubStore()
	runner := newStubRunner()
	store.trips["t1"] = &trip.Trip{ID: "t1", Status: trip.StatusCompleted, Generation: 3}
	r := buildTestRouter(store, runner)

	w := doRequest(r, http.MethodPost, "/api/trips/t1/regenerate", nil)
	if w.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", w.Code)
	}
	call := runner.wait(t)
	if call.id != "t1" || call.generation != 4 {
		t.Errorf("dispatched run = %+v, want trip t1 generation 4", call)
	}
	if store.trips["t1"].Status != trip.StatusGenerating {
		t.Errorf("trip status = %s, want generating", store.trips["t1"].Status)
	}
}

func TestRegenerate_NotFound(t *testing.T) {
	r := buildTestRouter(newStubStore(), newStubRunner())
	w := doRequest(r, http.MethodPost, "/api/trips/nope/regenerate", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}
