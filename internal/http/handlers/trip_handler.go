// README: Trip handlers for create/get/regenerate; dispatches generation runs.
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tripforge/internal/logger"
	"tripforge/internal/modules/itinerary"
	"tripforge/internal/modules/trip"
	"tripforge/internal/types"
)

// generationTimeout bounds one pipeline run end to end, including the
// flight-offer poll loop and the narrative round-trip.
const generationTimeout = 5 * time.Minute

// TripStore is the persistence slice these handlers need.
type TripStore interface {
	Create(ctx context.Context, t *trip.Trip) error
	Get(ctx context.Context, id types.ID) (*trip.Trip, error)
	BeginGeneration(ctx context.Context, id types.ID) (int, error)
}

// PipelineRunner runs one itinerary generation for a trip.
type PipelineRunner interface {
	Run(ctx context.Context, id types.ID, generation int) error
}

type TripHandler struct {
	store  TripStore
	runner PipelineRunner
	log    logger.Logger
}

func NewTripHandler(store TripStore, runner PipelineRunner, log logger.Logger) *TripHandler {
	return &TripHandler{store: store, runner: runner, log: log}
}

type tripResponse struct {
	ID        types.ID             `json:"id"`
	Status    trip.Status          `json:"status"`
	Request   trip.Request         `json:"request"`
	Itinerary *itinerary.Itinerary `json:"itinerary,omitempty"`
	CreatedAt time.Time            `json:"createdAt"`
	UpdatedAt time.Time            `json:"updatedAt"`
}

// Create handles POST /api/trips. The itinerary is generated asynchronously;
// the response is an immediate 202 with the trip in the generating state.
func (h *TripHandler) Create(c *gin.Context) {
	var req trip.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}
	if req.EndDate.Before(req.StartDate) {
		writeError(c, http.StatusBadRequest, "endDate precedes startDate")
		return
	}

	t := &trip.Trip{
		ID:        types.ID(uuid.NewString()),
		Request:   req,
		Status:    trip.StatusPending,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.store.Create(c.Request.Context(), t); err != nil {
		h.log.Error("trip create failed", "err", err)
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}

	generation, err := h.store.BeginGeneration(c.Request.Context(), t.ID)
	if err != nil {
		writeTripError(c, err)
		return
	}
	h.dispatch(t.ID, generation)

	writeJSON(c, http.StatusAccepted, gin.H{
		"id":     t.ID,
		"status": trip.StatusGenerating,
	})
}

// Get handles GET /api/trips/:id.
func (h *TripHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		writeError(c, http.StatusBadRequest, "missing trip id")
		return
	}
	t, err := h.store.Get(c.Request.Context(), types.ID(id))
	if err != nil {
		writeTripError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, tripResponse{
		ID:        t.ID,
		Status:    t.Status,
		Request:   t.Request,
		Itinerary: t.Itinerary,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	})
}

// Regenerate handles POST /api/trips/:id/regenerate. Bumping the generation
// token here is what invalidates any still-running older run.
func (h *TripHandler) Regenerate(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		writeError(c, http.StatusBadRequest, "missing trip id")
		return
	}
	generation, err := h.store.BeginGeneration(c.Request.Context(), types.ID(id))
	if err != nil {
		writeTripError(c, err)
		return
	}
	h.dispatch(types.ID(id), generation)

	writeJSON(c, http.StatusAccepted, gin.H{
		"id":     id,
		"status": trip.StatusGenerating,
	})
}

// dispatch starts one generation run detached from the request context.
func (h *TripHandler) dispatch(id types.ID, generation int) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), generationTimeout)
		defer cancel()
		if err := h.runner.Run(ctx, id, generation); err != nil {
			h.log.Error("generation run returned error", "trip", string(id), "err", err)
		}
	}()
}
