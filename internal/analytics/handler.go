package analytics

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	apperrors "github.com/1Percent-hub/ScholarHub/pkg/errors"
	"github.com/1Percent-hub/ScholarHub/pkg/logger"
)

// SnapshotStore reads persisted stats snapshots. Implemented by
// aggregator.Store; nil disables the snapshot endpoints.
type SnapshotStore interface {
	LatestSnapshot(ctx context.Context) (*AggregatedStats, error)
	ListSnapshots(ctx context.Context, limit int) ([]AggregatedStats, error)
}

type Handler struct {
	aggregator *Aggregator
	snapshots  SnapshotStore
	logger     *slog.Logger
}

func NewHandler(aggregator *Aggregator, snapshots SnapshotStore) *Handler {
	return &Handler{
		aggregator: aggregator,
		snapshots:  snapshots,
		logger:     logger.WithComponent("analytics-handler"),
	}
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.aggregator.Stats())
}

func (h *Handler) TopQueries(w http.ResponseWriter, r *http.Request) {
	limit := queryLimit(r, 10)
	h.writeJSON(w, http.StatusOK, map[string]any{
		"queries": h.aggregator.TopQueries(limit),
	})
}

func (h *Handler) LatestSnapshot(w http.ResponseWriter, r *http.Request) {
	if h.snapshots == nil {
		h.writeError(w, http.StatusServiceUnavailable, "snapshots are disabled")
		return
	}
	stats, err := h.snapshots.LatestSnapshot(r.Context())
	if err != nil {
		h.logger.Error("loading latest snapshot failed", "error", err)
		h.writeError(w, apperrors.HTTPStatusCode(err), "loading snapshot failed")
		return
	}
	if stats == nil {
		h.writeError(w, http.StatusNotFound, "no snapshots yet")
		return
	}
	h.writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) ListSnapshots(w http.ResponseWriter, r *http.Request) {
	if h.snapshots == nil {
		h.writeError(w, http.StatusServiceUnavailable, "snapshots are disabled")
		return
	}
	limit := queryLimit(r, 10)
	snapshots, err := h.snapshots.ListSnapshots(r.Context(), limit)
	if err != nil {
		h.logger.Error("listing snapshots failed", "error", err)
		h.writeError(w, apperrors.HTTPStatusCode(err), "listing snapshots failed")
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"snapshots": snapshots,
	})
}

// queryLimit reads ?limit=, keeping the result in 1..100.
func queryLimit(r *http.Request, def int) int {
	limit := def
	if s := r.URL.Query().Get("limit"); s != "" {
		if parsed, err := strconv.Atoi(s); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if limit > 100 {
		limit = 100
	}
	return limit
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to write analytics response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
