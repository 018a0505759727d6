package handlers

import (
	"net/http"
	"sync/atomic"
	"time"

	"github.com/aasimsk98/sentiment-dashboard/metrics"
	"github.com/aasimsk98/sentiment-dashboard/models"
)

// RefreshHandler implements the manual refresh trigger. Unlike the periodic
// page refresh, it bypasses the TTL: the cache slot is dropped so the next
// load hits Mongo.
type RefreshHandler struct {
	source FeedSource
	count  atomic.Int64
}

func NewRefreshHandler(source FeedSource) *RefreshHandler {
	return &RefreshHandler{source: source}
}

func (h *RefreshHandler) Refresh(w http.ResponseWriter, r *http.Request) Result {
	h.source.Invalidate()
	count := h.count.Add(1)
	metrics.ManualRefreshes.Inc()

	return Ok(models.RefreshResponse{
		Refreshed:   true,
		RefreshedAt: time.Now().UTC(),
		Count:       count,
	})
}

// Count returns how many manual refreshes happened since boot.
func (h *RefreshHandler) Count() int64 {
	return h.count.Load()
}
