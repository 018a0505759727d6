package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/aasimsk98/sentiment-dashboard/metrics"
	"github.com/aasimsk98/sentiment-dashboard/models"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	pinger  Pinger
	source  FeedSource
	refresh *RefreshHandler
}

func NewHealthHandler(pinger Pinger, source FeedSource, refresh *RefreshHandler) *HealthHandler {
	return &HealthHandler{pinger: pinger, source: source, refresh: refresh}
}

func (h *HealthHandler) GetHealth(w http.ResponseWriter, r *http.Request) Result {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res := models.HealthResponse{
		Status:        "ok",
		MongoUp:       true,
		CacheOccupied: h.source.CacheOccupied(),
		Refreshes:     h.refresh.Count(),
	}

	if err := h.pinger.Ping(ctx); err != nil {
		res.Status = "degraded"
		res.MongoUp = false
		res.MongoError = err.Error()
		metrics.MongoUp.Set(0)
	} else {
		metrics.MongoUp.Set(1)
	}

	return Ok(res)
}
