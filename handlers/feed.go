package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/aasimsk98/sentiment-dashboard/data"
	"github.com/aasimsk98/sentiment-dashboard/filters"
	"github.com/aasimsk98/sentiment-dashboard/models"
)

const perPage = 20

// FeedSource is the cached read path; satisfied by repos.CachedFeed.
type FeedSource interface {
	Snapshot(ctx context.Context) (data.Snapshot, bool, error)
	Invalidate()
	CacheOccupied() bool
}

type FeedHandler struct {
	source FeedSource
}

func NewFeedHandler(source FeedSource) *FeedHandler {
	return &FeedHandler{source}
}

func (h *FeedHandler) GetFeed(w http.ResponseWriter, r *http.Request) Result {
	snapshot, fresh, err := h.source.Snapshot(r.Context())
	if err != nil {
		return ServiceUnavailable(err, "Could not reach MongoDB. Data will reload on the next refresh.")
	}

	filtered := filters.Apply(snapshot.Records, selectionFromQuery(r))

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	start := (page - 1) * perPage
	if start > len(filtered) {
		start = len(filtered)
	}
	end := start + perPage
	if end > len(filtered) {
		end = len(filtered)
	}

	res := models.GetFeedResponse{
		Records:   make([]models.FeedRecord, 0, end-start),
		Total:     len(filtered),
		Page:      page,
		PerPage:   perPage,
		LoadedAt:  snapshot.LoadedAt,
		FromCache: !fresh,
		NoData:    len(snapshot.Records) == 0,
	}

	for _, rec := range filtered[start:end] {
		res.Records = append(res.Records, models.FeedRecord{
			ID:         rec.ID,
			Type:       rec.Type,
			Subreddit:  rec.Subreddit,
			Author:     rec.Author,
			Title:      rec.Title,
			Body:       rec.Body,
			Permalink:  rec.Permalink(),
			Timestamp:  rec.Timestamp,
			VaderScore: rec.VaderScore,
			Sentiment:  rec.Sentiment,
		})
	}

	return Ok(res)
}

func selectionFromQuery(r *http.Request) filters.Selection {
	q := r.URL.Query()
	return filters.Selection{
		Subreddit:   q.Get("subreddit"),
		ContentType: q.Get("type"),
		Sentiment:   q.Get("sentiment"),
	}
}
