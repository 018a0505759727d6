package handlers

import (
	"net/http"
	"sort"
	"time"

	"github.com/aasimsk98/sentiment-dashboard/data"
	"github.com/aasimsk98/sentiment-dashboard/filters"
	"github.com/aasimsk98/sentiment-dashboard/models"
)

const topSubredditCount = 7

type SummaryHandler struct {
	source FeedSource
}

func NewSummaryHandler(source FeedSource) *SummaryHandler {
	return &SummaryHandler{source}
}

func (h *SummaryHandler) GetSummary(w http.ResponseWriter, r *http.Request) Result {
	snapshot, fresh, err := h.source.Snapshot(r.Context())
	if err != nil {
		return ServiceUnavailable(err, "Could not reach MongoDB. Data will reload on the next refresh.")
	}

	filtered := filters.Apply(snapshot.Records, selectionFromQuery(r))

	res := Summarize(filtered)
	res.LoadedAt = snapshot.LoadedAt
	res.FromCache = !fresh
	res.NoData = len(snapshot.Records) == 0

	return Ok(res)
}

// Summarize computes the aggregate panels over an already-filtered record
// set. It is total-order deterministic and safe on empty input.
func Summarize(records []data.Record) models.GetSummaryResponse {
	res := models.GetSummaryResponse{
		Total:         len(records),
		Counts:        make(map[string]int),
		Proportions:   make(map[string]float64),
		TopSubreddits: make([]models.SubredditVolume, 0),
		Subreddits:    make([]string, 0),
		Trend:         make([]models.TrendPoint, 0),
	}

	if len(records) == 0 {
		return res
	}

	var vaderSum float64
	subredditCounts := make(map[string]int)
	trendBuckets := make(map[time.Time]*models.TrendPoint)

	for _, r := range records {
		res.Counts[r.Sentiment]++
		subredditCounts[r.Subreddit]++
		vaderSum += r.VaderScore

		hour := r.Timestamp.Truncate(time.Hour)
		point, ok := trendBuckets[hour]
		if !ok {
			point = &models.TrendPoint{Hour: hour}
			trendBuckets[hour] = point
		}
		switch r.Sentiment {
		case "positive":
			point.Positive++
		case "negative":
			point.Negative++
		default:
			point.Neutral++
		}
	}

	for label, count := range res.Counts {
		res.Proportions[label] = float64(count) / float64(res.Total)
	}
	res.AvgVaderScore = vaderSum / float64(res.Total)
	res.DominantSentiment = dominantLabel(res.Counts)
	res.ActiveSubreddits = len(subredditCounts)

	for subreddit := range subredditCounts {
		res.Subreddits = append(res.Subreddits, subreddit)
	}
	sort.Strings(res.Subreddits)

	volumes := make([]models.SubredditVolume, 0, len(subredditCounts))
	for subreddit, count := range subredditCounts {
		volumes = append(volumes, models.SubredditVolume{Subreddit: subreddit, Count: count})
	}
	sort.Slice(volumes, func(i, j int) bool {
		if volumes[i].Count != volumes[j].Count {
			return volumes[i].Count > volumes[j].Count
		}
		return volumes[i].Subreddit < volumes[j].Subreddit
	})
	if len(volumes) > topSubredditCount {
		volumes = volumes[:topSubredditCount]
	}
	res.TopSubreddits = volumes

	for _, point := range trendBuckets {
		res.Trend = append(res.Trend, *point)
	}
	sort.Slice(res.Trend, func(i, j int) bool {
		return res.Trend[i].Hour.Before(res.Trend[j].Hour)
	})

	return res
}

// dominantLabel breaks count ties alphabetically so the KPI is stable
// between refreshes.
func dominantLabel(counts map[string]int) string {
	dominant := ""
	best := -1
	for label, count := range counts {
		if count > best || (count == best && label < dominant) {
			dominant = label
			best = count
		}
	}
	return dominant
}
