package data

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCombine_MergesAndSortsNewestFirst(t *testing.T) {
	posts := []Post{
		{PostID: "p1", Subreddit: "golang", Title: "old post", Timestamp: "2025-06-01T10:00:00Z", TransformerLabel: "positive"},
		{PostID: "p2", Subreddit: "golang", Title: "new post", Timestamp: "2025-06-01T12:00:00Z", TransformerLabel: "negative"},
	}
	comments := []Comment{
		{CommentID: "c1", Subreddit: "golang", Body: "middle comment", Timestamp: "2025-06-01T11:00:00Z", TransformerLabel: "neutral"},
	}

	records := Combine(posts, comments)
	assert.Len(t, records, 3)
	assert.Equal(t, []string{"p2", "c1", "p1"}, []string{records[0].ID, records[1].ID, records[2].ID})
	assert.Equal(t, TypePost, records[0].Type)
	assert.Equal(t, TypeComment, records[1].Type)
}

func TestCombine_EmptyInput(t *testing.T) {
	records := Combine(nil, nil)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestCombine_DropsUnparseableTimestamps(t *testing.T) {
	posts := []Post{
		{PostID: "good", Timestamp: "2025-06-01T10:00:00Z"},
		{PostID: "bad", Timestamp: "yesterday-ish"},
		{PostID: "empty", Timestamp: ""},
	}

	records := Combine(posts, nil)
	assert.Len(t, records, 1)
	assert.Equal(t, "good", records[0].ID)
}

func TestCombine_AcceptsLegacyTimestampLayouts(t *testing.T) {
	posts := []Post{
		{PostID: "rfc", Timestamp: "2025-06-01T10:00:00Z"},
		{PostID: "nano", Timestamp: "2025-06-01T10:00:00.123456789Z"},
		{PostID: "space", Timestamp: "2025-06-01 10:00:00"},
		{PostID: "t", Timestamp: "2025-06-01T10:00:00"},
	}

	records := Combine(posts, nil)
	assert.Len(t, records, 4)
}

func TestCombine_NormalizesLabels(t *testing.T) {
	posts := []Post{
		{PostID: "upper", Timestamp: "2025-06-01T10:00:00Z", TransformerLabel: "POSITIVE"},
		{PostID: "missing", Timestamp: "2025-06-01T09:00:00Z"},
		{PostID: "padded", Timestamp: "2025-06-01T08:00:00Z", TransformerLabel: " Negative "},
	}

	records := Combine(posts, nil)
	assert.Equal(t, "positive", records[0].Sentiment)
	assert.Equal(t, DefaultLabel, records[1].Sentiment)
	assert.Equal(t, "negative", records[2].Sentiment)
}

func TestCombine_DefaultsMissingSubreddit(t *testing.T) {
	comments := []Comment{
		{CommentID: "c1", Timestamp: "2025-06-01T10:00:00Z"},
	}

	records := Combine(nil, comments)
	assert.Equal(t, UnknownSubreddit, records[0].Subreddit)
}

func TestCombine_CommentTitleIsBodyPreview(t *testing.T) {
	short := strings.Repeat("a", 50)
	long := strings.Repeat("b", 150)
	comments := []Comment{
		{CommentID: "short", Body: short, Timestamp: "2025-06-01T10:00:00Z"},
		{CommentID: "long", Body: long, Timestamp: "2025-06-01T09:00:00Z"},
	}

	records := Combine(nil, comments)
	assert.Equal(t, short, records[0].Title)
	assert.Equal(t, strings.Repeat("b", 100)+"...", records[1].Title)
	assert.Equal(t, long, records[1].Body, "body keeps the full text")
}

func TestCombine_TimestampsAreUTC(t *testing.T) {
	posts := []Post{
		{PostID: "p1", Timestamp: "2025-06-01T12:00:00+02:00"},
	}

	records := Combine(posts, nil)
	assert.Equal(t, time.UTC, records[0].Timestamp.Location())
	assert.Equal(t, 10, records[0].Timestamp.Hour())
}

func TestPermalink_RelativeLinksArePrefixed(t *testing.T) {
	assert.Equal(t,
		"https://www.reddit.com/r/golang/comments/abc/",
		Record{Link: "/r/golang/comments/abc/"}.Permalink())
	assert.Equal(t,
		"https://reddit.com/r/golang/comments/abc/",
		Record{Link: "https://reddit.com/r/golang/comments/abc/"}.Permalink())
	assert.Equal(t, "", Record{}.Permalink())
}
