// Package filters narrows a record stream by the sidebar selections. All
// functions are pure; an empty result is a valid outcome, not an error.
package filters

import (
	"strings"

	"github.com/aasimsk98/sentiment-dashboard/data"
)

// All is the wildcard selection that matches every record.
const All = "all"

// Selection holds one value per sidebar control. Empty values are treated
// like All.
type Selection struct {
	Subreddit   string
	ContentType string
	Sentiment   string
}

// Apply returns the records matching every selection. The result is always a
// subsequence of the input, in input order.
func Apply(records []data.Record, sel Selection) []data.Record {
	out := make([]data.Record, 0, len(records))
	for _, r := range records {
		if Matches(r, sel) {
			out = append(out, r)
		}
	}
	return out
}

// Matches reports whether a single record passes every selection.
func Matches(r data.Record, sel Selection) bool {
	return matchesField(r.Subreddit, sel.Subreddit) &&
		matchesField(r.Type, sel.ContentType) &&
		matchesField(r.Sentiment, sel.Sentiment)
}

func matchesField(value, selected string) bool {
	if selected == "" || strings.EqualFold(selected, All) {
		return true
	}
	return strings.EqualFold(value, selected)
}
