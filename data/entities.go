package data

import "go.mongodb.org/mongo-driver/bson/primitive"

// Post and Comment mirror the documents written by the upstream producer and
// consumer scripts. Both are read-only here; sentiment fields are precomputed
// (VADER compound score plus a transformer label).

type Post struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	PostID           string             `bson:"post_id"`
	Subreddit        string             `bson:"subreddit"`
	Author           string             `bson:"author"`
	Title            string             `bson:"title"`
	Selftext         string             `bson:"selftext"`
	URL              string             `bson:"url"`
	Timestamp        string             `bson:"timestamp"`
	VaderScore       float64            `bson:"vader_score"`
	TransformerLabel string             `bson:"transformer_label"`
}

type Comment struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	CommentID        string             `bson:"comment_id"`
	ParentID         string             `bson:"parent_id"`
	Subreddit        string             `bson:"subreddit"`
	Author           string             `bson:"author"`
	Body             string             `bson:"body"`
	URL              string             `bson:"url"`
	Timestamp        string             `bson:"timestamp"`
	VaderScore       float64            `bson:"vader_score"`
	TransformerLabel string             `bson:"transformer_label"`
}
