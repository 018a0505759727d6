package repos

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/aasimsk98/sentiment-dashboard/data"
)

const (
	PostsCollection    = "posts"
	CommentsCollection = "comments"
)

// FeedRepo reads the precomputed sentiment documents. Queries are bounded to
// the newest limit items per collection; the upstream capper keeps the
// collections around that size anyway.
type FeedRepo struct {
	db    *mongo.Database
	limit int64
}

func NewFeedRepo(db *mongo.Database, limit int64) *FeedRepo {
	return &FeedRepo{db: db, limit: limit}
}

func (r *FeedRepo) LoadPosts(ctx context.Context) ([]data.Post, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(r.limit)

	cursor, err := r.db.Collection(PostsCollection).Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, errors.Wrap(err, "find posts")
	}
	defer cursor.Close(ctx)

	posts := make([]data.Post, 0)
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, errors.Wrap(err, "decode posts")
	}

	return posts, nil
}

func (r *FeedRepo) LoadComments(ctx context.Context) ([]data.Comment, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(r.limit)

	cursor, err := r.db.Collection(CommentsCollection).Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, errors.Wrap(err, "find comments")
	}
	defer cursor.Close(ctx)

	comments := make([]data.Comment, 0)
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, errors.Wrap(err, "decode comments")
	}

	return comments, nil
}

// LoadSnapshot fetches both collections and merges them into the normalized
// record stream. Empty collections produce an empty snapshot, not an error.
func (r *FeedRepo) LoadSnapshot(ctx context.Context) (data.Snapshot, error) {
	posts, err := r.LoadPosts(ctx)
	if err != nil {
		return data.Snapshot{}, err
	}

	comments, err := r.LoadComments(ctx)
	if err != nil {
		return data.Snapshot{}, err
	}

	return data.Snapshot{
		Records:  data.Combine(posts, comments),
		LoadedAt: time.Now().UTC(),
	}, nil
}

// Ping checks connectivity for the health panel.
func (r *FeedRepo) Ping(ctx context.Context) error {
	return r.db.Client().Ping(ctx, nil)
}
