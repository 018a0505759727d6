package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	_ "github.com/joho/godotenv/autoload"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/aasimsk98/sentiment-dashboard/cache"
	"github.com/aasimsk98/sentiment-dashboard/config"
	"github.com/aasimsk98/sentiment-dashboard/data"
	"github.com/aasimsk98/sentiment-dashboard/data/repos"
	"github.com/aasimsk98/sentiment-dashboard/handlers"
	"github.com/aasimsk98/sentiment-dashboard/metrics"
)

const mongoTimeout = 30 * time.Second

func main() {
	if err := config.LoadConfig(); err != nil {
		// ConfigurationMissing is fatal and reported before any query.
		slog.Error("configuration missing", "error", err)
		os.Exit(1)
	}

	opts := slog.HandlerOptions{Level: config.Config.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &opts))
	slog.SetDefault(logger)

	client, err := connectMongo(config.Config.MongoURL)
	if err != nil {
		slog.Error("failed to create mongo client", "error", err)
		os.Exit(1)
	}

	// An unreachable database is a degraded state, not a fatal one: the
	// server starts anyway and data endpoints report 503 until a later
	// refresh succeeds.
	pingCtx, cancelPing := context.WithTimeout(context.Background(), mongoTimeout)
	if err := client.Ping(pingCtx, nil); err != nil {
		slog.Warn("mongo unreachable at startup, serving degraded", "error", err)
		metrics.MongoUp.Set(0)
	} else {
		metrics.MongoUp.Set(1)
	}
	cancelPing()

	db := client.Database(config.DatabaseName)
	feedRepo := repos.NewFeedRepo(db, config.Config.FetchLimit)
	snapshots := cache.New[data.Snapshot](config.Config.CacheTTL, nil)
	cachedFeed := repos.NewCachedFeed(feedRepo, snapshots)

	feed := handlers.NewFeedHandler(cachedFeed)
	summary := handlers.NewSummaryHandler(cachedFeed)
	refresh := handlers.NewRefreshHandler(cachedFeed)
	health := handlers.NewHealthHandler(feedRepo, cachedFeed, refresh)
	dashboard := handlers.NewDashboardHandler(config.Config.RefreshInterval)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /", dashboard.GetDashboard)
	mux.HandleFunc("GET /feed", public(feed.GetFeed))
	mux.HandleFunc("GET /summary", public(summary.GetSummary))
	mux.HandleFunc("POST /refresh", public(refresh.Refresh))
	mux.HandleFunc("GET /health", public(health.GetHealth))
	mux.Handle("GET /metrics", metrics.Handler())

	server := &http.Server{
		Addr:    ":" + config.Config.Port,
		Handler: withCORS(mux),
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		<-sigCh
		slog.Info("Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("failed to shut down server", "error", err)
		}
		if err := client.Disconnect(ctx); err != nil {
			slog.Error("failed to disconnect mongo client", "error", err)
		}
	}()

	slog.Info("Starting dashboard",
		"port", config.Config.Port,
		"cache_ttl", config.Config.CacheTTL.String(),
		"refresh_interval", config.Config.RefreshInterval.String())
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("failed to start server", "error", err)
	}
}

func connectMongo(url string) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(url).
		SetServerSelectionTimeout(mongoTimeout).
		SetConnectTimeout(mongoTimeout).
		SetSocketTimeout(mongoTimeout).
		SetRetryWrites(true)

	return mongo.Connect(context.Background(), opts)
}

func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func public(handler handlers.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ts := time.Now()
		requestID := uuid.New().String()
		res := handler(w, r)
		elapsed := time.Since(ts)
		metrics.RequestDuration.WithLabelValues(r.URL.Path).Observe(elapsed.Seconds())
		slog.Debug("req",
			"id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"code", res.Code,
			"elapsed", elapsed.Milliseconds())
		writeResult(w, res)
	}
}

func writeResult(w http.ResponseWriter, res handlers.Result) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(res.Code)
	if res.Body != nil {
		if err := json.NewEncoder(w).Encode(res.Body); err != nil {
			slog.Error("failed to encode response", "error", err)
		}
	}
	if res.Error != nil {
		slog.Error("request failed", "code", res.Code, "error", res.Error.Error())
	}
}
