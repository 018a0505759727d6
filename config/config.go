package config

import (
	"bufio"
	"errors"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	EnvDevelopment = "DEV"
	EnvProduction  = "PROD"

	// DatabaseName is fixed by the upstream producer/consumer scripts.
	DatabaseName = "reddit_sentiment"

	// CredentialsFile is the local fallback when MONGO_CONNECTION_STRING is
	// not set, matching the deployment layout of the producer scripts.
	CredentialsFile = "mongo_credentials.txt"
)

// ErrConfigurationMissing means no Mongo connection string could be found in
// the environment or the local credentials file. It must be reported before
// any query is attempted.
var ErrConfigurationMissing = errors.New("mongo connection string not configured: set MONGO_CONNECTION_STRING or create " + CredentialsFile)

type AppConfig struct {
	MongoURL        string
	Port            string
	FetchLimit      int64
	CacheTTL        time.Duration
	RefreshInterval time.Duration
	AppEnv          string // EnvDevelopment or EnvProduction
	LogLevel        slog.Level
}

var Config AppConfig

func LoadConfig() error {
	return LoadConfigFrom(CredentialsFile)
}

// LoadConfigFrom reads configuration from the environment, falling back to
// the given credentials file for the connection string.
func LoadConfigFrom(credentialsFile string) error {
	cfg := AppConfig{}

	cfg.AppEnv = os.Getenv("APP_ENV")
	cfg.Port = loadOptional("PORT", "8080")
	cfg.FetchLimit = int64(loadOptionalInt("FETCH_LIMIT", 3000))
	cfg.CacheTTL = time.Duration(loadOptionalInt("CACHE_TTL_SECONDS", 300)) * time.Second
	cfg.RefreshInterval = time.Duration(loadOptionalInt("REFRESH_INTERVAL_MS", 300000)) * time.Millisecond

	url := os.Getenv("MONGO_CONNECTION_STRING")
	if url == "" {
		fileURL, err := connectionStringFromFile(credentialsFile)
		if err != nil {
			return err
		}
		url = fileURL
	}
	cfg.MongoURL = stripOptions(url)

	lvlString := loadOptional("LOG_LEVEL", "INFO")
	var err error
	cfg.LogLevel, err = parseLogLevel(lvlString)
	if err != nil {
		slog.Error("Invalid LOG_LEVEL", "error", err)
		cfg.LogLevel = slog.LevelInfo
	}

	Config = cfg
	return nil
}

// connectionStringFromFile parses key=value lines and returns the
// connection_string entry. Values may be double-quoted.
func connectionStringFromFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", ErrConfigurationMissing
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		if strings.TrimSpace(key) != "connection_string" {
			continue
		}
		value = strings.Trim(strings.TrimSpace(value), `"`)
		if value == "" {
			return "", ErrConfigurationMissing
		}
		return value, nil
	}

	return "", ErrConfigurationMissing
}

// stripOptions drops URI options after '?'. The producer scripts write the
// connection string with driver options the Go driver sets itself.
func stripOptions(url string) string {
	base, _, _ := strings.Cut(url, "?")
	return base
}

func parseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	var err = level.UnmarshalText([]byte(s))
	return level, err
}

func loadOptional(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func loadOptionalInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		slog.Error("Invalid integer env var, using default", "key", key, "value", value)
		return defaultValue
	}
	return parsed
}

func (c AppConfig) IsProduction() bool {
	return Config.AppEnv == EnvProduction
}
