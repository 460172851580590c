package config

import (
	"os"
	"strconv"
	"strings"
)

const (
	PlatformWatchListNested    = "nested"
	PlatformWatchListHyperlink = "hyperlink"
)

type EnvConfig struct {
	Postgres struct {
		HOST     string
		Database string
		Username string
		Password string
		Port     string
		SSLMode  string
	}
	Redis struct {
		Password  string
		Database  int
		RedisHost string
		RedisPort string
	}
	CORS struct {
		AllowDomains string
	}
	Server struct {
		Port           string
		RoutePrefix    string
		TrustedProxies []string // nil trusts no proxy headers
	}
	Serializer struct {
		PlatformWatchList string // nested or hyperlink
	}
	RateLimit struct {
		PerMinute int // 0 disables throttling
	}
	Grafana struct {
		OTLPEndpoint string
		ServiceName  string
	}
	Log struct {
		Level string
	}
	Environment struct {
		Mode string
	}
}

func LoadEnvConfig() *EnvConfig {
	var config EnvConfig

	// Postgres
	config.Postgres.HOST = os.Getenv("PGPOOL_HOST")
	if config.Postgres.HOST == "" {
		config.Postgres.HOST = "localhost"
	}
	config.Postgres.Database = os.Getenv("PGPOOL_DB")
	config.Postgres.Username = os.Getenv("PGPOOL_USER")
	config.Postgres.Password = os.Getenv("PGPOOL_PASSWORD")
	config.Postgres.Port = os.Getenv("PGPOOL_PORT")
	if config.Postgres.Port == "" {
		config.Postgres.Port = "5432"
	}
	config.Postgres.SSLMode = os.Getenv("PG_SSLMODE")
	if config.Postgres.SSLMode == "" {
		config.Postgres.SSLMode = "disable"
	}

	// Redis is optional; an empty host disables throttling.
	config.Redis.Password = os.Getenv("REDIS_PASSWORD")
	config.Redis.Database, _ = strconv.Atoi(os.Getenv("REDIS_DB"))
	config.Redis.RedisHost = os.Getenv("REDIS_HOST")
	config.Redis.RedisPort = os.Getenv("REDIS_PORT")
	if config.Redis.RedisPort == "" {
		config.Redis.RedisPort = "6379"
	}

	config.CORS.AllowDomains = os.Getenv("ALLOWED_DOMAINS")

	config.Server.Port = os.Getenv("SERVER_PORT")
	if config.Server.Port == "" {
		config.Server.Port = "8080"
	}
	config.Server.RoutePrefix = normalizePrefix(os.Getenv("ROUTE_PREFIX"))
	config.Server.TrustedProxies = splitList(os.Getenv("TRUSTED_PROXIES"))

	switch mode := strings.ToLower(strings.TrimSpace(os.Getenv("PLATFORM_WATCHLIST_MODE"))); mode {
	case PlatformWatchListHyperlink:
		config.Serializer.PlatformWatchList = mode
	default:
		config.Serializer.PlatformWatchList = PlatformWatchListNested
	}

	if val := os.Getenv("RATE_LIMIT_PER_MINUTE"); val != "" {
		if limit, err := strconv.Atoi(val); err == nil && limit > 0 {
			config.RateLimit.PerMinute = limit
		}
	}

	// Grafana/OpenTelemetry. An empty endpoint keeps telemetry in-process.
	grafanaEndpoint := os.Getenv("GRAFANA_OTLP_ENDPOINT")
	if strings.HasPrefix(grafanaEndpoint, "https://") {
		config.Grafana.OTLPEndpoint = strings.TrimPrefix(grafanaEndpoint, "https://")
	} else if strings.HasPrefix(grafanaEndpoint, "http://") {
		config.Grafana.OTLPEndpoint = strings.TrimPrefix(grafanaEndpoint, "http://")
	} else {
		config.Grafana.OTLPEndpoint = grafanaEndpoint
	}
	config.Grafana.ServiceName = os.Getenv("SERVICE_NAME")
	if config.Grafana.ServiceName == "" {
		config.Grafana.ServiceName = "gau-watchlist-service"
	}

	config.Log.Level = strings.ToLower(os.Getenv("LOG_LEVEL"))
	if config.Log.Level == "" {
		config.Log.Level = "info"
	}

	config.Environment.Mode = os.Getenv("DEPLOY_ENV")
	if config.Environment.Mode == "" {
		config.Environment.Mode = "development"
	}

	return &config
}

func normalizePrefix(prefix string) string {
	prefix = strings.Trim(strings.TrimSpace(prefix), "/")
	if prefix == "" {
		return ""
	}
	return "/" + prefix
}

// splitList parses a comma separated value, dropping empty items.
func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
