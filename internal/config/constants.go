package config

import "time"

const (
	envPort          = "PORT"
	envRosterRefresh = "ROSTER_REFRESH_INTERVAL"
	envProvider      = "PROVIDER"
	envCORSOrigins   = "CORS_ALLOWED_ORIGINS"
	envMetricsPort   = "METRICS_PORT"
	envMetricsOn     = "METRICS_ENABLED"
	envOtelEndpoint  = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService   = "OTEL_SERVICE_NAME"
	envOtelInsecure  = "OTEL_EXPORTER_OTLP_INSECURE"
	envSnapshotDir   = "ROSTER_SNAPSHOT_DIR"

	defaultPort = "4000"
	// The league roster changes a handful of times per day at most.
	defaultRosterRefresh = 6 * Duration(time.Hour)
	defaultProvider      = "fixture"
	defaultCORSOrigin    = "*"
	defaultMetricsPort   = "9090"
	defaultServiceName   = "nba-stats-service"
	defaultSnapshotDir   = "data/snapshots"
)
