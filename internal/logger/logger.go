// Package logger configures the application's logging and observability.
//
// It uses zerolog for structured logging and optionally wires the New
// Relic Go agent so logs, traces, and metrics are forwarded for
// debugging. When no license key is configured, everything degrades to
// plain zerolog output.
package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/Showmick119/researchify-backend/internal/config"
	"github.com/newrelic/go-agent/v3/integrations/logcontext-v2/zerologWriter"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
)

// LoggerService wraps the optional New Relic application instance.
//
// A nil inner application means New Relic is disabled; callers are
// expected to nil-check GetApplication() before recording events.
type LoggerService struct {
	nrApp *newrelic.Application
}

// NewLoggerService initializes the New Relic agent when a license key
// is configured. Without a key it returns a service with a nil
// application, which downgrades all instrumentation to no-ops.
func NewLoggerService(cfg *config.Config) (*LoggerService, error) {
	nr := cfg.Observability.NewRelic

	if nr.LicenseKey == "" {
		return &LoggerService{}, nil
	}

	app, err := newrelic.NewApplication(
		newrelic.ConfigAppName(cfg.Observability.ServiceName),
		newrelic.ConfigLicense(nr.LicenseKey),
		newrelic.ConfigAppLogForwardingEnabled(nr.AppLogForwardingEnabled),
		newrelic.ConfigDistributedTracerEnabled(nr.DistributedTracingEnabled),
		func(c *newrelic.Config) {
			c.Labels = map[string]string{
				"environment": cfg.Observability.Environment,
			}
			if nr.DebugLogging {
				c.Logger = newrelic.NewDebugLogger(os.Stderr)
			}
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize New Relic application: %w", err)
	}

	return &LoggerService{nrApp: app}, nil
}

// GetApplication returns the New Relic application instance, or nil
// when New Relic is disabled.
func (s *LoggerService) GetApplication() *newrelic.Application {
	if s == nil {
		return nil
	}
	return s.nrApp
}

// New builds the application's main logger from config.
//
// Console format is intended for local development; JSON is the
// production default. When New Relic log forwarding is active, log
// lines are decorated with linking metadata via zerologWriter.
func New(cfg *config.Config, service *LoggerService) *zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Observability.GetLogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}

	var out io.Writer = os.Stdout
	if cfg.Observability.Logging.Format == "console" {
		out = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	if app := service.GetApplication(); app != nil {
		w := zerologWriter.New(out, app)
		out = &w
	}

	logger := zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("service", cfg.Observability.ServiceName).
		Logger()

	return &logger
}

// WithTraceContext returns a child logger carrying the transaction's
// trace and span ids so log lines correlate with distributed traces.
func WithTraceContext(logger zerolog.Logger, txn *newrelic.Transaction) zerolog.Logger {
	if txn == nil {
		return logger
	}

	md := txn.GetTraceMetadata()
	return logger.With().
		Str("trace.id", md.TraceID).
		Str("span.id", md.SpanID).
		Logger()
}

// NewPgxLogger returns a logger dedicated to pgx query tracing output.
// It writes console format to stderr; SQL logging is only enabled in
// the local environment, so machine-readable output is not needed.
func NewPgxLogger(level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Str("component", "pgx").
		Logger()
}

// GetPgxTraceLogLevel maps a zerolog level to the pgx tracelog level
// scale (tracelog levels: 0 none .. 6 trace).
func GetPgxTraceLogLevel(level zerolog.Level) int {
	switch level {
	case zerolog.TraceLevel:
		return 6 // tracelog.LogLevelTrace
	case zerolog.DebugLevel:
		return 5 // tracelog.LogLevelDebug
	case zerolog.InfoLevel:
		return 4 // tracelog.LogLevelInfo
	case zerolog.WarnLevel:
		return 3 // tracelog.LogLevelWarn
	case zerolog.ErrorLevel:
		return 2 // tracelog.LogLevelError
	default:
		return 1 // tracelog.LogLevelNone
	}
}
