package cassava

import (
	"go.opentelemetry.io/otel/trace"

	"github.com/backupify/cassava/adapter/cql"
	"github.com/backupify/cassava/internal/logging"
	"github.com/backupify/cassava/internal/metrics"
	"github.com/backupify/cassava/internal/tracing"
	"github.com/backupify/cassava/types"
)

// ClientConfig holds configuration for cassava clients.
type ClientConfig struct {
	Logger  types.Logger
	Metrics types.MetricsCollector
	tracer  tracing.Tracer
}

// DefaultConfig returns a ClientConfig with no-op logging, metrics and tracing.
//
// Returns:
//   - *ClientConfig: Configuration with default settings
func DefaultConfig() *ClientConfig {
	return &ClientConfig{
		Logger:  logging.NewNopLogger(),
		Metrics: metrics.NewNopMetrics(),
		tracer:  tracing.NopTracer{},
	}
}

// Option configures a ClientConfig.
type Option func(*ClientConfig)

// WithLogger sets the structured logger.
//
// If not set, a no-op logger is used that discards all messages.
// *slog.Logger satisfies types.Logger.
//
// Example:
//
//	client, _ := cassava.NewClient(session,
//	    cassava.WithLogger(slog.Default()),
//	)
func WithLogger(logger types.Logger) Option {
	return func(c *ClientConfig) {
		c.Logger = logger
	}
}

// WithMetrics sets the metrics collector.
//
// If not set, a no-op collector is used that discards all metrics.
// Use contrib/metrics/vm.New() for VictoriaMetrics integration.
//
// Example:
//
//	import vmmetrics "github.com/backupify/cassava/contrib/metrics/vm"
//
//	collector := vmmetrics.New(vmmetrics.WithPrefix("myapp"))
//	client, _ := cassava.NewClient(session, cassava.WithMetrics(collector))
func WithMetrics(collector types.MetricsCollector) Option {
	return func(c *ClientConfig) {
		c.Metrics = collector
	}
}

// WithTracer traces every synchronous execution with an OpenTelemetry tracer.
//
// Example:
//
//	client, _ := cassava.NewClient(session,
//	    cassava.WithTracer(otel.Tracer("cassava")),
//	)
func WithTracer(tracer trace.Tracer) Option {
	return func(c *ClientConfig) {
		if tracer == nil {
			c.tracer = tracing.NopTracer{}
			return
		}
		c.tracer = tracing.NewOtelTracer(tracer)
	}
}

// ExecOption configures a single execution.
type ExecOption func(*execConfig)

type execConfig struct {
	options     cql.Options
	ifNotExists bool
}

func newExecConfig(opts []ExecOption) execConfig {
	var cfg execConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithConsistency overrides the session consistency for one execution.
func WithConsistency(c cql.Consistency) ExecOption {
	return func(cfg *execConfig) {
		cfg.options.Consistency = &c
	}
}

// WithSerialConsistency sets the serial consistency of a conditional statement.
func WithSerialConsistency(c cql.Consistency) ExecOption {
	return func(cfg *execConfig) {
		cfg.options.SerialConsistency = &c
	}
}

// WithPageSize returns a single page of at most n rows per execution.
func WithPageSize(n int) ExecOption {
	return func(cfg *execConfig) {
		cfg.options.PageSize = n
	}
}

// WithPageState resumes paging from ResultSet.PageState of a previous execution.
// It requires WithPageSize.
func WithPageState(state []byte) ExecOption {
	return func(cfg *execConfig) {
		cfg.options.PageState = state
	}
}

// WithTimestamp sets the client-side write timestamp in microseconds.
func WithTimestamp(ts int64) ExecOption {
	return func(cfg *execConfig) {
		cfg.options.Timestamp = &ts
	}
}

// WithIdempotent marks the execution as safe for the driver to retry.
func WithIdempotent() ExecOption {
	return func(cfg *execConfig) {
		cfg.options.Idempotent = true
	}
}

// WithArguments sets the bind values of a raw Execute.
//
// Builder and insert executions replace them with their own bind values.
func WithArguments(args ...any) ExecOption {
	return func(cfg *execConfig) {
		cfg.options.Arguments = args
	}
}

// IfNotExists makes Insert and InsertAsync conditional. Other executions ignore it.
func IfNotExists() ExecOption {
	return func(cfg *execConfig) {
		cfg.ifNotExists = true
	}
}
