package cassava

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/backupify/cassava/adapter/cql"
	"github.com/backupify/cassava/test/testutil"
	"github.com/backupify/cassava/types"
)

func TestExecutorLogsDebugOnSuccess(t *testing.T) {
	logger := testutil.NewRecordingLogger()
	client, session := newTestClient(t, WithLogger(logger))
	session.Rows = []cql.Row{{"id": "i"}}

	_, err := client.Select("test").Where("id = ?", "i").Execute(context.Background())
	require.NoError(t, err)

	require.Empty(t, logger.ByLevel("error"))

	debug := logger.ByLevel("debug")
	require.Len(t, debug, 2)
	require.Equal(t, "executing statement", debug[0].Message)
	require.Equal(t, "SELECT * FROM test WHERE id = ?", debug[0].Fields["statement"])
	require.Equal(t, "statement executed", debug[1].Message)
	require.Equal(t, 1, debug[1].Fields["rows"])
}

func TestExecutorLogsAndReturnsDriverError(t *testing.T) {
	logger := testutil.NewRecordingLogger()
	client, session := newTestClient(t, WithLogger(logger))
	driverErr := errors.New("keyspace does not exist")
	session.ExecErr = driverErr

	_, err := client.Select("test").Where(map[string]any{"id": "i"}).
		Execute(context.Background(), WithConsistency(cql.Quorum))
	require.Same(t, driverErr, err)

	entries := logger.ByLevel("error")
	require.Len(t, entries, 1)
	require.Equal(t, "statement execution failed", entries[0].Message)
	require.Equal(t, "SELECT * FROM test WHERE id = ?", entries[0].Fields["statement"])
	require.Same(t, driverErr, entries[0].Fields["error"])

	opts, ok := entries[0].Fields["options"].(cql.Options)
	require.True(t, ok)
	require.Equal(t, []any{"i"}, opts.Arguments)
	require.Equal(t, cql.Quorum, *opts.Consistency)
}

func TestExecutorWrappedDriverErrorMatches(t *testing.T) {
	client, session := newTestClient(t)
	sentinel := errors.New("write timeout")
	session.ExecErr = errors.Join(sentinel, errors.New("context"))

	_, err := client.Delete("test").Where("id = ?", "i").Execute(context.Background())
	require.ErrorIs(t, err, sentinel)
}

func TestExecutorMetrics(t *testing.T) {
	collector := testutil.NewTestMetricsCollector()
	client, session := newTestClient(t, WithMetrics(collector))
	ctx := context.Background()

	_, err := client.Select("test").Execute(ctx)
	require.NoError(t, err)
	_, err = client.Insert(ctx, "test", map[string]any{"id": "i"})
	require.NoError(t, err)

	session.ExecErr = errors.New("boom")
	_, err = client.Delete("test").Where("id = ?", "i").Execute(ctx)
	require.Error(t, err)

	_, _ = client.Select("test").ExecuteAsync(ctx).Get(ctx)

	require.Equal(t, int64(1), collector.Total(types.KindSelect))
	require.Equal(t, int64(1), collector.Total(types.KindInsert))
	require.Equal(t, int64(1), collector.Total(types.KindDelete))
	require.Equal(t, int64(1), collector.Errors(types.KindDelete))
	require.Zero(t, collector.Errors(types.KindSelect))
	require.Len(t, collector.Durations(types.KindSelect), 1)
	require.Equal(t, int64(1), collector.Async(types.KindSelect))
}

func TestExecutorTracing(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	client, session := newTestClient(t, WithTracer(provider.Tracer("cassava-test")))
	ctx := context.Background()

	_, err := client.Select("test").Where("id = ?", "i").Execute(ctx)
	require.NoError(t, err)

	session.ExecErr = errors.New("boom")
	_, err = client.Select("test").Execute(ctx)
	require.Error(t, err)

	spans := exporter.GetSpans()
	require.Len(t, spans, 2)
	require.Equal(t, "cassava.execute", spans[0].Name)
	require.Equal(t, codes.Ok, spans[0].Status.Code)
	require.Equal(t, codes.Error, spans[1].Status.Code)

	attrs := map[string]any{}
	for _, kv := range spans[0].Attributes {
		attrs[string(kv.Key)] = kv.Value.AsInterface()
	}
	require.Equal(t, "cassandra", attrs["db.system"])
	require.Equal(t, "SELECT * FROM test WHERE id = ?", attrs["db.statement"])
	require.Equal(t, "select", attrs["db.operation"])
	require.Equal(t, int64(1), attrs["db.cassandra.bind_count"])
}

func TestExecutorPrepareEmptyStatement(t *testing.T) {
	client, _ := newTestClient(t)

	_, err := client.Executor().Prepare(context.Background(), " ")
	require.ErrorIs(t, err, cql.ErrEmptyStatement)
}
