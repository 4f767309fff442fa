package integration_test

import (
	"context"
	"testing"
	"time"

	"github.com/gocql/gocql"
	"github.com/stretchr/testify/require"

	"github.com/backupify/cassava"
)

func TestInsertItem(t *testing.T) {
	table := createTestTable(t)
	client := newClient(t)
	ctx := context.Background()

	item := map[string]any{"id": "i", "a": 1, "b": "b", "c": "c", "d": 1}
	_, err := client.Insert(ctx, table, item)
	require.NoError(t, err)

	rs, err := client.Select(table).Execute(ctx)
	require.NoError(t, err)

	row, ok := rs.First()
	require.True(t, ok)
	require.Equal(t, cassava.Row(item), row)
}

func TestInsertWithMissingColumn(t *testing.T) {
	table := createTestTable(t)
	client := newClient(t)
	ctx := context.Background()

	_, err := client.Insert(ctx, table, map[string]any{"id": "i", "a": 1, "b": "b", "c": "c"})
	require.NoError(t, err)

	rs, err := client.Select(table).Execute(ctx)
	require.NoError(t, err)

	row, ok := rs.First()
	require.True(t, ok)
	require.Contains(t, row, "d")
	require.Empty(t, row["d"])
}

func TestInsertMissingKeyIsInvalid(t *testing.T) {
	table := createTestTable(t)
	client := newClient(t)

	tests := []struct {
		name string
		item map[string]any
	}{
		{"partition key", map[string]any{"a": 1, "b": "b", "c": "c"}},
		{"clustering key", map[string]any{"id": "i", "a": 1, "c": "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.Insert(context.Background(), table, tt.item)
			require.Error(t, err)

			var reqErr gocql.RequestError
			require.ErrorAs(t, err, &reqErr)
			require.Equal(t, gocql.ErrCodeInvalid, reqErr.Code())
		})
	}
}

func TestInsertQuotesInValues(t *testing.T) {
	table := createTestTable(t)
	client := newClient(t)
	ctx := context.Background()

	item := map[string]any{"id": "i", "a": 1, "b": "b", "c": `'"item(`, "d": 1}
	_, err := client.Insert(ctx, table, item)
	require.NoError(t, err)

	rs, err := client.Select(table).Execute(ctx)
	require.NoError(t, err)

	row, _ := rs.First()
	require.Equal(t, `'"item(`, row["c"])
}

func TestInsertWithTTL(t *testing.T) {
	table := createTestTable(t)
	client := newClient(t)
	ctx := context.Background()

	_, err := client.Insert(ctx, table, map[string]any{"id": "i", "a": 1, "b": "b", "d": 1, "ttl": 12345})
	require.NoError(t, err)

	ttl, ok, err := client.SelectTTL(ctx, table, "d", map[string]any{"id": "i"})
	require.NoError(t, err)
	require.True(t, ok)
	require.Greater(t, ttl, int64(0))
	require.LessOrEqual(t, ttl, int64(12345))
}

func TestInsertWithTimestamp(t *testing.T) {
	table := createTestTable(t)
	client := newClient(t)
	ctx := context.Background()

	ts := time.Now().UnixMicro()
	_, err := client.Insert(ctx, table, map[string]any{"id": "i", "a": 1, "b": "b", "d": 1, "optional_timestamp": ts})
	require.NoError(t, err)

	saved, ok, err := client.SelectWritetime(ctx, table, "d", map[string]any{"id": "i"})
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, ts, saved)
}

func TestInsertWithTTLAndTimestamp(t *testing.T) {
	table := createTestTable(t)
	client := newClient(t)
	ctx := context.Background()

	ts := time.Now().UnixMicro()
	item := map[string]any{"id": "i", "a": 1, "b": "b", "d": 1, "ttl": 12345, "optional_timestamp": ts}
	_, err := client.Insert(ctx, table, item)
	require.NoError(t, err)

	saved, ok, err := client.SelectWritetime(ctx, table, "d", map[string]any{"id": "i"})
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, ts, saved)

	ttl, ok, err := client.SelectTTL(ctx, table, "d", map[string]any{"id": "i"})
	require.NoError(t, err)
	require.True(t, ok)
	require.LessOrEqual(t, ttl, int64(12345))
}

func TestSelectTTLWithoutTTL(t *testing.T) {
	table := createTestTable(t)
	client := newClient(t)
	ctx := context.Background()

	_, err := client.Insert(ctx, table, map[string]any{"id": "i", "a": 1, "b": "b", "d": 1})
	require.NoError(t, err)

	_, ok, err := client.SelectTTL(ctx, table, "d", map[string]any{"id": "i"})
	require.NoError(t, err)
	require.False(t, ok)
}

func TestSelectWritetime(t *testing.T) {
	table := createTestTable(t)
	client := newClient(t)
	ctx := context.Background()

	before := time.Now().UnixMicro()
	_, err := client.Insert(ctx, table, map[string]any{"id": "i", "a": 1, "b": "b", "c": "item", "d": 1})
	require.NoError(t, err)

	ts, ok, err := client.SelectWritetime(ctx, table, "d", map[string]any{"id": "i"})
	require.NoError(t, err)
	require.True(t, ok)
	require.GreaterOrEqual(t, ts, before-int64(time.Minute/time.Microsecond))
}

func TestInsertIfNotExists(t *testing.T) {
	table := createTestTable(t)
	client := newClient(t)
	ctx := context.Background()

	item := map[string]any{"id": "i", "a": 1, "b": "b", "c": "first"}

	rs, err := client.Insert(ctx, table, item, cassava.IfNotExists())
	require.NoError(t, err)
	row, ok := rs.First()
	require.True(t, ok)
	require.Equal(t, true, row["[applied]"])

	item["c"] = "second"
	rs, err = client.Insert(ctx, table, item, cassava.IfNotExists())
	require.NoError(t, err)
	row, _ = rs.First()
	require.Equal(t, false, row["[applied]"])
	require.Equal(t, "first", row["c"])
}

func TestInsertAsync(t *testing.T) {
	table := createTestTable(t)
	client := newClient(t)
	ctx := context.Background()

	futures := make([]*cassava.Future, 0, 5)
	for a := 1; a <= 5; a++ {
		futures = append(futures, client.InsertAsync(ctx, table, map[string]any{"id": "i", "a": a, "b": "b"}))
	}
	for _, f := range futures {
		_, err := f.Get(ctx)
		require.NoError(t, err)
	}

	rs, err := client.Select(table).Where(map[string]any{"id": "i"}).Count().Execute(ctx)
	require.NoError(t, err)
	row, _ := rs.First()
	n, ok := row.Int64("count")
	require.True(t, ok)
	require.Equal(t, int64(5), n)
}
