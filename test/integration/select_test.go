package integration_test

import (
	"context"
	"testing"

	"github.com/gocql/gocql"
	"github.com/stretchr/testify/require"

	"github.com/backupify/cassava"
)

// seedSelectTable inserts four rows over two partitions.
func seedSelectTable(t *testing.T, client *cassava.Client, table string) {
	t.Helper()

	ctx := context.Background()
	for _, item := range []map[string]any{
		{"id": "i", "a": 1, "b": "b", "c": "1"},
		{"id": "i", "a": 2, "b": "a", "c": "1"},
		{"id": "i", "a": 3, "b": "c", "c": "1"},
		{"id": "i2", "a": 4, "b": "b", "c": "1"},
	} {
		_, err := client.Insert(ctx, table, item)
		require.NoError(t, err)
	}
}

func TestSelect(t *testing.T) {
	table := createTestTable(t)
	client := newClient(t)
	seedSelectTable(t, client, table)
	ctx := context.Background()

	t.Run("all columns", func(t *testing.T) {
		rs, err := client.Select(table).Execute(ctx)
		require.NoError(t, err)
		require.Equal(t, 4, rs.Count())
		require.ElementsMatch(t, []any{1, 2, 3, 4}, values(rs, "a"))

		row, _ := rs.First()
		require.Len(t, row, 5)
	})

	t.Run("some columns", func(t *testing.T) {
		rs, err := client.Select(table, "id", "a", "c").Execute(ctx)
		require.NoError(t, err)
		require.Equal(t, 4, rs.Count())

		row, _ := rs.First()
		require.Len(t, row, 3)
		require.NotContains(t, row, "b")
	})

	t.Run("where map", func(t *testing.T) {
		rs, err := client.Select(table).Where(map[string]any{"id": "i"}).Execute(ctx)
		require.NoError(t, err)
		require.Equal(t, []any{1, 2, 3}, values(rs, "a"))
	})

	t.Run("where literal string", func(t *testing.T) {
		rs, err := client.Select(table).Where("id = 'i' and a > 1").Execute(ctx)
		require.NoError(t, err)
		require.Equal(t, []any{2, 3}, values(rs, "a"))
	})

	t.Run("where string with arguments", func(t *testing.T) {
		rs, err := client.Select(table).Where("id = ? and a > ?", "i", 1).Execute(ctx)
		require.NoError(t, err)
		require.Equal(t, []any{2, 3}, values(rs, "a"))
	})

	t.Run("chained where", func(t *testing.T) {
		rs, err := client.Select(table).Where(map[string]any{"id": "i"}).Where("a > 1").Execute(ctx)
		require.NoError(t, err)
		require.Equal(t, []any{2, 3}, values(rs, "a"))
	})

	t.Run("range", func(t *testing.T) {
		rs, err := client.Select(table).
			Where(map[string]any{"id": "i"}).
			Where(cassava.Range{Column: "a", Lower: 1, Upper: 3}).
			Execute(ctx)
		require.NoError(t, err)
		require.Equal(t, []any{2}, values(rs, "a"))
	})

	t.Run("in list", func(t *testing.T) {
		rs, err := client.Select(table).Where(map[string]any{"id": "i", "a": 1, "b": []string{"a", "b"}}).Execute(ctx)
		require.NoError(t, err)
		require.Equal(t, []any{1}, values(rs, "a"))
	})

	t.Run("quotes in map value", func(t *testing.T) {
		rs, err := client.Select(table).Where(map[string]any{"id": `'"abc`}).Execute(ctx)
		require.NoError(t, err)
		require.Zero(t, rs.Count())
	})

	t.Run("quotes in string argument", func(t *testing.T) {
		rs, err := client.Select(table).Where("id = ?", `'"abc`).Execute(ctx)
		require.NoError(t, err)
		require.Zero(t, rs.Count())
	})

	t.Run("ascending clustering order by default", func(t *testing.T) {
		rs, err := client.Select(table).Where(map[string]any{"id": "i"}).Execute(ctx)
		require.NoError(t, err)
		require.Equal(t, []any{1, 2, 3}, values(rs, "a"))
	})

	t.Run("descending order", func(t *testing.T) {
		rs, err := client.Select(table).Where(map[string]any{"id": "i"}).Order("a", cassava.Desc).Execute(ctx)
		require.NoError(t, err)
		require.Equal(t, []any{3, 2, 1}, values(rs, "a"))
	})

	t.Run("where order and limit", func(t *testing.T) {
		rs, err := client.Select(table).
			Where(map[string]any{"id": "i"}).
			Order("a", cassava.Desc).
			Limit(2).
			Execute(ctx)
		require.NoError(t, err)
		require.Equal(t, []any{3, 2}, values(rs, "a"))
	})

	t.Run("limit", func(t *testing.T) {
		rs, err := client.Select(table).Where(map[string]any{"id": "i"}).Limit(2).Execute(ctx)
		require.NoError(t, err)
		require.Equal(t, []any{1, 2}, values(rs, "a"))
	})

	t.Run("filtering required across partitions", func(t *testing.T) {
		_, err := client.Select(table).Where(map[string]any{"a": 1}).Execute(ctx)
		require.Error(t, err)

		var reqErr gocql.RequestError
		require.ErrorAs(t, err, &reqErr)
		require.Equal(t, gocql.ErrCodeInvalid, reqErr.Code())
	})

	t.Run("allow filtering", func(t *testing.T) {
		rs, err := client.Select(table).Where("a >= 3").AllowFiltering().Execute(ctx)
		require.NoError(t, err)
		require.ElementsMatch(t, []any{3, 4}, values(rs, "a"))
	})

	t.Run("clauses in any order", func(t *testing.T) {
		rs, err := client.Select(table).Limit(2).AllowFiltering().Where("a >= 2").Execute(ctx)
		require.NoError(t, err)
		require.Equal(t, 2, rs.Count())
	})

	t.Run("partial statement reuse", func(t *testing.T) {
		partial := client.Select(table).AllowFiltering().Where(map[string]any{"a": 1})

		rs, err := partial.Where(map[string]any{"b": "missing"}).Execute(ctx)
		require.NoError(t, err)
		require.Zero(t, rs.Count())

		rs, err = partial.Execute(ctx)
		require.NoError(t, err)
		require.Equal(t, 1, rs.Count())
	})

	t.Run("count", func(t *testing.T) {
		rs, err := client.Select(table).Where("id = ? and a > ?", "i", 1).Count().Execute(ctx)
		require.NoError(t, err)

		row, _ := rs.First()
		n, ok := row.Int64("count")
		require.True(t, ok)
		require.Equal(t, int64(2), n)
	})

	t.Run("async", func(t *testing.T) {
		rs, err := client.Select(table).Where(map[string]any{"id": "i2"}).ExecuteAsync(ctx).Get(ctx)
		require.NoError(t, err)
		require.Equal(t, []any{4}, values(rs, "a"))
	})
}

func TestSelectPaging(t *testing.T) {
	table := createTestTable(t)
	client := newClient(t)
	seedSelectTable(t, client, table)
	ctx := context.Background()

	stmt := client.Select(table).Where(map[string]any{"id": "i"})

	first, err := stmt.Execute(ctx, cassava.WithPageSize(2))
	require.NoError(t, err)
	require.Equal(t, []any{1, 2}, values(first, "a"))
	require.NotEmpty(t, first.PageState())

	second, err := stmt.Execute(ctx, cassava.WithPageSize(2), cassava.WithPageState(first.PageState()))
	require.NoError(t, err)
	require.Equal(t, []any{3}, values(second, "a"))
}
