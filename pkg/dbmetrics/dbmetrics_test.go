package dbmetrics

import (
	"context"
	"database/sql"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

type observation struct {
	operation string
	failed    bool
}

type fakeCollector struct {
	mu           sync.Mutex
	observations []observation
	poolReports  int
}

func (c *fakeCollector) ObserveDBQuery(operation string, err error, _ time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.observations = append(c.observations, observation{operation: operation, failed: err != nil})
}

func (c *fakeCollector) SetDBPoolStats(_, _, _ int, _ int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.poolReports++
}

func (c *fakeCollector) reports() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.poolReports
}

func openSQLite(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "metrics.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestDB_ObservesQueries(t *testing.T) {
	ctx := context.Background()
	collector := &fakeCollector{}
	db := Wrap(openSQLite(t), collector)

	_, err := db.ExecContext(ctx, `CREATE TABLE t (v INTEGER)`)
	require.NoError(t, err)

	rows, err := db.QueryContext(ctx, `SELECT v FROM t`)
	require.NoError(t, err)
	require.NoError(t, rows.Close())

	var n int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM t`).Scan(&n))

	_, err = db.ExecContext(ctx, `SELECT * FROM missing_table`)
	require.Error(t, err)

	assert.Equal(t, []observation{
		{operation: "exec"},
		{operation: "query"},
		{operation: "query_row"},
		{operation: "exec", failed: true},
	}, collector.observations)
}

func TestWrapWithDefault_ReportsPoolStatsUntilStopped(t *testing.T) {
	collector := &fakeCollector{}
	stopCh := make(chan struct{})

	WrapWithDefault(openSQLite(t), collector, stopCh)

	assert.Eventually(t, func() bool { return collector.reports() >= 1 }, time.Second, 10*time.Millisecond)
	close(stopCh)
}
