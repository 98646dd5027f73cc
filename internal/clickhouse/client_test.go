package clickhouse

import (
	"context"
	"math"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Billy-Davies-2/futsal-team-maker/internal/models"
)

func TestBalanceRows(t *testing.T) {
	at := time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)
	stats := []models.TeamStats{
		{Index: 1, Size: 4, AverageRating: 3.5},
		{Index: 2, Size: 3, AverageRating: math.NaN()},
	}

	rows := balanceRows("s1", stats, at)
	require.Len(t, rows, 2)

	assert.Equal(t, balanceRow{sessionID: "s1", teamIndex: 1, size: 4, averageRating: 3.5, createdAt: at}, rows[0])
	assert.Equal(t, uint16(2), rows[1].teamIndex)
	assert.Equal(t, 0.0, rows[1].averageRating)
	assert.Equal(t, rows[0].createdAt, rows[1].createdAt)
}

func TestBalanceRowsEmpty(t *testing.T) {
	assert.Empty(t, balanceRows("s1", nil, time.Now()))
}

func TestClientRoundTrip(t *testing.T) {
	addr := os.Getenv("CLICKHOUSE_TEST_ADDR")
	if addr == "" {
		t.Skip("CLICKHOUSE_TEST_ADDR not set")
	}

	c, err := NewClient(addr, "default", "default", os.Getenv("CLICKHOUSE_TEST_PASSWORD"))
	require.NoError(t, err)
	defer c.Close()

	ctx := context.Background()
	since := time.Now().Add(-time.Second)

	err = c.RecordBalance(ctx, "roundtrip", []models.TeamStats{
		{Index: 1, Size: 2, AverageRating: 4},
		{Index: 2, Size: 2, AverageRating: 3},
	})
	require.NoError(t, err)

	summary, err := c.BalanceSummary(ctx, since)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, summary.Balances, uint64(1))
	assert.False(t, math.IsNaN(summary.MeanSpread))
}
