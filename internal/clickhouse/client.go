package clickhouse

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"

	"github.com/Billy-Davies-2/futsal-team-maker/internal/models"
)

// Client records balance outcomes in ClickHouse
type Client struct {
	conn driver.Conn
}

// NewClient creates a new ClickHouse client and makes sure the events table exists
func NewClient(addr, database, username, password string) (*Client, error) {
	conn, err := clickhouse.Open(&clickhouse.Options{
		Addr: []string{addr},
		Auth: clickhouse.Auth{
			Database: database,
			Username: username,
			Password: password,
		},
		DialTimeout: 10 * time.Second,
	})

	if err != nil {
		return nil, fmt.Errorf("failed to connect to ClickHouse: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := conn.Ping(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping ClickHouse: %w", err)
	}

	c := &Client{conn: conn}
	if err := c.initSchema(ctx); err != nil {
		conn.Close()
		return nil, err
	}
	return c, nil
}

func (c *Client) initSchema(ctx context.Context) error {
	err := c.conn.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS team_balance_events (
			session_id String,
			team_index UInt16,
			size UInt32,
			average_rating Float64,
			created_at DateTime64(3)
		)
		ENGINE = MergeTree
		ORDER BY (created_at, session_id)
		TTL toDateTime(created_at) + INTERVAL 90 DAY
	`)
	if err != nil {
		return fmt.Errorf("failed to create team_balance_events: %w", err)
	}
	return nil
}

type balanceRow struct {
	sessionID     string
	teamIndex     uint16
	size          uint32
	averageRating float64
	createdAt     time.Time
}

// balanceRows turns one balance into a row per team sharing one timestamp
func balanceRows(sessionID string, stats []models.TeamStats, at time.Time) []balanceRow {
	rows := make([]balanceRow, 0, len(stats))
	for _, s := range stats {
		avg := s.AverageRating
		if math.IsNaN(avg) || math.IsInf(avg, 0) {
			avg = 0
		}
		rows = append(rows, balanceRow{
			sessionID:     sessionID,
			teamIndex:     uint16(s.Index),
			size:          uint32(s.Size),
			averageRating: avg,
			createdAt:     at,
		})
	}
	return rows
}

// RecordBalance stores the team summary of one balance
func (c *Client) RecordBalance(ctx context.Context, sessionID string, stats []models.TeamStats) error {
	rows := balanceRows(sessionID, stats, time.Now().UTC())
	if len(rows) == 0 {
		return nil
	}

	batch, err := c.conn.PrepareBatch(ctx, `INSERT INTO team_balance_events`)
	if err != nil {
		return fmt.Errorf("failed to prepare batch: %w", err)
	}

	for _, r := range rows {
		if err := batch.Append(r.sessionID, r.teamIndex, r.size, r.averageRating, r.createdAt); err != nil {
			batch.Abort()
			return fmt.Errorf("failed to append row: %w", err)
		}
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("failed to send batch: %w", err)
	}
	return nil
}

// BalanceSummary counts balances recorded since the given time and the mean
// spread between their strongest and weakest team
func (c *Client) BalanceSummary(ctx context.Context, since time.Time) (models.BalanceSummary, error) {
	var summary models.BalanceSummary

	query := `
		SELECT
			count() AS balances,
			avg(spread) AS mean_spread
		FROM (
			SELECT
				session_id,
				created_at,
				max(average_rating) - min(average_rating) AS spread
			FROM team_balance_events
			WHERE created_at >= ?
			GROUP BY session_id, created_at
		)
	`

	row := c.conn.QueryRow(ctx, query, since.UTC())
	if err := row.Scan(&summary.Balances, &summary.MeanSpread); err != nil {
		return models.BalanceSummary{}, fmt.Errorf("failed to query balance summary: %w", err)
	}

	// avg over no rows is nan in ClickHouse
	if math.IsNaN(summary.MeanSpread) {
		summary.MeanSpread = 0
	}
	return summary, nil
}

// Close closes the ClickHouse connection
func (c *Client) Close() error {
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}
