package mocks

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/Billy-Davies-2/futsal-team-maker/internal/logger"
	"github.com/Billy-Davies-2/futsal-team-maker/internal/models"
)

// BalanceRecord is one balance captured by MockAnalytics
type BalanceRecord struct {
	SessionID string
	Teams     []models.TeamStats
	At        time.Time
}

// MockAnalytics stands in for the ClickHouse client during local development
// and in tests. Balances are kept in memory.
type MockAnalytics struct {
	mu      sync.Mutex
	records []BalanceRecord
	now     func() time.Time

	// Err, when set, is returned by RecordBalance and BalanceSummary
	Err error
}

// NewMockAnalytics creates an empty in-memory analytics sink
func NewMockAnalytics() *MockAnalytics {
	logger.Info("Using MOCK ClickHouse analytics for local development")
	return &MockAnalytics{now: time.Now}
}

// RecordBalance stores a copy of the team summary
func (m *MockAnalytics) RecordBalance(ctx context.Context, sessionID string, stats []models.TeamStats) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return m.Err
	}
	m.records = append(m.records, BalanceRecord{
		SessionID: sessionID,
		Teams:     append([]models.TeamStats(nil), stats...),
		At:        m.now(),
	})
	return nil
}

// BalanceSummary mirrors the ClickHouse aggregation over the stored records
func (m *MockAnalytics) BalanceSummary(ctx context.Context, since time.Time) (models.BalanceSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return models.BalanceSummary{}, m.Err
	}

	var summary models.BalanceSummary
	var total float64
	for _, r := range m.records {
		if r.At.Before(since) || len(r.Teams) == 0 {
			continue
		}
		lo, hi := math.Inf(1), math.Inf(-1)
		for _, t := range r.Teams {
			lo = math.Min(lo, t.AverageRating)
			hi = math.Max(hi, t.AverageRating)
		}
		summary.Balances++
		total += hi - lo
	}
	if summary.Balances > 0 {
		summary.MeanSpread = total / float64(summary.Balances)
	}
	return summary, nil
}

// Records returns the balances recorded so far
func (m *MockAnalytics) Records() []BalanceRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]BalanceRecord(nil), m.records...)
}

// Close is a no-op for mock client
func (m *MockAnalytics) Close() error {
	return nil
}
