package journal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testSessionRecord builds a plausible finished-session row for query tests.
func testSessionRecord(id string, start time.Time) SessionRecord {
	return SessionRecord{
		ID:                 id,
		StartTime:          start,
		EndTime:            start.Add(45 * time.Minute),
		InitialBalance:     2000,
		FinalBalance:       2080,
		TotalTrades:        3,
		Wins:               2,
		Losses:             1,
		Pushes:             0,
		WinRate:            66.7,
		TotalPL:            80,
		ROIPercent:         4,
		Expectancy:         26.67,
		MaxDrawdownPercent: 5,
	}
}

func testTradeRecord(id, sessionID string, ts time.Time) TradeRecord {
	return TradeRecord{
		ID:           id,
		SessionID:    sessionID,
		Time:         ts,
		Type:         "CALL",
		Outcome:      "WIN",
		Risk:         100,
		Payout:       80,
		ProfitLoss:   80,
		BalanceAfter: 2080,
	}
}

func TestGetSession(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	t.Cleanup(func() { _ = j.Close() })

	want := testSessionRecord("S-get", time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC))
	want.StopReason = "Stop-loss triggered: -20.0%"
	require.NoError(t, j.RecordSession(want))

	got, err := j.GetSession("S-get")
	require.NoError(t, err)

	assert.Equal(t, want.ID, got.ID)
	assert.True(t, got.StartTime.Equal(want.StartTime))
	assert.True(t, got.EndTime.Equal(want.EndTime))
	assert.InDelta(t, want.InitialBalance, got.InitialBalance, 1e-6)
	assert.InDelta(t, want.FinalBalance, got.FinalBalance, 1e-6)
	assert.Equal(t, want.TotalTrades, got.TotalTrades)
	assert.Equal(t, want.Wins, got.Wins)
	assert.Equal(t, want.Losses, got.Losses)
	assert.Equal(t, want.Pushes, got.Pushes)
	assert.InDelta(t, want.WinRate, got.WinRate, 1e-6)
	assert.InDelta(t, want.TotalPL, got.TotalPL, 1e-6)
	assert.InDelta(t, want.ROIPercent, got.ROIPercent, 1e-6)
	assert.InDelta(t, want.Expectancy, got.Expectancy, 1e-6)
	assert.InDelta(t, want.MaxDrawdownPercent, got.MaxDrawdownPercent, 1e-6)
	assert.Equal(t, want.StopReason, got.StopReason)
}

func TestGetSessionNotFound(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	t.Cleanup(func() { _ = j.Close() })

	_, err := j.GetSession("nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `session "nope" not found`)
}

func TestLatestSession(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	t.Cleanup(func() { _ = j.Close() })

	older := testSessionRecord("S-old", time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC))
	newer := testSessionRecord("S-new", time.Date(2024, 6, 2, 9, 0, 0, 0, time.UTC))
	// Insert out of order; the query must sort by start time, not rowid.
	require.NoError(t, j.RecordSession(newer))
	require.NoError(t, j.RecordSession(older))

	got, err := j.LatestSession()
	require.NoError(t, err)
	assert.Equal(t, "S-new", got.ID)
}

func TestLatestSessionEmpty(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	t.Cleanup(func() { _ = j.Close() })

	_, err := j.LatestSession()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "journal is empty")
}

func TestListSessionsBetween(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	t.Cleanup(func() { _ = j.Close() })

	dayStart := time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24 * time.Hour)

	require.NoError(t, j.RecordSession(testSessionRecord("before", dayStart.Add(-time.Hour))))
	require.NoError(t, j.RecordSession(testSessionRecord("morning", dayStart)))
	require.NoError(t, j.RecordSession(testSessionRecord("evening", dayStart.Add(20*time.Hour))))
	require.NoError(t, j.RecordSession(testSessionRecord("next-day", dayEnd)))

	got, err := j.ListSessionsBetween(dayStart, dayEnd)
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, "morning", got[0].ID)
	assert.Equal(t, "evening", got[1].ID)
}

func TestListSessionsBetweenEmpty(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	t.Cleanup(func() { _ = j.Close() })

	got, err := j.ListSessionsBetween(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC))
	assert.NoError(t, err)
	assert.Empty(t, got)
}

func TestListTradesBySession(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	t.Cleanup(func() { _ = j.Close() })

	base := time.Date(2024, 6, 2, 10, 0, 0, 0, time.UTC)
	require.NoError(t, j.RecordSession(testSessionRecord("S-1", base)))

	// Insert out of chronological order; listing must come back time-sorted.
	require.NoError(t, j.RecordTrade(testTradeRecord("T-2", "S-1", base.Add(2*time.Minute))))
	require.NoError(t, j.RecordTrade(testTradeRecord("T-1", "S-1", base.Add(1*time.Minute))))
	require.NoError(t, j.RecordTrade(testTradeRecord("T-other", "S-2", base.Add(3*time.Minute))))

	got, err := j.ListTradesBySession("S-1")
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, "T-1", got[0].ID)
	assert.Equal(t, "T-2", got[1].ID)
	assert.Equal(t, "CALL", got[0].Type)
	assert.Equal(t, "WIN", got[0].Outcome)
	assert.InDelta(t, 80.0, got[0].ProfitLoss, 1e-6)
}

func TestListTradesBySessionEmpty(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	t.Cleanup(func() { _ = j.Close() })

	got, err := j.ListTradesBySession("missing")
	assert.NoError(t, err)
	assert.Empty(t, got)
}
