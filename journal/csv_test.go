package journal

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestCSVCreatesFilesWithHeaders(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	j, err := NewCSV(dir)
	require.NoError(t, err)
	require.NoError(t, j.Close())

	sessions := readCSV(t, filepath.Join(dir, "sessions.csv"))
	require.Len(t, sessions, 1)
	assert.Equal(t, sessionHeader, sessions[0])

	trades := readCSV(t, filepath.Join(dir, "trades.csv"))
	require.Len(t, trades, 1)
	assert.Equal(t, tradeHeader, trades[0])
}

func TestCSVCreatesDirectory(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "journal", "nested")
	j, err := NewCSV(dir)
	require.NoError(t, err)
	require.NoError(t, j.Close())

	_, err = os.Stat(filepath.Join(dir, "sessions.csv"))
	assert.NoError(t, err)
}

func TestCSVRecordSession(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	j, err := NewCSV(dir)
	require.NoError(t, err)

	start := time.Date(2024, 4, 10, 13, 0, 0, 0, time.UTC)
	rec := testSessionRecord("S-csv", start)
	rec.StopReason = "Stop-loss triggered: -20.0%"

	require.NoError(t, j.RecordSession(rec))
	require.NoError(t, j.Close())

	rows := readCSV(t, filepath.Join(dir, "sessions.csv"))
	require.Len(t, rows, 2)

	row := rows[1]
	assert.Equal(t, "S-csv", row[0])
	assert.Equal(t, "2024-04-10T13:00:00Z", row[1])
	assert.Equal(t, "2024-04-10T13:45:00Z", row[2])
	assert.Equal(t, "2000.00", row[3])
	assert.Equal(t, "2080.00", row[4])
	assert.Equal(t, "3", row[5])
	assert.Equal(t, "Stop-loss triggered: -20.0%", row[14])
}

func TestCSVRecordTrade(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	j, err := NewCSV(dir)
	require.NoError(t, err)

	ts := time.Date(2024, 4, 10, 13, 5, 0, 0, time.UTC)
	tr := TradeRecord{
		ID:           "T-csv",
		SessionID:    "S-csv",
		Time:         ts,
		Type:         "CALL",
		Outcome:      "LOSS",
		Risk:         104,
		Payout:       83.2,
		ProfitLoss:   -104,
		BalanceAfter: 1976,
	}

	require.NoError(t, j.RecordTrade(tr))
	require.NoError(t, j.Close())

	rows := readCSV(t, filepath.Join(dir, "trades.csv"))
	require.Len(t, rows, 2)

	row := rows[1]
	assert.Equal(t, []string{
		"T-csv", "S-csv", "2024-04-10T13:05:00Z", "CALL", "LOSS",
		"104.00", "83.20", "-104.00", "1976.00",
	}, row)
}

func TestCSVAppendsAcrossRuns(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	j, err := NewCSV(dir)
	require.NoError(t, err)
	require.NoError(t, j.RecordSession(testSessionRecord("run-1", time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC))))
	require.NoError(t, j.Close())

	// Second run appends rows without repeating the header.
	j2, err := NewCSV(dir)
	require.NoError(t, err)
	require.NoError(t, j2.RecordSession(testSessionRecord("run-2", time.Date(2024, 6, 2, 9, 0, 0, 0, time.UTC))))
	require.NoError(t, j2.Close())

	rows := readCSV(t, filepath.Join(dir, "sessions.csv"))
	require.Len(t, rows, 3)
	assert.Equal(t, sessionHeader, rows[0])
	assert.Equal(t, "run-1", rows[1][0])
	assert.Equal(t, "run-2", rows[2][0])
}
