// Package report prints end-of-session summaries to a terminal.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"github.com/rustyeddy/binopt/session"
)

// PrintSummary writes the end-of-session report: how the session ended, the
// settings it ran under, trade statistics, and account performance.
func PrintSummary(w io.Writer, s *session.Session, end time.Time, stopReason string) {
	st := s.Stats()

	fmt.Fprintln(w, "==================================================")
	fmt.Fprintln(w, " Session Result")
	fmt.Fprintln(w, "==================================================")

	fmt.Fprintf(w, "Started:       %s\n", s.StartTime().Format(time.RFC3339))
	fmt.Fprintf(w, "Ended:         %s\n", end.Format(time.RFC3339))
	fmt.Fprintf(w, "Duration:      %s\n", end.Sub(s.StartTime()).Round(time.Second))
	if stopReason != "" {
		fmt.Fprintf(w, "Stopped by:    %s\n", color.New(color.FgRed).Sprint(stopReason))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Session Configuration")
	fmt.Fprintln(w, "--------------------------------------------------")
	fmt.Fprintf(w, "Risk/Trade:    %.1f%%\n", s.RiskPercent())
	fmt.Fprintf(w, "Payout:        %.1f%%\n", s.PayoutPercent())
	fmt.Fprintf(w, "Stop Loss:     %.1f%%\n", s.StopLossPercent())
	fmt.Fprintf(w, "Max Loss Run:  %d\n", s.MaxConsecutiveLosses())

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Trade Statistics")
	fmt.Fprintln(w, "--------------------------------------------------")
	fmt.Fprintf(w, "Trades:        %d\n", st.TotalTrades)
	fmt.Fprintf(w, "Wins:          %d\n", st.Wins)
	fmt.Fprintf(w, "Losses:        %d\n", st.Losses)
	fmt.Fprintf(w, "Pushes:        %d\n", st.Pushes)
	fmt.Fprintf(w, "Win Rate:      %.1f%% (breakeven %.1f%%)\n", st.WinRate, st.BreakevenWinRate)
	fmt.Fprintf(w, "Avg Win:       $%.2f\n", st.AvgWin)
	fmt.Fprintf(w, "Avg Loss:      $%.2f\n", st.AvgLoss)
	fmt.Fprintf(w, "Expectancy:    $%+.2f/trade\n", st.Expectancy)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Account Performance")
	fmt.Fprintln(w, "--------------------------------------------------")
	fmt.Fprintf(w, "Start Balance: $%.2f\n", s.InitialBalance())
	fmt.Fprintf(w, "End Balance:   $%.2f\n", s.CurrentBalance())
	fmt.Fprintf(w, "Net P/L:       %s\n", plColor(st.TotalPL).Sprintf("$%+.2f", st.TotalPL))
	fmt.Fprintf(w, "Return:        %s\n", plColor(st.TotalPL).Sprintf("%+.2f%%", st.ROIPercent))
	if st.MaxDrawdownPercent > 0 {
		fmt.Fprintf(w, "Max Drawdown:  %.2f%%\n", st.MaxDrawdownPercent)
	}

	fmt.Fprintln(w)
}

func plColor(v float64) *color.Color {
	switch {
	case v > 0:
		return color.New(color.FgGreen)
	case v < 0:
		return color.New(color.FgRed)
	}
	return color.New(color.FgWhite)
}
