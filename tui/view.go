package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/rustyeddy/binopt/session"
)

const (
	historyHeader    = "  # │ Time     │ Type │ Risk    │ Result  │ Balance    │ Streak"
	historySeparator = "────┼──────────┼──────┼─────────┼─────────┼────────────┼──────────"
)

func (m Model) View() string {
	if m.width == 0 {
		return "Starting session tracker..."
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderSessionPanel(),
		m.renderEntryPanel(),
		m.renderHistoryPanel(),
		m.renderStatsPanel(),
		m.renderStatusBar(),
	)
}

func (m Model) panel(title, content string) string {
	inner := lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render(title),
		content,
	)
	return panelStyle.Width(m.width - 2).Render(inner)
}

func (m Model) renderSessionPanel() string {
	s := m.session
	st := s.Stats()

	change := s.CurrentBalance() - s.InitialBalance()
	changePct := change / s.InitialBalance() * 100

	elapsed := time.Since(s.StartTime())
	hours := int(elapsed.Hours())
	minutes := int(elapsed.Minutes()) % 60

	line1 := fmt.Sprintf("Balance: $%.2f → $%.2f ($%+.2f, %+.1f%%)    Risk/Trade: $%.2f (%.1f%%)",
		s.InitialBalance(), s.CurrentBalance(), change, changePct, s.CurrentRiskAmount(), s.RiskPercent())
	if change < 0 {
		line1 = lossStyle.Render(line1)
	} else {
		line1 = winStyle.Render(line1)
	}
	line2 := fmt.Sprintf("Trades: %d | W/L/P: %d/%d/%d (%.1f%%) | Payout: %.0f%%    Session Time: %dh %dm",
		st.TotalTrades, st.Wins, st.Losses, st.Pushes, st.WinRate, s.PayoutPercent(), hours, minutes)

	return m.panel("SESSION", line1+"\n"+line2)
}

func (m Model) renderEntryPanel() string {
	title := fmt.Sprintf("TRADE ENTRY [%s]", m.mode)
	content := "[w] Win    [l] Loss    [p] Push    Streak: " + m.renderStreak() + "\n" +
		dimStyle.Render("[u] Undo   [j/k] Scroll   [:] Command")
	return m.panel(title, content)
}

func (m Model) renderStreak() string {
	switch streak := m.session.Stats().CurrentStreak; {
	case streak > 0:
		return winStyle.Render(fmt.Sprintf("W%d", streak))
	case streak < 0:
		return lossStyle.Render(fmt.Sprintf("L%d", -streak))
	default:
		return dimStyle.Render("—")
	}
}

func (m Model) renderHistoryPanel() string {
	trades := m.session.Trades()

	// Everything else on screen is fixed-height; history gets the rest.
	maxRows := m.height - 22
	if maxRows < 3 {
		maxRows = 3
	}

	// Scroll keys clamp against history length at press time, so the offset
	// can be stale (or -1 on an empty history) by render time.
	offset := m.scrollOffset
	if offset < 0 {
		offset = 0
	}
	if offset >= len(trades) && len(trades) > 0 {
		offset = len(trades) - 1
	}

	var b strings.Builder
	b.WriteString(historyHeader)
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(historySeparator))

	streaks := rowStreaks(trades)
	newest := len(trades) - 1 - offset
	for row := 0; row < maxRows && newest-row >= 0; row++ {
		i := newest - row
		t := trades[i]

		line := fmt.Sprintf("%3d │ %s │ %-4s │ $%7.2f │ %+8.2f │ $%9.2f │ %-8s",
			i+1, t.Time.Format("15:04:05"), t.Type, t.Risk, t.ProfitLoss(), t.BalanceAfter, streaks[i])

		b.WriteString("\n")
		b.WriteString(outcomeStyle(t.Outcome).Render(line))
	}

	title := "HISTORY"
	if offset > 0 {
		title = fmt.Sprintf("HISTORY ↑%d", offset)
	}
	return m.panel(title, b.String())
}

// rowStreaks computes the streak label each trade carried when it was
// logged: W-counts and L-counts run through the history, pushes show blank
// and leave the counters alone.
func rowStreaks(trades []session.Trade) []string {
	streaks := make([]string, len(trades))
	wins, losses := 0, 0
	for i, t := range trades {
		switch t.Outcome {
		case session.Win:
			wins++
			losses = 0
			streaks[i] = fmt.Sprintf("W%d", wins)
		case session.Loss:
			losses++
			wins = 0
			streaks[i] = fmt.Sprintf("L%d", losses)
		default:
			streaks[i] = ""
		}
	}
	return streaks
}

func outcomeStyle(o session.Outcome) lipgloss.Style {
	switch o {
	case session.Win:
		return winStyle
	case session.Loss:
		return lossStyle
	default:
		return pushStyle
	}
}

func (m Model) renderStatsPanel() string {
	st := m.session.Stats()

	line1 := fmt.Sprintf("Expectancy: $%+.2f/trade    ROI: %+.1f%%    Max DD: %.1f%%",
		st.Expectancy, st.ROIPercent, st.MaxDrawdownPercent)
	line2 := fmt.Sprintf("Avg Win: $%+.2f           Avg Loss: $%+.2f",
		st.AvgWin, st.AvgLoss)

	mark := "✓"
	if st.WinRate < st.BreakevenWinRate {
		mark = "✗"
	}
	line3 := fmt.Sprintf("Est. Breakeven WR: %.1f%%   Actual: %.1f%% %s",
		st.BreakevenWinRate, st.WinRate, mark)

	return m.panel("STATS", line1+"\n"+line2+"\n"+line3)
}

func (m Model) renderStatusBar() string {
	if m.mode == modeCommand {
		return statusBarStyle.Width(m.width).Render(":" + m.commandInput)
	}

	stopLossAmount := m.session.InitialBalance() * (1 - m.session.StopLossPercent()/100)
	status := fmt.Sprintf("[%s] :help for commands | %s | Stop-Loss: $%.2f",
		m.mode, m.statusMsg, stopLossAmount)

	if m.stopping {
		return stopBarStyle.Width(m.width).Render(status)
	}
	return statusBarStyle.Width(m.width).Render(status)
}
