package journal

import (
	"fmt"
	"strings"
	"time"
)

// FormatSessionOrg renders a SessionRecord as an Org-mode subtree suitable
// for pasting into a trading journal. Structured facts live in a PROPERTIES
// drawer for easy search; the Review heading is a placeholder for narrative
// notes.
func FormatSessionOrg(rec SessionRecord) string {
	heading := fmt.Sprintf("** Session: %s (%s)",
		rec.StartTime.UTC().Format("2006-01-02"), shortID(rec.ID))

	var b strings.Builder
	b.WriteString(heading)
	b.WriteString("\n")
	b.WriteString(":PROPERTIES:\n")
	b.WriteString(fmt.Sprintf(":SESSION_ID: %s\n", rec.ID))
	b.WriteString(fmt.Sprintf(":START_TIME: %s\n", rec.StartTime.UTC().Format(time.RFC3339)))
	b.WriteString(fmt.Sprintf(":END_TIME: %s\n", rec.EndTime.UTC().Format(time.RFC3339)))
	b.WriteString(fmt.Sprintf(":INITIAL_BALANCE: %.2f\n", rec.InitialBalance))
	b.WriteString(fmt.Sprintf(":FINAL_BALANCE: %.2f\n", rec.FinalBalance))
	b.WriteString(fmt.Sprintf(":TOTAL_TRADES: %d\n", rec.TotalTrades))
	b.WriteString(fmt.Sprintf(":WINS: %d\n", rec.Wins))
	b.WriteString(fmt.Sprintf(":LOSSES: %d\n", rec.Losses))
	b.WriteString(fmt.Sprintf(":PUSHES: %d\n", rec.Pushes))
	b.WriteString(fmt.Sprintf(":WIN_RATE: %.1f\n", rec.WinRate))
	b.WriteString(fmt.Sprintf(":TOTAL_PL: %.2f\n", rec.TotalPL))
	b.WriteString(fmt.Sprintf(":ROI_PERCENT: %.2f\n", rec.ROIPercent))
	b.WriteString(fmt.Sprintf(":EXPECTANCY: %.2f\n", rec.Expectancy))
	b.WriteString(fmt.Sprintf(":MAX_DRAWDOWN_PERCENT: %.2f\n", rec.MaxDrawdownPercent))
	if rec.StopReason != "" {
		b.WriteString(fmt.Sprintf(":STOP_REASON: %s\n", rec.StopReason))
	}
	b.WriteString(":END:\n")
	b.WriteString("\n")
	b.WriteString("*** Review\n- \n")

	return b.String()
}

// FormatTradeOrg renders one trade as a subtree that nests under its
// session heading.
func FormatTradeOrg(tr TradeRecord) string {
	heading := fmt.Sprintf("*** Trade: %s %s (%s)", tr.Type, tr.Outcome, shortID(tr.ID))

	var b strings.Builder
	b.WriteString(heading)
	b.WriteString("\n")
	b.WriteString(":PROPERTIES:\n")
	b.WriteString(fmt.Sprintf(":TRADE_ID: %s\n", tr.ID))
	b.WriteString(fmt.Sprintf(":SESSION_ID: %s\n", tr.SessionID))
	b.WriteString(fmt.Sprintf(":TIME: %s\n", tr.Time.UTC().Format(time.RFC3339)))
	b.WriteString(fmt.Sprintf(":TYPE: %s\n", tr.Type))
	b.WriteString(fmt.Sprintf(":OUTCOME: %s\n", tr.Outcome))
	b.WriteString(fmt.Sprintf(":RISK: %.2f\n", tr.Risk))
	b.WriteString(fmt.Sprintf(":PAYOUT: %.2f\n", tr.Payout))
	b.WriteString(fmt.Sprintf(":PROFIT_LOSS: %.2f\n", tr.ProfitLoss))
	b.WriteString(fmt.Sprintf(":BALANCE_AFTER: %.2f\n", tr.BalanceAfter))
	b.WriteString(":END:\n")

	return b.String()
}

// FormatSessionsOrg renders multiple sessions separated by blank lines.
func FormatSessionsOrg(recs []SessionRecord) string {
	var b strings.Builder
	for i, rec := range recs {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(FormatSessionOrg(rec))
	}
	return b.String()
}

// FormatTradesOrg renders multiple trades separated by blank lines.
func FormatTradesOrg(trs []TradeRecord) string {
	var b strings.Builder
	for i, tr := range trs {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(FormatTradeOrg(tr))
	}
	return b.String()
}

func shortID(full string) string {
	if len(full) <= 8 {
		return full
	}
	return full[:8]
}
