package session

// Stats is the derived summary over a session's history. With no trades
// every field is zero except BreakevenWinRate, which depends only on the
// payout percent.
type Stats struct {
	TotalTrades int
	Wins        int
	Losses      int
	Pushes      int

	WinRate    float64 // percent of trades that were wins
	TotalPL    float64 // current balance minus initial balance
	ROIPercent float64

	AvgWin     float64 // mean payout across WIN trades
	AvgLoss    float64 // mean risked amount across LOSS trades
	Expectancy float64 // expected P/L per trade at the observed win rate

	// MaxDrawdownPercent measures from the initial balance to the lowest
	// balance ever reached, including balances from trades that were later
	// undone.
	MaxDrawdownPercent float64

	// BreakevenWinRate is the win rate at which expectancy is exactly zero
	// for the current payout percent: 100 / (1 + payout/100).
	BreakevenWinRate float64

	// CurrentStreak is positive for a run of wins, negative for a run of
	// losses, zero otherwise.
	CurrentStreak int
}

// Stats derives the summary from the current history. It never mutates the
// session.
func (s *Session) Stats() Stats {
	st := Stats{
		BreakevenWinRate: 100 / (1 + s.payoutPercent/100),
	}
	if len(s.trades) == 0 {
		return st
	}

	var sumWin, sumLoss float64
	for _, t := range s.trades {
		switch t.Outcome {
		case Win:
			st.Wins++
			sumWin += t.Payout
		case Loss:
			st.Losses++
			sumLoss += t.Risk
		case Push:
			st.Pushes++
		}
	}

	st.TotalTrades = len(s.trades)
	st.WinRate = float64(st.Wins) / float64(st.TotalTrades) * 100
	st.TotalPL = s.currentBalance - s.initialBalance
	st.ROIPercent = st.TotalPL / s.initialBalance * 100

	if st.Wins > 0 {
		st.AvgWin = sumWin / float64(st.Wins)
	}
	if st.Losses > 0 {
		st.AvgLoss = sumLoss / float64(st.Losses)
	}
	st.Expectancy = st.WinRate/100*st.AvgWin - (100-st.WinRate)/100*st.AvgLoss

	st.MaxDrawdownPercent = (s.initialBalance - s.minBalance) / s.initialBalance * 100

	if s.consecutiveWins > 0 {
		st.CurrentStreak = s.consecutiveWins
	} else {
		st.CurrentStreak = -s.consecutiveLosses
	}
	return st
}
