package session

import "time"

// Trade is one logged outcome. A Trade is immutable once recorded:
// BalanceAfter is a snapshot of the ledger balance taken when the trade was
// applied, never re-derived from history later.
type Trade struct {
	ID           string
	Time         time.Time
	Type         string // informational label, e.g. "CALL" or "PUT"
	Risk         float64
	Outcome      Outcome
	Payout       float64 // nonzero only for WIN
	BalanceAfter float64
}

// ProfitLoss returns the trade's effect on the balance: the payout for a
// WIN, the lost risk for a LOSS, zero for a PUSH.
func (t Trade) ProfitLoss() float64 {
	switch t.Outcome {
	case Win:
		return t.Payout
	case Loss:
		return -t.Risk
	case Push:
		return 0
	}
	return 0
}
