// Package session implements the ledger for one tracking session: the
// bankroll, the ordered trade history, streak state, and the stop rules
// derived from them. It knows nothing about input handling or rendering.
package session

import (
	"fmt"
	"time"

	"github.com/rustyeddy/binopt/internal/id"
)

// Stop limits applied when none are configured. Reset always returns to
// these; construction-time overrides do not survive a reset.
const (
	DefaultStopLossPercent      = 20.0
	DefaultMaxConsecutiveLosses = 5
)

// Config carries the parameters a Session is constructed with. Callers are
// expected to have validated and defaulted the values; New applies them
// as-is.
type Config struct {
	InitialBalance       float64
	RiskPercent          float64
	PayoutPercent        float64
	StopLossPercent      float64
	MaxConsecutiveLosses int
}

// Session is the single source of truth for a running session. The trade
// slice ordering is authoritative: "last trade", the history view, and
// streak reconstruction all derive from it.
//
// A Session is not safe for concurrent use. The TUI drives it from one
// event loop, which is the only writer and reader while a session runs.
type Session struct {
	initialBalance       float64
	riskPercent          float64
	payoutPercent        float64
	stopLossPercent      float64
	maxConsecutiveLosses int

	currentBalance    float64
	trades            []Trade
	consecutiveWins   int
	consecutiveLosses int

	// Running extremes feed the drawdown stat. They only ever widen: Undo
	// does not shrink them back, so a drawdown reached by a losing streak
	// keeps counting even after the streak is undone. Known limitation,
	// kept so exported journals stay comparable across versions.
	maxBalance float64
	minBalance float64

	startTime time.Time
}

// New creates a session holding the full initial balance.
func New(cfg Config) *Session {
	return &Session{
		initialBalance:       cfg.InitialBalance,
		riskPercent:          cfg.RiskPercent,
		payoutPercent:        cfg.PayoutPercent,
		stopLossPercent:      cfg.StopLossPercent,
		maxConsecutiveLosses: cfg.MaxConsecutiveLosses,
		currentBalance:       cfg.InitialBalance,
		maxBalance:           cfg.InitialBalance,
		minBalance:           cfg.InitialBalance,
		startTime:            time.Now(),
	}
}

// CurrentRiskAmount is the exposure for the next trade: the current balance
// times the risk percent. Pure; Record re-reads it at call time.
func (s *Session) CurrentRiskAmount() float64 {
	return s.currentBalance * (s.riskPercent / 100)
}

// Record logs an outcome at the standard risk amount for the current
// balance and returns the created trade.
func (s *Session) Record(outcome Outcome, tradeType string) Trade {
	return s.apply(outcome, tradeType, s.CurrentRiskAmount())
}

// RecordRisk logs an outcome with an explicit risk amount in place of the
// percent-derived one.
func (s *Session) RecordRisk(outcome Outcome, tradeType string, risk float64) Trade {
	return s.apply(outcome, tradeType, risk)
}

func (s *Session) apply(outcome Outcome, tradeType string, risk float64) Trade {
	var payout float64
	switch outcome {
	case Win:
		payout = risk * (s.payoutPercent / 100)
		s.currentBalance += payout
		s.consecutiveWins++
		s.consecutiveLosses = 0
	case Loss:
		// The risk may exceed the balance; a negative balance is recorded,
		// not rejected. The stop-loss check catches it on the next cycle.
		s.currentBalance -= risk
		s.consecutiveLosses++
		s.consecutiveWins = 0
	case Push:
		// Balance and streak counters untouched.
	}

	if s.currentBalance > s.maxBalance {
		s.maxBalance = s.currentBalance
	}
	if s.currentBalance < s.minBalance {
		s.minBalance = s.currentBalance
	}

	t := Trade{
		ID:           id.New(),
		Time:         time.Now(),
		Type:         tradeType,
		Risk:         risk,
		Outcome:      outcome,
		Payout:       payout,
		BalanceAfter: s.currentBalance,
	}
	s.trades = append(s.trades, t)
	return t
}

// Undo removes the most recent trade, restoring the balance from the
// previous trade's snapshot (or the initial balance when the history
// empties). It reports false when there is nothing to unwind. The running
// max/min balance extremes are deliberately left alone.
func (s *Session) Undo() bool {
	if len(s.trades) == 0 {
		return false
	}
	s.trades = s.trades[:len(s.trades)-1]
	if n := len(s.trades); n > 0 {
		s.currentBalance = s.trades[n-1].BalanceAfter
	} else {
		s.currentBalance = s.initialBalance
	}
	s.recalcStreaks()
	return true
}

// recalcStreaks rebuilds the consecutive-win/loss counters by walking the
// history newest to oldest. The walk stops at the first outcome that breaks
// the run: a LOSS once wins have been counted, a WIN once losses have, or
// any PUSH. Streak state therefore depends only on what the history
// contains now, not on the mutation sequence that produced it. This must
// stay a rescan — an incremental decrement would not reproduce the PUSH
// cutoff.
func (s *Session) recalcStreaks() {
	s.consecutiveWins = 0
	s.consecutiveLosses = 0

	for i := len(s.trades) - 1; i >= 0; i-- {
		switch s.trades[i].Outcome {
		case Win:
			if s.consecutiveLosses > 0 {
				return
			}
			s.consecutiveWins++
		case Loss:
			if s.consecutiveWins > 0 {
				return
			}
			s.consecutiveLosses++
		case Push:
			return
		}
	}
}

// ShouldStop reports whether the session hit a stop condition and the
// reason to show the user. The drawdown stop takes precedence over the
// losing-streak stop when both hold. Pure; safe to call every cycle.
func (s *Session) ShouldStop() (bool, string) {
	drawdown := (s.initialBalance - s.currentBalance) / s.initialBalance * 100
	if drawdown >= s.stopLossPercent {
		return true, fmt.Sprintf("Stop-loss triggered: -%.1f%%", drawdown)
	}

	if s.consecutiveLosses >= s.maxConsecutiveLosses {
		return true, fmt.Sprintf("Max consecutive losses: %d", s.consecutiveLosses)
	}

	return false, ""
}

// Reset returns a fresh session that keeps the current initial balance and
// risk/payout percents but reverts the stop limits to the package defaults.
// Construction-time limit overrides do not carry over.
func (s *Session) Reset() *Session {
	return New(Config{
		InitialBalance:       s.initialBalance,
		RiskPercent:          s.riskPercent,
		PayoutPercent:        s.payoutPercent,
		StopLossPercent:      DefaultStopLossPercent,
		MaxConsecutiveLosses: DefaultMaxConsecutiveLosses,
	})
}

// SetRiskPercent adjusts the per-trade risk for subsequent trades.
func (s *Session) SetRiskPercent(v float64) { s.riskPercent = v }

// SetPayoutPercent adjusts the payout applied to subsequent WIN trades.
func (s *Session) SetPayoutPercent(v float64) { s.payoutPercent = v }

func (s *Session) InitialBalance() float64   { return s.initialBalance }
func (s *Session) CurrentBalance() float64   { return s.currentBalance }
func (s *Session) RiskPercent() float64      { return s.riskPercent }
func (s *Session) PayoutPercent() float64    { return s.payoutPercent }
func (s *Session) StopLossPercent() float64  { return s.stopLossPercent }
func (s *Session) MaxConsecutiveLosses() int { return s.maxConsecutiveLosses }
func (s *Session) ConsecutiveWins() int      { return s.consecutiveWins }
func (s *Session) ConsecutiveLosses() int    { return s.consecutiveLosses }
func (s *Session) StartTime() time.Time      { return s.startTime }

// Trades returns the history in chronological order. The slice is the
// session's backing store; callers must treat it as read-only.
func (s *Session) Trades() []Trade { return s.trades }
