package session

import "fmt"

// Outcome is the result of a single binary-options trade. The set is closed:
// every switch over an Outcome in this package handles all three values, so
// adding a variant forces a review of each consumer.
type Outcome int

const (
	Win Outcome = iota
	Loss
	Push
)

func (o Outcome) String() string {
	switch o {
	case Win:
		return "WIN"
	case Loss:
		return "LOSS"
	case Push:
		return "PUSH"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}
