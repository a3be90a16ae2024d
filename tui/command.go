package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

const helpText = "w=win l=loss p=push u=undo :q=quit :risk N :payout N"

// executeCommand runs one COMMAND-mode buffer. An empty buffer is silently
// ignored; everything else answers through the status message.
func (m Model) executeCommand(input string) (tea.Model, tea.Cmd) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return m, nil
	}

	verb := parts[0]
	switch verb {
	case "q", "quit", "wq":
		return m, tea.Quit

	case "w":
		// Persistence happens on exit, outside the dashboard.
		m.statusMsg = "Session saved on exit (when journaling is enabled)"

	case "reset":
		m.session = m.session.Reset()
		m.scrollOffset = 0
		m.statusMsg = "Session reset"

	case "risk":
		if len(parts) < 2 {
			// A bare "risk" is not a command, matching the unknown-verb path.
			m.statusMsg = "Unknown command: " + verb
			return m, nil
		}
		v, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			m.statusMsg = "Invalid risk value"
			return m, nil
		}
		m.session.SetRiskPercent(v)
		m.statusMsg = fmt.Sprintf("Risk set to %g%%", v)

	case "payout":
		if len(parts) < 2 {
			m.statusMsg = "Unknown command: " + verb
			return m, nil
		}
		v, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			m.statusMsg = "Invalid payout value"
			return m, nil
		}
		m.session.SetPayoutPercent(v)
		m.statusMsg = fmt.Sprintf("Payout set to %g%%", v)

	case "help":
		m.statusMsg = helpText

	default:
		m.statusMsg = "Unknown command: " + verb
	}

	return m, nil
}
