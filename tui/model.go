// Package tui renders the live session dashboard and drives the ledger from
// key input. Two input modes mirror a modal editor: NORMAL keys log trades
// and scroll the history, ":" opens a COMMAND buffer.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rustyeddy/binopt/session"
)

// tradeType labels every trade logged from the dashboard. The ledger treats
// it as informational only.
const tradeType = "CALL"

// stopPause is how long the stop banner stays on screen before the program
// exits on its own.
const stopPause = 3 * time.Second

type mode int

const (
	modeNormal mode = iota
	modeCommand
)

func (m mode) String() string {
	if m == modeCommand {
		return "COMMAND"
	}
	return "NORMAL"
}

// checkStopMsg asks the model to evaluate the ledger's stop conditions.
type checkStopMsg struct{}

// stopExpiredMsg fires after the stop banner has been shown for stopPause.
type stopExpiredMsg struct{}

// Model is the bubbletea model for one tracked session.
type Model struct {
	session *session.Session

	mode         mode
	commandInput string
	statusMsg    string
	scrollOffset int

	stopping   bool
	stopReason string

	width  int
	height int
}

// New returns a dashboard model for the given session.
func New(s *session.Session) Model {
	return Model{
		session:   s,
		mode:      modeNormal,
		statusMsg: "Session Active",
	}
}

// Session returns the ledger the dashboard currently drives. A reset command
// swaps in a fresh ledger, so callers must read this after Run, not hold the
// one they passed in.
func (m Model) Session() *session.Session { return m.session }

// StopReason reports why the session ended: a stop-condition message, or
// empty when the user quit.
func (m Model) StopReason() string { return m.stopReason }

func (m Model) Init() tea.Cmd {
	return func() tea.Msg { return checkStopMsg{} }
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case checkStopMsg:
		return m.checkStop()

	case stopExpiredMsg:
		return m, tea.Quit

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.stopping {
			// The session is over; the banner is showing. Swallow input
			// so a stray key cannot log a trade past the stop.
			return m, nil
		}
		switch m.mode {
		case modeNormal:
			return m.updateNormal(msg)
		case modeCommand:
			return m.updateCommand(msg)
		}
	}

	return m, nil
}

// checkStop evaluates the ledger's stop conditions. Stop state can only
// change when the ledger mutates, so it runs after every record and undo
// (and once at startup).
func (m Model) checkStop() (tea.Model, tea.Cmd) {
	stop, reason := m.session.ShouldStop()
	if !stop {
		return m, nil
	}
	m.stopping = true
	m.stopReason = reason
	m.statusMsg = "SESSION STOPPED: " + reason
	return m, tea.Tick(stopPause, func(time.Time) tea.Msg { return stopExpiredMsg{} })
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "w":
		m.session.Record(session.Win, tradeType)
		m.statusMsg = "WIN logged"
		return m.checkStop()

	case "l":
		m.session.Record(session.Loss, tradeType)
		m.statusMsg = "LOSS logged"
		return m.checkStop()

	case "p":
		m.session.Record(session.Push, tradeType)
		m.statusMsg = "PUSH logged"
		return m.checkStop()

	case "u":
		if m.session.Undo() {
			m.statusMsg = "Last trade undone"
		} else {
			m.statusMsg = "No trades to undo"
		}
		return m.checkStop()

	case "j":
		m.scrollOffset = max(0, m.scrollOffset-1)

	case "k":
		m.scrollOffset = min(len(m.session.Trades())-1, m.scrollOffset+1)

	case "g":
		m.scrollOffset = 0

	case "G":
		m.scrollOffset = len(m.session.Trades()) - 1

	case ":":
		m.mode = modeCommand
		m.commandInput = ""

	case "q":
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) updateCommand(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = modeNormal
		m.commandInput = ""

	case tea.KeyEnter:
		input := m.commandInput
		m.mode = modeNormal
		m.commandInput = ""
		return m.executeCommand(input)

	case tea.KeyBackspace:
		if len(m.commandInput) > 0 {
			m.commandInput = m.commandInput[:len(m.commandInput)-1]
		}

	default:
		if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
			m.commandInput += msg.String()
		}
	}

	return m, nil
}

// Run drives the dashboard until the user quits or a stop condition ends the
// session. It returns the final ledger (a reset swaps ledgers mid-run) and
// the stop reason, empty when the user quit on their own.
func Run(s *session.Session) (*session.Session, string, error) {
	p := tea.NewProgram(New(s), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return s, "", err
	}
	if m, ok := final.(Model); ok {
		return m.Session(), m.StopReason(), nil
	}
	return s, "", nil
}
