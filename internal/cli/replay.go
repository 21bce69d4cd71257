package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"rubik3d/internal/cube"
	"rubik3d/internal/history"
)

var (
	replaySpeed float64
	replayStep  bool
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

var replayCmd = &cobra.Command{
	Use:   "replay <session-id>",
	Short: "Replay a recorded session in the terminal",
	Long: `Replay a recorded session move by move in the terminal.

Usage:
  rubik3d replay <session-id>              # Replay at recorded pace
  rubik3d replay <session-id> --speed 2.0  # Replay at 2x speed
  rubik3d replay <session-id> --step       # Step through moves manually`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().Float64VarP(&replaySpeed, "speed", "s", 1.0, "Playback speed multiplier")
	replayCmd.Flags().BoolVarP(&replayStep, "step", "t", false, "Step through moves manually")
}

func runReplay(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	session, err := history.NewSessionRepository(db).Get(args[0])
	if err != nil {
		return err
	}
	if session == nil {
		return fmt.Errorf("session %s not found", args[0])
	}

	records, err := history.NewMoveRepository(db).GetBySession(session.SessionID)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("Session has no moves.")
		return nil
	}

	model := newReplayModel(session, history.ToMoves(records), replaySpeed, replayStep)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("replay error: %w", err)
	}
	return nil
}

type replayMoveMsg struct{ index int }

type replayModel struct {
	session  *history.Session
	moves    []cube.Move
	index    int
	speed    float64
	stepMode bool
	paused   bool
	quitting bool
}

func newReplayModel(session *history.Session, moves []cube.Move, speed float64, stepMode bool) *replayModel {
	return &replayModel{
		session:  session,
		moves:    moves,
		speed:    speed,
		stepMode: stepMode,
		paused:   stepMode, // Start paused in step mode
	}
}

func (m *replayModel) Init() tea.Cmd {
	if m.stepMode {
		return nil // Wait for user input in step mode
	}
	return m.scheduleNextMove()
}

// scheduleNextMove waits out the recorded gap to the next move, scaled by
// the playback speed. Moves without usable timestamps fall back to a
// half-second cadence.
func (m *replayModel) scheduleNextMove() tea.Cmd {
	if m.index >= len(m.moves) {
		return nil
	}

	delay := 500 * time.Millisecond
	if m.index > 0 {
		gap := m.moves[m.index].Time.Sub(m.moves[m.index-1].Time)
		if gap > 0 {
			delay = gap
		}
	}
	delay = time.Duration(float64(delay) / m.speed)

	next := m.index
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return replayMoveMsg{index: next}
	})
}

func (m *replayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case " ", "n":
			if m.stepMode || m.paused {
				if m.index < len(m.moves) {
					m.index++
				}
			} else {
				m.paused = true
			}

		case "p":
			m.paused = !m.paused
			if !m.paused && !m.stepMode {
				return m, m.scheduleNextMove()
			}

		case "r":
			m.index = 0
			if !m.stepMode && !m.paused {
				return m, m.scheduleNextMove()
			}

		case "+", "=":
			m.speed *= 2
			if m.speed > 16 {
				m.speed = 16
			}

		case "-":
			m.speed /= 2
			if m.speed < 0.25 {
				m.speed = 0.25
			}
		}

	case replayMoveMsg:
		if !m.paused && msg.index == m.index {
			m.index++
			return m, m.scheduleNextMove()
		}
	}

	return m, nil
}

func (m *replayModel) View() string {
	if m.quitting {
		return "Replay ended.\n"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("rubik3d Session Replay"))
	b.WriteString("\n\n")

	progress := fmt.Sprintf("Move %d/%d", m.index, len(m.moves))
	if m.paused {
		progress += " [PAUSED]"
	}
	if m.stepMode {
		progress += " [STEP MODE]"
	}
	b.WriteString(statusStyle.Render(progress))
	b.WriteString(fmt.Sprintf(" (%.1fx speed)\n", m.speed))

	b.WriteString(statusStyle.Render(fmt.Sprintf("Session %s, started %s",
		m.session.SessionID, m.session.StartedAt.Local().Format("2006-01-02 15:04"))))
	b.WriteString("\n\n")

	// Played moves, windowed to the last 20.
	if m.index > 0 {
		b.WriteString("Moves: ")
		start := 0
		if m.index > 20 {
			start = m.index - 20
			b.WriteString("... ")
		}
		var notations []string
		for i := start; i < m.index; i++ {
			notations = append(notations, m.moves[i].Notation())
		}
		b.WriteString(moveStyle.Render(strings.Join(notations, " ")))
		b.WriteString("\n")
	}

	if m.index >= len(m.moves) {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render("End of session."))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	help := "SPACE/n=next  p=pause  r=reset  +/-=speed  q=quit"
	if m.stepMode {
		help = "SPACE/n=next move  r=reset  q=quit"
	}
	b.WriteString(helpStyle.Render(help))
	b.WriteString("\n")

	return b.String()
}
