package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"rubik3d/internal/cube"
	"rubik3d/internal/game"
	"rubik3d/internal/history"
)

var (
	playScramble string
	playTurns    int
	playNoRecord bool
	playNotes    string
	playSize     float32
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the interactive cube window",
	Long: `Open the interactive cube window.

The session's moves are recorded to the database unless --no-record is
given. Pass --scramble to start from a notated scramble, or --turns to
start from a random one.`,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().StringVar(&playScramble, "scramble", "", "Apply a notated scramble before play (e.g. \"R U R' U'\")")
	playCmd.Flags().IntVar(&playTurns, "turns", 0, "Apply a random scramble of N turns before play")
	playCmd.Flags().BoolVar(&playNoRecord, "no-record", false, "Do not persist this session")
	playCmd.Flags().StringVar(&playNotes, "notes", "", "Notes to store with the session")
	playCmd.Flags().Float32Var(&playSize, "size", 1.0, "Edge length of one sub-cube")
}

func runPlay(cmd *cobra.Command, args []string) error {
	opts := []cube.Option{cube.WithUnitSize(playSize)}

	var (
		db       *history.DB
		sessions *history.SessionRepository
		session  string
	)
	if !playNoRecord {
		var err error
		db, err = openDB()
		if err != nil {
			return fmt.Errorf("failed to open history database: %w", err)
		}
		defer db.Close()

		sessions = history.NewSessionRepository(db)
		session, err = sessions.Create("", playNotes)
		if err != nil {
			return err
		}
		opts = append(opts, cube.WithRecorder(history.NewSessionRecorder(db, session)))
		if verbose {
			fmt.Printf("Recording session %s\n", session)
		}
	}

	c := cube.New(opts...)

	scramble, err := applyStartScramble(c)
	if err != nil {
		return err
	}
	if sessions != nil && scramble != "" {
		if err := sessions.SetScramble(session, scramble); err != nil {
			return err
		}
	}

	if err := game.New(c, game.DefaultConfig()).Run(); err != nil {
		return err
	}

	if sessions != nil {
		if err := sessions.End(session); err != nil {
			return err
		}
		fmt.Printf("Session %s: %d moves\n", session, len(c.Moves()))
	}
	return nil
}

// applyStartScramble applies the requested scramble instantly, before the
// window opens, and returns it in notation.
func applyStartScramble(c *cube.Cube) (string, error) {
	switch {
	case playScramble != "":
		moves, err := cube.ParseMoves(playScramble)
		if err != nil {
			return "", fmt.Errorf("invalid scramble: %w", err)
		}
		for _, m := range moves {
			c.ApplyMove(m, 0)
		}
		drain(c)
		return cube.FormatMoves(moves), nil

	case playTurns > 0:
		moves := c.Shuffle(playTurns)
		drain(c)
		return cube.FormatMoves(moves), nil
	}
	return "", nil
}

// drain steps the engine until all queued rotations have completed.
func drain(c *cube.Cube) {
	for c.Busy() {
		c.Update(1)
	}
}
