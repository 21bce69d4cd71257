package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"rubik3d/internal/cube"
)

var (
	scrambleTurns int
	scrambleSeed  int64
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Print a random scramble sequence",
	Long: `Print a random scramble sequence in standard notation.

Useful for scrambling a physical cube, or as input to play --scramble.`,
	RunE: runScramble,
}

func init() {
	rootCmd.AddCommand(scrambleCmd)
	scrambleCmd.Flags().IntVarP(&scrambleTurns, "turns", "n", cube.DefaultShuffleTurns, "Number of turns")
	scrambleCmd.Flags().Int64Var(&scrambleSeed, "seed", 0, "Random seed (0 = time based)")
}

func runScramble(cmd *cobra.Command, args []string) error {
	c := cube.New(
		cube.WithMoveHistory(false),
		cube.WithRandSeed(scrambleSeed),
	)
	moves := c.Shuffle(scrambleTurns)
	fmt.Println(cube.FormatMoves(moves))
	return nil
}
