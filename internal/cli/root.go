// Package cli implements the rubik3d command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rubik3d/internal/history"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath  string
	verbose bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "rubik3d",
	Short: "Interactive 3D Rubik's Cube",
	Long: `rubik3d - An interactive 3D Rubik's Cube.

Turn layers by dragging faces with the mouse or with the keyboard,
scramble from the command line, and replay recorded sessions.`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.rubik3d/rubik3d.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// openDB opens the history database honoring the --db flag.
func openDB() (*history.DB, error) {
	if dbPath != "" {
		return history.Open(dbPath)
	}
	return history.OpenDefault()
}
