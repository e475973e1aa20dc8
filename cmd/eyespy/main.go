// eyespy is a terminal memory-matching puzzle: memorize nine cards, then find
// the three that share the level's colour and symbol.
//
// Usage:
//
//	eyespy list              - List available game modes
//	eyespy play [mode]       - Play a mode (default: eyespy)
//	eyespy menu              - Pick a mode and difficulty interactively
//	eyespy serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible decks
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/rebeccarafeek/ellehacks-eyespy/internal/games/eyespy"
)

var (
	// Global flags
	flagFPS  int
	flagSeed int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "eyespy",
	Short: "EyeSpy - a memory matching puzzle for your terminal",
	Long: `EyeSpy shows you nine cards for a few seconds, then turns them over.
Find the three cards that share the level's colour and symbol.

Available commands:
  list     - Show all game modes
  play     - Play a mode directly
  menu     - Interactive mode and difficulty picker
  serve    - Start SSH server for remote play

Examples:
  eyespy list
  eyespy play
  eyespy play eyespy_timed --difficulty hard
  eyespy menu
  eyespy serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
}
