package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rebeccarafeek/ellehacks-eyespy/internal/config"
	"github.com/rebeccarafeek/ellehacks-eyespy/internal/core"
	"github.com/rebeccarafeek/ellehacks-eyespy/internal/games/eyespy"
	"github.com/rebeccarafeek/ellehacks-eyespy/internal/platform/tui"
	"github.com/rebeccarafeek/ellehacks-eyespy/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagTimer      bool
	flagDebugLog   string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play EyeSpy",
	Long: `Start playing EyeSpy. The mode defaults to "eyespy"; --timer switches
to "eyespy_timed", which adds a countdown to every level.

Controls:
  Enter/Space   - Start, or pick the card under the cursor
  Arrows/WASD   - Move the cursor
  1-9           - Pick a card by its slot number
  R             - Restart
  Esc/B         - Abandon the game, or leave from the title screen
  ?             - More keys
  Q/Ctrl+C      - Quit

Difficulty options:
  easy   - Longer memorize window and countdown
  normal - The configured timings
  hard   - Shorter memorize window and countdown
  fixed  - Level 1 timings for every level

Examples:
  eyespy play
  eyespy play --timer
  eyespy play eyespy_timed --difficulty easy
  eyespy play --config ./my-eyespy.yaml --debug-log ./eyespy.log`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	for _, cmd := range []*cobra.Command{playCmd, menuCmd} {
		cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
		cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
		cmd.Flags().StringVar(&flagDebugLog, "debug-log", "", "Write round debug logs to this file")
	}
	playCmd.Flags().BoolVar(&flagTimer, "timer", false, "Play with a countdown on every level")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "eyespy"
	if len(args) > 0 {
		gameID = args[0]
	}
	if flagTimer {
		gameID = "eyespy_timed"
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'eyespy list' to see available modes.")
		os.Exit(1)
	}

	closeLog, err := setupGame()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	if _, err := tui.Run(game, runtimeConfig()); err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// runtimeConfig builds the runtime config from the terminal size and global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// setupGame applies the game flags shared by play and menu. The returned
// function closes the debug log, if one was opened.
func setupGame() (func(), error) {
	preset, err := config.ParseDifficultyPreset(flagDifficulty)
	if err != nil {
		return nil, err
	}
	if _, err := config.LoadEyeSpy(flagConfig); err != nil {
		return nil, err
	}
	eyespy.SetConfigPath(flagConfig)
	eyespy.SetDifficultyPreset(preset)

	if flagDebugLog == "" {
		return func() {}, nil
	}

	f, err := os.OpenFile(flagDebugLog, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("cannot open debug log: %w", err)
	}
	eyespy.SetLogger(log.NewWithOptions(f, log.Options{
		Level:           log.DebugLevel,
		ReportTimestamp: true,
		Prefix:          "eyespy",
	}))

	return func() {
		eyespy.SetLogger(nil)
		f.Close()
	}, nil
}
