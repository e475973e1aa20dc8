package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rebeccarafeek/ellehacks-eyespy/internal/config"
	"github.com/rebeccarafeek/ellehacks-eyespy/internal/games/eyespy"
	"github.com/rebeccarafeek/ellehacks-eyespy/internal/platform/tui"
	"github.com/rebeccarafeek/ellehacks-eyespy/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a mode and difficulty interactively",
	Long: `Start EyeSpy in interactive menu mode.

Pick a mode, then a difficulty. Backing out of a game from its title
screen returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Esc          - Back
  Q            - Quit

Examples:
  eyespy menu
  eyespy menu --difficulty hard
  eyespy menu --fps 30`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	closeLog, err := setupGame()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	cfg := runtimeConfig()
	preset, _ := config.ParseDifficultyPreset(flagDifficulty)

	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit || menuResult.GameID == "" {
			break
		}

		chosen, err := tui.RunDifficultySelector(menuResult.Title, preset, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		if chosen == nil {
			continue
		}
		preset = *chosen
		eyespy.SetDifficultyPreset(preset)

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		gameCfg := cfg
		if flagSeed == 0 {
			gameCfg.Seed = time.Now().UnixNano()
		}

		back, err := tui.Run(game, gameCfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			continue
		}
		if !back {
			break
		}
	}
}
