package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rebeccarafeek/ellehacks-eyespy/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all game modes",
	Long:  `Shows a list of all registered game modes.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available modes:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	fmt.Println()
	fmt.Println("Run 'eyespy play <id>' to play a mode.")
}
