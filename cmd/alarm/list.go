package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-alarm/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all challenges",
	Long:  `Shows every challenge an alarm can use.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	challenges := registry.List()

	if len(challenges) == 0 {
		fmt.Println("No challenges available.")
		return
	}

	fmt.Println("Available challenges:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, c := range challenges {
		maxIDLen = max(maxIDLen, len(c.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, c := range challenges {
		fmt.Printf("  %-*s  %s\n", maxIDLen, c.ID, c.Title)
	}

	fmt.Println()
	fmt.Println("Run 'alarm play <id>' to practice a challenge.")
}
