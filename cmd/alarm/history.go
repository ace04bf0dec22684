package main

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-alarm/internal/platform/tui"
	"github.com/vovakirdan/tui-alarm/internal/registry"
	"github.com/vovakirdan/tui-alarm/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryTUI   bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the dismissal log",
	Long: `Show how recent alarms ended: which challenge was played, how many
attempts it took and whether the alarm was dismissed or abandoned.

Examples:
  alarm history
  alarm history --limit 50
  alarm history --tui`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

var scoresCmd = &cobra.Command{
	Use:   "scores <challenge>",
	Short: "Show high scores for a challenge",
	Long: `Display the top 10 scores for the specified challenge.

Examples:
  alarm scores chase
  alarm scores shake`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Number of entries to show")
	historyCmd.Flags().BoolVar(&flagHistoryTUI, "tui", false, "Browse history and scores interactively")
}

func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatalf("Error opening database: %v", err)
	}
	return store
}

func runHistory(_ *cobra.Command, _ []string) {
	store := openStore()
	defer store.Close()

	if flagHistoryTUI {
		width, height := termSize()
		if err := tui.RunHistory(store, width, height); err != nil {
			store.Close()
			fatalf("Error: %v", err)
		}
		return
	}

	entries, err := store.RecentDismissals(flagHistoryLimit)
	if err != nil {
		store.Close()
		fatalf("Error retrieving history: %v", err)
	}

	if len(entries) == 0 {
		fmt.Println("No alarms dismissed yet.")
		return
	}

	fmt.Printf("  %-16s  %-20s  %-10s  %-9s  %5s  %s\n", "When", "Alarm", "Challenge", "Result", "Tries", "Took")
	fmt.Printf("  %-16s  %-20s  %-10s  %-9s  %5s  %s\n", "----", "-----", "---------", "------", "-----", "----")
	for _, d := range entries {
		fmt.Printf("  %-16s  %-20s  %-10s  %-9s  %5d  %s\n",
			d.CreatedAt.Local().Format("2006-01-02 15:04"),
			truncate(d.Label, 20),
			d.Challenge,
			d.Outcome,
			d.Attempts,
			d.Duration.Round(time.Second),
		)
	}

	stats, err := store.DismissalStats()
	if err != nil || len(stats) == 0 {
		return
	}
	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Println()
	for _, id := range ids {
		s := stats[id]
		fmt.Printf("%s: %d dismissed, %.1f attempts and %s on average\n",
			id, s.Dismissals, s.AvgAttempts, s.AvgDuration.Round(time.Second))
	}
}

func runScores(_ *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown challenge %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'alarm list' to see available challenges.")
		os.Exit(1)
	}

	c, err := registry.Create(gameID)
	if err != nil {
		fatalf("Error creating challenge: %v", err)
	}

	store := openStore()
	defer store.Close()

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		store.Close()
		fatalf("Error retrieving scores: %v", err)
	}

	fmt.Printf("High Scores - %s\n", c.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'alarm play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if high, err := store.HighScore(gameID); err == nil {
		fmt.Printf("Best: %d\n", high)
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "."
}
