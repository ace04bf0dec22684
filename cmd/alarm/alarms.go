package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-alarm/internal/alarm"
)

var (
	flagTime      string
	flagLabel     string
	flagChallenge string
	flagShakes    int
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an alarm",
	Long: `Save a new alarm. It rings every day at the given time while the
alarm clock is running.

Examples:
  alarm add --time 07:00
  alarm add --time 06:30 --label "Gym" --challenge chase
  alarm add --time 08:15 --shakes 35`,
	Args: cobra.NoArgs,
	Run:  runAdd,
}

var alarmsCmd = &cobra.Command{
	Use:   "alarms",
	Short: "List saved alarms",
	Args:  cobra.NoArgs,
	Run:   runAlarms,
}

var toggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Enable or disable an alarm",
	Long: `Flip an alarm between on and off. The ID may be shortened to any
unique prefix, as shown by 'alarm alarms'.`,
	Args: cobra.ExactArgs(1),
	Run:  runToggle,
}

var rmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete an alarm",
	Long: `Delete an alarm. The ID may be shortened to any unique prefix, as
shown by 'alarm alarms'.`,
	Args: cobra.ExactArgs(1),
	Run:  runRm,
}

func init() {
	addCmd.Flags().StringVar(&flagTime, "time", "", "Time of day, HH:MM (24h)")
	addCmd.Flags().StringVar(&flagLabel, "label", alarm.DefaultLabel, "Alarm label")
	addCmd.Flags().StringVar(&flagChallenge, "challenge", string(alarm.ChallengeShake), "Challenge: shake or chase")
	addCmd.Flags().IntVar(&flagShakes, "shakes", alarm.DefaultShakeCount, "Shakes needed for the shake challenge (5-50)")
	//nolint:errcheck // The flag is defined above
	addCmd.MarkFlagRequired("time")
}

func runAdd(_ *cobra.Command, _ []string) {
	store, book := openBook()
	defer store.Close()

	a, err := book.Add(alarm.Draft{
		Time:       flagTime,
		Label:      flagLabel,
		Challenge:  flagChallenge,
		ShakeCount: flagShakes,
	})
	if err != nil {
		store.Close()
		fatalf("Error: %v", err)
	}
	fmt.Printf("Added alarm %s at %s: %s (%s)\n", a.ShortID(), a.Time, a.Label, a.Describe())
}

func runAlarms(_ *cobra.Command, _ []string) {
	store, book := openBook()
	defer store.Close()

	alarms := book.List()
	if len(alarms) == 0 {
		fmt.Println("No alarms yet.")
		fmt.Println()
		fmt.Println("Run 'alarm add --time 07:00' to add one.")
		return
	}

	maxLabel := len("Label")
	for _, a := range alarms {
		maxLabel = max(maxLabel, len(a.Label))
	}

	fmt.Printf("  %-8s  %-5s  %-*s  %-16s  %s\n", "ID", "Time", maxLabel, "Label", "Challenge", "State")
	fmt.Printf("  %-8s  %-5s  %-*s  %-16s  %s\n", "--", "----", maxLabel, "-----", "---------", "-----")
	for _, a := range alarms {
		state := "off"
		if a.Enabled {
			state = "on"
		}
		fmt.Printf("  %-8s  %-5s  %-*s  %-16s  %s\n", a.ShortID(), a.Time, maxLabel, a.Label, a.Describe(), state)
	}
}

func runToggle(_ *cobra.Command, args []string) {
	store, book := openBook()
	defer store.Close()

	a, err := book.Toggle(args[0])
	if err != nil {
		store.Close()
		fatalf("Error: %v", err)
	}
	state := "off"
	if a.Enabled {
		state = "on"
	}
	fmt.Printf("Alarm %s at %s is now %s\n", a.ShortID(), a.Time, state)
}

func runRm(_ *cobra.Command, args []string) {
	store, book := openBook()
	defer store.Close()

	a, err := book.Get(args[0])
	if err == nil {
		err = book.Delete(a.ID)
	}
	if err != nil {
		store.Close()
		fatalf("Error: %v", err)
	}
	fmt.Printf("Deleted alarm %s at %s\n", a.ShortID(), a.Time)
}
