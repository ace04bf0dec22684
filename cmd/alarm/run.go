package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-alarm/internal/platform/tui"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the alarm clock",
	Long: `Show the alarm list and ring alarms when they are due.

Controls:
  a          - Add an alarm
  space/t    - Enable or disable the selected alarm
  x          - Delete the selected alarm
  enter      - Ring the selected alarm now (esc to stop)
  tab        - Dismissal history
  q/Ctrl+C   - Quit

While an alarm rings, complete its challenge to dismiss it.
Quitting instead is recorded as abandoned.`,
	Run: runApp,
}

func runApp(_ *cobra.Command, _ []string) {
	store, book := openBook()
	defer store.Close()

	// The TUI owns the terminal; logs only go to --log.
	logger, closeLog := newLogger(io.Discard, "alarm")
	defer closeLog()
	logger.Debug("starting", "db", flagDBPath, "alarms", book.Len())

	width, height := termSize()
	err := tui.RunApp(tui.AppOptions{
		Book:          book,
		Store:         store,
		Logger:        logger,
		ClockInterval: appConfig.Clock.PollInterval,
		DismissDelays: dismissDelays(appConfig),
		Width:         width,
		Height:        height,
	})
	if err != nil {
		closeLog()
		store.Close()
		fatalf("Error: %v", err)
	}
}
