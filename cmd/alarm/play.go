package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-alarm/internal/alarm"
	"github.com/vovakirdan/tui-alarm/internal/config"
	"github.com/vovakirdan/tui-alarm/internal/core"
	"github.com/vovakirdan/tui-alarm/internal/games/shake"
	"github.com/vovakirdan/tui-alarm/internal/platform/tui"
	"github.com/vovakirdan/tui-alarm/internal/registry"
	"github.com/vovakirdan/tui-alarm/internal/storage"
)

var (
	flagDifficulty string
	flagTarget     int
	flagMotion     string
)

var playCmd = &cobra.Command{
	Use:   "play <challenge>",
	Short: "Practice a challenge",
	Long: `Play a challenge without an alarm ringing.

Controls:
  Arrows/WASD  - Move (chase)
  Space/Enter  - Count a shake (shake)
  P            - Pause
  R            - Retry after a loss
  Esc          - Leave
  Q/Ctrl+C     - Quit

Difficulty options (chase):
  easy    - Slow pursuers
  normal  - Default pursuer speed
  hard    - Fast pursuers
  fixed   - Turn off speed progression from the config

A motion track replays accelerometer samples into the shake challenge.
Each line is "offset_ms,x,y,z"; lines starting with # are ignored.

Examples:
  alarm play chase
  alarm play chase --difficulty hard
  alarm play shake --target 10
  alarm play shake --motion ./walk.csv`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().IntVar(&flagTarget, "target", 0, "Shakes needed (5-50)")
	playCmd.Flags().StringVar(&flagMotion, "motion", "", "Accelerometer track CSV to replay")
}

func runPlay(_ *cobra.Command, args []string) {
	kind, err := alarm.ParseChallenge(args[0])
	if err != nil || !registry.Exists(string(kind)) {
		fmt.Fprintf(os.Stderr, "Error: unknown challenge %q\n", args[0])
		fmt.Fprintln(os.Stderr, "Run 'alarm list' to see available challenges.")
		os.Exit(1)
	}

	if flagDifficulty != "" {
		preset := config.ParsePreset(flagDifficulty)
		if preset == "" {
			fatalf("Error: unknown difficulty %q", flagDifficulty)
		}
		config.ApplyChasePreset(&appConfig.Chase, preset)
		applySettings(appConfig)
	}

	c, err := registry.Create(string(kind))
	if err != nil {
		fatalf("Error creating challenge: %v", err)
	}
	if flagTarget > 0 {
		if g, ok := c.(*shake.Game); ok {
			g.UseTarget(flagTarget)
		}
	}

	var motion []shake.TrackPoint
	if flagMotion != "" {
		if motion, err = readMotion(flagMotion); err != nil {
			fatalf("Error reading motion track: %v", err)
		}
	}

	// Scores are best-effort while practicing
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: scores will not be saved: %v\n", err)
		store = nil
	} else {
		defer store.Close()
	}

	width, height := termSize()
	cfg := core.RuntimeConfig{ScreenW: width, ScreenH: height}

	res, err := tui.RunChallenge(c, cfg, tui.ChallengeOptions{
		DismissDelay: dismissDelays(appConfig)[c.ID()],
		Practice:     true,
		Store:        store,
	}, motion)
	if err != nil {
		if store != nil {
			store.Close()
		}
		fatalf("Error: %v", err)
	}

	if res.Completed {
		fmt.Printf("%s complete: score %d, %d attempt(s), %s\n",
			c.Title(), res.Score, res.Attempts, res.Duration.Round(time.Second))
	}
}

func readMotion(path string) ([]shake.TrackPoint, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return shake.ReadTrack(f)
}
