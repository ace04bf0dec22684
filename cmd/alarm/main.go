// alarm is a terminal alarm clock. A ringing alarm is only silenced by
// completing a challenge: shaking the device enough times or clearing a
// maze before the pursuers catch you.
//
// Usage:
//
//	alarm                     - Run the alarm clock
//	alarm add --time 07:00    - Add an alarm
//	alarm alarms              - List saved alarms
//	alarm play <challenge>    - Practice a challenge
//	alarm history             - Show how alarms were dismissed
//	alarm serve               - Serve the alarm clock over SSH
//
// Global flags:
//
//	--config <path>  - Config file (default: ~/.alarm/configs/alarm.yaml)
//	--db <path>      - Database path (default: from config, ~/.alarm/alarm.db)
//	--log <path>     - Append log lines to a file
//	--debug          - Log at debug level
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-alarm/internal/alarm"
	"github.com/vovakirdan/tui-alarm/internal/config"
	"github.com/vovakirdan/tui-alarm/internal/games/chase"
	"github.com/vovakirdan/tui-alarm/internal/games/shake"
	"github.com/vovakirdan/tui-alarm/internal/storage"
)

var (
	// Global flags
	flagConfigPath string
	flagDBPath     string
	flagLogPath    string
	flagDebug      bool

	// appConfig is loaded before any command runs.
	appConfig config.Config
	env       config.Env
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "alarm",
	Short: "Alarm clock you have to beat to silence",
	Long: `A terminal alarm clock. When an alarm rings it can only be dismissed
by completing its challenge:

  shake  - shake the device (or tap space) a set number of times
  chase  - collect every dot in a maze before the pursuers catch you

Running without a command starts the alarm clock.

Available commands:
  run      - Run the alarm clock (default)
  add      - Add an alarm
  alarms   - List saved alarms
  toggle   - Enable or disable an alarm
  rm       - Delete an alarm
  list     - Show all challenges
  play     - Practice a challenge
  history  - Show the dismissal log
  scores   - View challenge high scores
  serve    - Serve the alarm clock over SSH
  config   - Write or show the configuration

Examples:
  alarm add --time 06:30 --challenge chase
  alarm
  alarm play shake --target 10
  alarm serve --ssh :2222`,
	PersistentPreRun: loadSettings,
	Run:              runApp,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to alarm database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Append logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(alarmsCmd)
	rootCmd.AddCommand(toggleCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadSettings reads .env, the config file and applies challenge tuning.
// Flags set on the command line win over the environment.
func loadSettings(cmd *cobra.Command, _ []string) {
	var err error
	env, err = config.LoadEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: cannot read .env: %v\n", err)
	}
	if !cmd.Flags().Changed("config") && env.ConfigPath != "" {
		flagConfigPath = env.ConfigPath
	}
	if !cmd.Flags().Changed("db") && env.DBPath != "" {
		flagDBPath = env.DBPath
	}

	appConfig, err = config.Load(flagConfigPath)
	if err != nil {
		fatalf("Error loading config: %v", err)
	}
	if flagDBPath == "" {
		flagDBPath = appConfig.Storage.Path
	}
	applySettings(appConfig)
}

// applySettings pushes the config into the challenge packages.
func applySettings(cfg config.Config) {
	chase.SetSettings(chase.Settings{
		PursuerInterval: cfg.Chase.PursuerInterval,
		Quota:           cfg.Chase.Quota,
		Points:          cfg.Chase.Points,
		Difficulty:      cfg.Chase.Difficulty,
	})
	shake.SetSettings(shake.Settings{
		Target:    cfg.Shake.Target,
		Threshold: cfg.Shake.Threshold,
		Debounce:  cfg.Shake.Debounce,
		Flash:     cfg.Shake.Flash,
	})
}

// dismissDelays maps challenge IDs to their win-screen delay.
func dismissDelays(cfg config.Config) map[string]time.Duration {
	return map[string]time.Duration{
		"chase": cfg.Chase.DismissDelay,
		"shake": cfg.Shake.DismissDelay,
	}
}

// newLogger returns a logger writing to --log, or w when no file is set.
// The returned close function is always safe to call.
func newLogger(w io.Writer, prefix string) (*log.Logger, func()) {
	closeFn := func() {}
	if flagLogPath != "" {
		path, err := storage.ExpandPath(flagLogPath)
		if err != nil {
			fatalf("Error resolving log path: %v", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fatalf("Error opening log file: %v", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn
}

// openBook opens the database and loads the saved alarms.
func openBook() (*storage.Store, *alarm.Book) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatalf("Error opening database: %v", err)
	}
	book := alarm.NewBook(store)
	if err := book.Load(); err != nil {
		store.Close()
		fatalf("Error loading alarms: %v", err)
	}
	return store, book
}

// termSize returns the terminal size, or 80x24 when stdout is not a terminal.
func termSize() (int, int) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return width, height
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
