package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-alarm/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the alarm clock over SSH",
	Long: `Start an SSH server that runs the alarm clock for every connection.

All sessions share the same alarms and history. An alarm rings in the
first session whose clock reaches it.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.alarm/host_key

Examples:
  alarm serve                           # Listen on the configured address
  alarm serve --ssh :2222               # Listen on port 2222
  alarm serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23235`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (default from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout before disconnecting (default from config)")
}

func runServe(cmd *cobra.Command, _ []string) {
	cfg := tui.SSHServerConfig{
		Address:       appConfig.Server.Address,
		HostKeyPath:   appConfig.Server.HostKey,
		IdleTimeout:   appConfig.Server.IdleTimeout,
		ClockInterval: appConfig.Clock.PollInterval,
		DismissDelays: dismissDelays(appConfig),
	}
	if env.SSHAddr != "" {
		cfg.Address = env.SSHAddr
	}
	if cmd.Flags().Changed("ssh") {
		cfg.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		cfg.IdleTimeout = flagIdleTimeout
	}

	store, book := openBook()
	defer store.Close()

	logger, closeLog := newLogger(os.Stderr, "alarm-ssh")
	defer closeLog()

	server, err := tui.NewSSHServer(cfg, book, store, logger)
	if err != nil {
		closeLog()
		store.Close()
		fatalf("Error creating server: %v", err)
	}

	fmt.Printf("Starting alarm SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		closeLog()
		store.Close()
		fatalf("Server error: %v", err)
	}
}
