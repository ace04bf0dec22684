package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-alarm/internal/config"
)

var flagConfigOut string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Write or show the configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config file",
	Long: `Write the default configuration to ~/.alarm/configs/alarm.yaml, or to
--out. An existing file is never overwritten.`,
	Args: cobra.NoArgs,
	Run:  runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	Run:   runConfigShow,
}

func init() {
	configInitCmd.Flags().StringVar(&flagConfigOut, "out", "", "Where to write the file")
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}

func runConfigInit(_ *cobra.Command, _ []string) {
	path := flagConfigOut
	if path == "" {
		path = config.UserConfigPath()
	}
	if path == "" {
		fatalf("Error: no home directory, pass --out")
	}
	if err := config.WriteDefault(path); err != nil {
		fatalf("Error: %v", err)
	}
	fmt.Printf("Wrote %s\n", path)
}

func runConfigShow(_ *cobra.Command, _ []string) {
	cfg := appConfig
	cfg.Storage.Path = flagDBPath

	out, err := yaml.Marshal(cfg)
	if err != nil {
		fatalf("Error: %v", err)
	}
	fmt.Print(string(out))
}
