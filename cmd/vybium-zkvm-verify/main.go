package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/ethereum/go-ethereum/log"
	"github.com/spf13/cobra"

	"github.com/vybium/vybium-zkvm-verifier/internal/vybium-zkvm-verifier/utils"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fatal(err.Error())
	}
}

func newRootCmd() *cobra.Command {
	cfg := utils.DefaultConfig()
	var envFile string

	root := &cobra.Command{
		Use:           "vybium-zkvm-verify",
		Short:         "Verify zkVM receipts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(cmd, cfg, envFile)
		},
	}

	root.PersistentFlags().StringVar(&envFile, "env", ".env", "Environment file with ZKVM_VERIFIER_* defaults")
	root.PersistentFlags().String("version", cfg.Version, "Circuit version (v1.0, v1.1, v1.2)")
	root.PersistentFlags().Int("verbosity", cfg.Verbosity, "Log level 0-5")
	root.PersistentFlags().Int("max-po2", cfg.MaxPo2, "Largest accepted segment po2")

	root.AddCommand(newVerifyCmd(cfg), newControlIDCmd(cfg), newParamsCmd(cfg))
	return root
}

// loadConfig layers defaults, the environment file and explicit flags, in
// increasing precedence
func loadConfig(cmd *cobra.Command, cfg *utils.Config, envFile string) error {
	if err := cfg.LoadEnv(envFile); err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("version") {
		v, _ := flags.GetString("version")
		cfg.WithVersion(v)
	}
	if flags.Changed("verbosity") {
		v, _ := flags.GetInt("verbosity")
		cfg.WithVerbosity(v)
	}
	if flags.Changed("max-po2") {
		v, _ := flags.GetInt("max-po2")
		cfg.WithMaxPo2(v)
	}
	if flags.Changed("hash") {
		v, _ := flags.GetString("hash")
		cfg.WithHashFunction(v)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	setupLogging(cfg.Verbosity)
	return nil
}

func setupLogging(verbosity int) {
	var lvl slog.Level
	switch {
	case verbosity <= 1:
		lvl = slog.LevelError
	case verbosity == 2:
		lvl = slog.LevelWarn
	case verbosity == 3:
		lvl = slog.LevelInfo
	case verbosity == 4:
		lvl = slog.LevelDebug
	default:
		lvl = log.LevelTrace
	}
	log.SetDefault(log.NewLogger(log.NewTerminalHandlerWithLevel(os.Stderr, lvl, true)))
}

func fatal(msg string) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", msg)
	os.Exit(1)
}
