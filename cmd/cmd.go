// Package cmd holds helpers shared by the notify-hook commands.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/notify-hook/pkg/config"
	logx "github.com/charmbracelet/notify-hook/pkg/log"
	"github.com/spf13/cobra"
)

// logFileKey is the context key of the log file.
var logFileKey = struct{ string }{"logfile"}

// InitContext parses the process configuration and creates the logger. Both
// are stored in the command context. A "debug" flag set on the command line
// overrides the configuration.
func InitContext(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg := config.DefaultConfig()
	if err := cfg.Parse(); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	if f := cmd.Flags().Lookup("debug"); f != nil && f.Changed {
		cfg.Debug = f.Value.String() == "true"
	}

	logger, f, err := logx.NewLogger(cfg)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}

	ctx = config.WithContext(ctx, cfg)
	ctx = log.WithContext(ctx, logger)
	if f != nil {
		ctx = context.WithValue(ctx, logFileKey, f)
	}

	cmd.SetContext(ctx)

	return nil
}

// CloseContext closes the log file opened by InitContext, if any.
func CloseContext(cmd *cobra.Command, _ []string) error {
	if f, ok := cmd.Context().Value(logFileKey).(*os.File); ok {
		if err := f.Close(); err != nil {
			return fmt.Errorf("close log file: %w", err)
		}
	}

	return nil
}
