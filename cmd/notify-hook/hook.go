package main

import (
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/notify-hook/pkg/config"
	"github.com/charmbracelet/notify-hook/pkg/git"
	"github.com/charmbracelet/notify-hook/pkg/hooks"
	"github.com/charmbracelet/notify-hook/pkg/webhook"
	"github.com/spf13/cobra"
)

// hookRunE runs the post-receive hook. The repository configuration is read
// before any input so a misconfigured repository fails the push right away.
func hookRunE(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg := config.FromContext(ctx)
	logger := log.FromContext(ctx)

	repo, err := git.OpenFromEnv()
	if err != nil {
		return err
	}

	rcfg, err := config.LoadRepoConfig(repo)
	if err != nil {
		return err
	}

	httpClient, err := webhook.NewHTTPClient(cfg.HTTP.CAFile, cfg.HTTP.TimeoutDuration())
	if err != nil {
		return err
	}

	logger = logger.With("repo", rcfg.Repository.Name)
	p := &hooks.PostReceive{
		Repo:   repo,
		Config: rcfg,
		Client: webhook.NewClient(httpClient, logger),
		Logger: logger,
	}
	if cfg.Debug {
		p.Debug = cmd.OutOrStdout()
	}

	return p.Run(ctx, cmd.InOrStdin())
}
