package main

import (
	"fmt"

	mcobra "github.com/muesli/mango-cobra"
	"github.com/muesli/roff"
	"github.com/spf13/cobra"
)

var manCmd = &cobra.Command{
	Use:    "man",
	Short:  "Generate man pages",
	Args:   cobra.NoArgs,
	Hidden: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		manPage, err := mcobra.NewManPage(1, rootCmd) //.
		if err != nil {
			return err
		}

		manPage = manPage.WithSection("Configuration", configSection)
		fmt.Fprintln(cmd.OutOrStdout(), manPage.Build(roff.NewDocument()))
		return nil
	},
}

const configSection = `notify-hook reads its repository settings from the git config:
hooks.notify.hook-urls (comma separated hook URLs),
hooks.notify.content-type ("urlencoded" or "json"),
hooks.notify.secret-token (hex encoded HMAC key),
hooks.notify.repo-name, hooks.notify.repo-description,
hooks.notify.repo-owner-name, hooks.notify.repo-owner-email,
and hooks.notify.detect-renames.
Process settings come from NOTIFY_HOOK_* environment variables.`
