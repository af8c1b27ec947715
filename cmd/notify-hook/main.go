package main

import (
	"context"
	"os"
	"runtime/debug"

	"github.com/charmbracelet/notify-hook/cmd"
	"github.com/charmbracelet/notify-hook/pkg/version"
	"github.com/spf13/cobra"
)

var (
	// Version contains the application version number. It's set via ldflags
	// when building.
	Version = ""

	// CommitSHA contains the SHA of the commit that this application was built
	// against. It's set via ldflags when building.
	CommitSHA = ""

	rootCmd = &cobra.Command{
		Use:   "notify-hook",
		Short: "Post git pushes to webhooks",
		Long: `notify-hook is a git post-receive hook. It reads the pushed refs on
standard input and posts a push event for each of them to the hook URLs
configured in the repository git config.`,
		Example: `  git config hooks.notify.hook-urls https://ci.example.com/hooks/push
  git config hooks.notify.content-type json
  notify-hook install`,
		Args:               cobra.NoArgs,
		SilenceUsage:       true,
		PersistentPreRunE:  cmd.InitContext,
		PersistentPostRunE: cmd.CloseContext,
		RunE:               hookRunE,
	}
)

func init() {
	rootCmd.PersistentFlags().Bool("debug", false, "print payloads to stdout and enable debug logging")
	rootCmd.AddCommand(
		installCmd,
		manCmd,
	)

	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	if len(CommitSHA) >= 7 {
		vt := rootCmd.VersionTemplate()
		rootCmd.SetVersionTemplate(vt[:len(vt)-1] + " (" + CommitSHA[0:7] + ")\n")
	}
	if Version == "" {
		if info, ok := debug.ReadBuildInfo(); ok && info.Main.Sum != "" {
			Version = info.Main.Version
			version.Version = Version
		} else {
			Version = "unknown (built from source)"
		}
	} else {
		version.Version = Version
	}
	version.CommitSHA = CommitSHA
	rootCmd.Version = Version
}

func run() int {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		return 1
	}
	return 0
}

func main() {
	os.Exit(run())
}
