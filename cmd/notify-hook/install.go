package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/notify-hook/pkg/git"
	"github.com/charmbracelet/notify-hook/pkg/hooks"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"
)

var installCmd = &cobra.Command{
	Use:   "install [REPOSITORY]",
	Short: "Install the post-receive hook in a repository",
	Long: `Install writes a post-receive hook running notify-hook into the hooks
directory of a repository. The repository defaults to $GIT_DIR or the current
directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		logger := log.FromContext(ctx)

		var repo *git.Repository
		var err error
		if len(args) > 0 {
			repo, err = git.Open(args[0])
		} else {
			repo, err = git.OpenFromEnv()
		}
		if err != nil {
			return err
		}

		force, _ := cmd.Flags().GetBool("force")
		debug, _ := cmd.Flags().GetBool("debug")
		executable, _ := cmd.Flags().GetString("executable")
		if executable == "" {
			executable, err = os.Executable()
			if err != nil {
				return fmt.Errorf("find executable: %w", err)
			}
		}
		executable = filepath.ToSlash(executable)

		hooksPath := repo.HooksPath()
		if err := os.MkdirAll(hooksPath, os.ModePerm); err != nil {
			return fmt.Errorf("create hooks directory: %w", err)
		}

		if err := hooks.GenerateHook(osfs.New(hooksPath), hooks.GenerateOptions{
			Executable: executable,
			Debug:      debug,
			Force:      force,
		}); err != nil {
			return err
		}

		logger.Info("installed hook", "path", filepath.Join(hooksPath, hooks.PostReceiveHook))
		fmt.Fprintln(cmd.OutOrStdout(), filepath.Join(hooksPath, hooks.PostReceiveHook))
		return nil
	},
}

func init() {
	installCmd.Flags().BoolP("force", "f", false, "overwrite an existing post-receive hook")
	installCmd.Flags().String("executable", "", "path of the notify-hook binary the hook runs")
}
