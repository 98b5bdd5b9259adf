package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

const (
	hooksDir       = ".git/hooks"
	preCommitHook  = "pre-commit"
	hookMarker     = "gitgate"
	hookScriptBody = "#!/bin/sh\n# installed by gitgate\nexec gitgate check \"$@\"\n"
)

var installOverwriteFlag bool

// installCmd represents the install command.
var installCmd = newInstallCmd()

func newInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install the pre-commit hook into .git/hooks",
		Long: `Install writes an executable pre-commit hook that runs 'gitgate check'
before every commit. An existing hook not written by gitgate is left alone
unless --overwrite is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			hookPath := filepath.Join(hooksDir, preCommitHook)

			if err := checkExistingHook(hookPath); err != nil {
				return err
			}

			if err := os.MkdirAll(hooksDir, 0o750); err != nil {
				return fmt.Errorf("creating hooks directory: %w", err)
			}

			// #nosec G306 - the hook must be executable
			if err := os.WriteFile(hookPath, []byte(hookScriptBody), 0o755); err != nil {
				return fmt.Errorf("writing hook: %w", err)
			}

			cmd.Printf("installed %s\n", hookPath)

			return nil
		},
	}

	cmd.Flags().BoolVar(&installOverwriteFlag, overwriteFlagName, false, "replace an existing pre-commit hook")

	return cmd
}

func init() {
	rootCmd.AddCommand(installCmd)
}

// checkExistingHook refuses to clobber a hook gitgate did not write.
func checkExistingHook(hookPath string) error {
	if installOverwriteFlag {
		return nil
	}

	data, err := os.ReadFile(hookPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return fmt.Errorf("reading existing hook: %w", err)
	}

	if strings.Contains(string(data), hookMarker) {
		return nil
	}

	return fmt.Errorf("%s exists and was not written by gitgate; use --%s to replace it", hookPath, overwriteFlagName)
}
