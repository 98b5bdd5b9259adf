// Package cmd provides the root command and CLI setup for gitgate.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"gitgate.dev/pkg/gitgate/internal/adapter"
	"gitgate.dev/pkg/gitgate/internal/controller"
	"gitgate.dev/pkg/gitgate/internal/domain"
)

var gitAdapter adapter.GitAdapter
var fsAdapter adapter.WorkspaceFS
var toolRunner adapter.ToolRunner
var reportStore adapter.ReportStore
var gate domain.Gate
var ui controller.UI

// verboseFlag raises the log level to debug when set.
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewSimpleUI(rootCmd, controller.IsTTY(os.Stdout))
	gitAdapter = adapter.NewLocalGitAdapter()
	fsAdapter = adapter.NewLocalWorkspaceFS()
	toolRunner = adapter.NewLocalToolRunner()
	reportStore = adapter.NewYAMLReportStore()
	gate = domain.NewGate(gitAdapter, fsAdapter, toolRunner, reportStore, ui)
}

const rootLongDescription = `gitgate is a pre-commit quality gate. Before a commit is accepted it
snapshots the staged tree into an isolated directory, classifies the changed
files, runs the style, lint and script checkers against that snapshot and
aggregates their verdicts into a single accept/reject decision.

Checkers never see the working tree: they check exactly what will be
committed, including staged edits not yet in the working copy.`

const checkLongDescription = `Run the commit gate against the staged changes.

Exits 0 when every checker passes (or nothing relevant changed) and 1 when
any checker fails. Each failing checker prints a remediation block with the
exact command to reproduce the failure against the real tree.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gitgate",
		Short: "Pre-commit quality gate for staged changes",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger("", verboseFlag || viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringP(reportFlagName, "r", viper.GetString(reportConfigKey), "path for the run report written after each check")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(reportFlagName), reportConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	err := rootCmd.Execute()
	if err != nil {
		// A failed check already printed its verdict; only infrastructure
		// errors need reporting here.
		if !errors.Is(err, ErrChecksFailed) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}

		os.Exit(1)
	}
}
