package cmd

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gitgate.dev/pkg/gitgate/internal/domain"
	m "gitgate.dev/pkg/gitgate/internal/model"
)

// ErrChecksFailed signals that at least one checker rejected the staged
// changes. The verdict has already been printed when it is returned.
var ErrChecksFailed = errors.New("commit checks failed")

var checkForceFlag bool

// checkCmd represents the check command.
var checkCmd = newCheckCmd()

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run the commit gate against the staged changes",
		Long:  checkLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			passed, err := gate.Run(cmd.Context(), domain.RunArgs{
				Force:      viper.GetBool(forceConfigKey),
				ReportPath: m.Path(viper.GetString(reportConfigKey)),
			})
			if err != nil {
				return err
			}

			if !passed {
				return ErrChecksFailed
			}

			return nil
		},
	}

	configureCheckFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func configureCheckFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&checkForceFlag, forceFlagName, "f", viper.GetBool(forceConfigKey), "check the entire tracked tree even with no staged changes")
	bindFlagToConfig(cmd.Flags().Lookup(forceFlagName), forceConfigKey)
}
