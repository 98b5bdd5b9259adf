package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	m "gitgate.dev/pkg/gitgate/internal/model"
)

// reportCmd represents the report command.
var reportCmd = newReportCmd()

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show the report of the last gate run",
		Long:  "Show the outcomes and verdict persisted by the most recent 'gitgate check'.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reportPath := m.Path(viper.GetString(reportConfigKey))

			report, err := reportStore.Load(reportPath)
			if err != nil {
				if os.IsNotExist(err) {
					return fmt.Errorf("no run report at %s (run 'gitgate check' first)", reportPath)
				}

				return err
			}

			ui.DisplayReport(cmd.Context(), report)

			return nil
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(reportCmd)
}
