package cmd

import (
	"github.com/spf13/cobra"

	"github.com/przeslijmi/configready/internal/controller"
	m "github.com/przeslijmi/configready/internal/model"
)

var runDeleteCallerFlag string

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [root]",
		Short: "Aggregate specimens into the config folder",
		Long:  runLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := parseRoot(args)
			layout := layoutFromConfig()
			ui := controller.NewSimpleUI(cmd)

			report, err := aggregator.Run(root, layout)
			if err != nil {
				return err
			}

			// The trigger is only removed once the run has fully
			// succeeded; a failed run leaves it in place for a retry.
			if runDeleteCallerFlag != "" {
				if err := aggregator.DeleteCaller(m.Path(runDeleteCallerFlag)); err != nil {
					return err
				}
			}

			return ui.DisplayRunReport(report)
		},
	}

	configureRunFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func configureRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&runDeleteCallerFlag, deleteCallerFlagName, "", "trigger file to delete after a successful run")
}
