package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/przeslijmi/configready/internal/controller"
)

var listFormatFlag string

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [root]",
		Short: "List discoverable specimens without copying",
		Long:  listLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := parseRoot(args)
			layout := layoutFromConfig()

			specimens, err := aggregator.Discover(root, layout)
			if err != nil {
				return err
			}

			switch listFormatFlag {
			case "table":
				return controller.NewSimpleUI(cmd).DisplaySpecimens(specimens)
			case "yaml":
				out, err := yaml.Marshal(specimens)
				if err != nil {
					return fmt.Errorf("marshal specimens: %w", err)
				}

				cmd.Print(string(out))

				return nil
			default:
				return fmt.Errorf("unknown format %q (expected table or yaml)", listFormatFlag)
			}
		},
	}

	cmd.Flags().StringVarP(&listFormatFlag, formatFlagName, "f", "table", "output format: table or yaml")

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
