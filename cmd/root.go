// Package cmd provides the root command and CLI setup for configready.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/przeslijmi/configready/internal/adapter"
	"github.com/przeslijmi/configready/internal/domain"
	m "github.com/przeslijmi/configready/internal/model"
)

var fsAdapter adapter.ConfigFSAdapter
var aggregator domain.Aggregator

// verboseFlag switches file logging to debug level when set.
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	fsAdapter = adapter.NewLocalConfigFSAdapter()
	aggregator = domain.NewAggregator(fsAdapter)
}

const rootLongDescription = `Configready surfaces the default configuration files that installed
packages ship (specimens) into the application's central config folder.

Each package may place a specimen at a fixed relative path inside its
vendor/<group>/<subpackage>/ directory; the application itself may place
one at the project root. Aggregation copies every discovered specimen
into the config folder under a deterministic name and regenerates an
includes manifest. Existing copies are never overwritten, so local edits
survive re-runs.`

const runLongDescription = `Aggregate specimens from the vendor tree (and the project root) into the
central config folder. An optional trigger file can be deleted after a
successful run so bootstrap scripts only fire once.`

const listLongDescription = `Discover specimens without copying anything. Prints the would-be target
name for every specimen found.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "configready",
		Short: "Aggregate package configuration specimens",
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
	cmd.PersistentFlags().String(vendorDirFlagName, viper.GetString(vendorDirConfigKey), "vendor directory holding group/subpackage trees")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(vendorDirFlagName), vendorDirConfigKey)

	cmd.PersistentFlags().StringP(configDirFlagName, "c", viper.GetString(configDirConfigKey), "destination directory for aggregated configuration")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(configDirFlagName), configDirConfigKey)

	cmd.PersistentFlags().String(extFlagName, viper.GetString(extConfigKey), "extension used for generated file names")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(extFlagName), extConfigKey)

	cmd.PersistentFlags().Bool(manifestFlagName, viper.GetBool(manifestConfigKey), "write the seed file and includes manifest")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(manifestFlagName), manifestConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
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
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// parseRoot resolves the optional positional scan root, defaulting to the
// current directory.
func parseRoot(args []string) m.Path {
	if len(args) == 0 {
		return m.Path(".")
	}

	return m.Path(args[0])
}

// layoutFromConfig builds the directory layout from the effective viper
// configuration (flags, env, config file, defaults).
func layoutFromConfig() m.Layout {
	specimenPaths := viper.GetStringSlice(specimenPathsConfigKey)

	paths := make([]m.Path, 0, len(specimenPaths))
	for _, p := range specimenPaths {
		paths = append(paths, m.Path(p))
	}

	return m.Layout{
		VendorDir:     m.Path(viper.GetString(vendorDirConfigKey)),
		ConfigDir:     m.Path(viper.GetString(configDirConfigKey)),
		SpecimenPaths: paths,
		Ext:           viper.GetString(extConfigKey),
		Manifest:      viper.GetBool(manifestConfigKey),
	}
}
