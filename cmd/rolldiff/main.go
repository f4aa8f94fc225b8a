package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/spf13/cobra"

	"github.com/rolldiff/rolldiff/pkg/logging"
	"github.com/rolldiff/rolldiff/pkg/rolldiff"
)

func rootMain(command *cobra.Command, arguments []string) {
	// Print version information, if requested.
	if rootConfiguration.version {
		fmt.Println(rolldiff.Version)
		return
	}

	// If no flags were set, then print help information and bail. We don't
	// have to worry about warning about arguments being present here (which
	// would be incorrect usage) because arguments can't even reach this point
	// (they will be mistaken for subcommands and an error will be displayed).
	command.Help()
}

func rootPreRun(_ *cobra.Command, _ []string) error {
	// Validate and apply the requested log level.
	level, ok := logging.NameToLevel(rootConfiguration.logLevel)
	if !ok {
		return errors.Errorf("unknown log level: %q", rootConfiguration.logLevel)
	}
	logging.SetLevel(level)
	return nil
}

var rootCommand = &cobra.Command{
	Use:               "rolldiff",
	Short:             "Rolldiff computes and applies chunk-based file deltas.",
	Run:               rootMain,
	PersistentPreRunE: rootPreRun,
}

var rootConfiguration struct {
	help     bool
	version  bool
	logLevel string
}

func init() {
	// Bind flags to configuration. We manually add help to override the
	// default message, but Cobra still implements it automatically.
	flags := rootCommand.Flags()
	flags.BoolVarP(&rootConfiguration.help, "help", "h", false, "Show help information")
	flags.BoolVarP(&rootConfiguration.version, "version", "V", false, "Show version information")

	// Bind the log level as a persistent flag so that it applies to all
	// subcommands.
	persistent := rootCommand.PersistentFlags()
	persistent.StringVar(&rootConfiguration.logLevel, "log-level", "info", "Set the log level (disabled|error|warn|info|debug)")

	// Disable Cobra's command sorting behavior. By default, it sorts commands
	// alphabetically in the help output.
	cobra.EnableCommandSorting = false

	// Register commands. We do this here (rather than in individual init
	// functions) so that we can control the order.
	rootCommand.AddCommand(
		signCommand,
		deltaCommand,
		patchCommand,
		versionCommand,
	)
}

func main() {
	// Execute the root command.
	if err := rootCommand.Execute(); err != nil {
		os.Exit(1)
	}
}
