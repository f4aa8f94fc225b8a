package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rolldiff/rolldiff/cmd"
	"github.com/rolldiff/rolldiff/pkg/rolldiff"
)

func versionMain(_ *cobra.Command, _ []string) error {
	fmt.Println(rolldiff.Version)
	return nil
}

var versionCommand = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Args:  cmd.DisallowArguments,
	Run:   cmd.Mainify(versionMain),
}

var versionConfiguration struct {
	help bool
}

func init() {
	// Bind flags to configuration. We manually add help to override the
	// default message, but Cobra still implements it automatically.
	flags := versionCommand.Flags()
	flags.BoolVarP(&versionConfiguration.help, "help", "h", false, "Show help information")
}
