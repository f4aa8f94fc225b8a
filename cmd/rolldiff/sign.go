package main

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/pkg/errors"

	"github.com/spf13/cobra"

	"github.com/rolldiff/rolldiff/cmd"
	"github.com/rolldiff/rolldiff/pkg/diff"
	"github.com/rolldiff/rolldiff/pkg/encoding"
	"github.com/rolldiff/rolldiff/pkg/logging"
)

// signLogger is the logger for the sign command.
var signLogger = logging.RootLogger.Sublogger("sign")

func signMain(command *cobra.Command, arguments []string) error {
	// Validate arguments.
	if len(arguments) != 1 {
		return errors.New("sign requires exactly one input file")
	}
	basePath := arguments[0]

	// Resolve the effective knobs.
	k, err := resolveKnobs(
		command.Flags(),
		signConfiguration.chunkSize,
		signConfiguration.algorithm,
		signConfiguration.output,
		defaultSignatureName,
	)
	if err != nil {
		return err
	}

	// Read the base file. A missing input fails here, before any work.
	base, err := readInputFile(basePath)
	if err != nil {
		return err
	}
	signLogger.Debugf("read %s (%s)", basePath, humanize.Bytes(uint64(len(base))))

	// Generate the signature table.
	signature, collisions, err := diff.NewSignature(base, k.chunkSize, k.algorithm)
	if err != nil {
		return errors.Wrap(err, "unable to generate signature")
	}

	// Collisions aren't errors, but the dropped chunks can degrade delta
	// quality, so surface them.
	if collisions > 0 {
		signLogger.Warnf("%d weak hash collision(s) while signing %s", collisions, basePath)
		cmd.Warning(fmt.Sprintf("%d weak hash collision(s) occurred while generating signatures", collisions))
	}

	// Save the table.
	if err := ensureParentDirectory(k.outputPath); err != nil {
		return err
	}
	if err := encoding.MarshalAndSaveJSON(k.outputPath, signature); err != nil {
		return errors.Wrap(err, "unable to save signature")
	}

	// Report.
	signLogger.Infof("signed %s into %d chunk(s) of %d byte(s) using %s", basePath, len(signature), k.chunkSize, k.algorithm)
	fmt.Printf("Signed %s (%s) into %d chunk(s)\n", basePath, humanize.Bytes(uint64(len(base))), len(signature))
	fmt.Printf("Signature written to %s\n", k.outputPath)

	// Success.
	return nil
}

var signCommand = &cobra.Command{
	Use:   "sign <file>",
	Short: "Generate the chunk signature table for a file",
	Run:   cmd.Mainify(signMain),
}

var signConfiguration struct {
	help      bool
	chunkSize uint8
	algorithm string
	output    string
}

func init() {
	// Bind flags to configuration. We manually add help to override the
	// default message, but Cobra still implements it automatically.
	flags := signCommand.Flags()
	flags.BoolVarP(&signConfiguration.help, "help", "h", false, "Show help information")
	flags.Uint8VarP(&signConfiguration.chunkSize, "chunk-size", "c", defaultChunkSize, "Chunk size in bytes")
	flags.StringVarP(&signConfiguration.algorithm, "algorithm", "a", defaultAlgorithmName, "Weak hash algorithm (adler|fletcher)")
	flags.StringVarP(&signConfiguration.output, "output", "o", "", "Output path (default \"data/output/signs.json\")")
}
