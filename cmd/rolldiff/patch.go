package main

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/pkg/errors"

	"github.com/spf13/cobra"

	"github.com/rolldiff/rolldiff/cmd"
	"github.com/rolldiff/rolldiff/pkg/diff"
	"github.com/rolldiff/rolldiff/pkg/encoding"
	"github.com/rolldiff/rolldiff/pkg/filesystem"
	"github.com/rolldiff/rolldiff/pkg/logging"
)

// patchLogger is the logger for the patch command.
var patchLogger = logging.RootLogger.Sublogger("patch")

func patchMain(command *cobra.Command, arguments []string) error {
	// Validate arguments.
	if len(arguments) != 2 {
		return errors.New("patch requires an old file and a delta file")
	}
	basePath := arguments[0]
	deltaPath := arguments[1]

	// Resolve the effective knobs.
	k, err := resolveKnobs(
		command.Flags(),
		patchConfiguration.chunkSize,
		patchConfiguration.algorithm,
		patchConfiguration.output,
		defaultPatchName,
	)
	if err != nil {
		return err
	}

	// Read the base file. A missing input fails here, before any work.
	base, err := readInputFile(basePath)
	if err != nil {
		return err
	}

	// Rebuild the signature table from the base file. The delta's match
	// operations resolve against this table, so it has to be built with the
	// same chunk size and algorithm that produced the delta.
	signature, collisions, err := diff.NewSignature(base, k.chunkSize, k.algorithm)
	if err != nil {
		return errors.Wrap(err, "unable to generate signature")
	}
	if collisions > 0 {
		patchLogger.Warnf("%d weak hash collision(s) while signing %s", collisions, basePath)
		cmd.Warning(fmt.Sprintf("%d weak hash collision(s) occurred while generating signatures", collisions))
	}

	// Load the delta.
	var delta []diff.Operation
	if err := encoding.LoadAndUnmarshalJSON(deltaPath, &delta); err != nil {
		return errors.Wrap(err, "unable to load delta")
	}

	// Apply the delta.
	result, err := diff.Patch(delta, signature)
	if err != nil {
		return errors.Wrap(err, "unable to apply delta")
	}

	// Write the reconstructed file.
	if err := ensureParentDirectory(k.outputPath); err != nil {
		return err
	}
	if err := filesystem.WriteFileAtomic(k.outputPath, result, 0644); err != nil {
		return errors.Wrap(err, "unable to write reconstructed file")
	}

	// Report.
	patchLogger.Infof("patched %s with %d operation(s) from %s", basePath, len(delta), deltaPath)
	fmt.Printf("Reconstructed %s written to %s\n", humanize.Bytes(uint64(len(result))), k.outputPath)

	// Success.
	return nil
}

var patchCommand = &cobra.Command{
	Use:   "patch <old-file> <delta-file>",
	Short: "Reconstruct a file by applying a delta against an old file",
	Run:   cmd.Mainify(patchMain),
}

var patchConfiguration struct {
	help      bool
	chunkSize uint8
	algorithm string
	output    string
}

func init() {
	// Bind flags to configuration. We manually add help to override the
	// default message, but Cobra still implements it automatically.
	flags := patchCommand.Flags()
	flags.BoolVarP(&patchConfiguration.help, "help", "h", false, "Show help information")
	flags.Uint8VarP(&patchConfiguration.chunkSize, "chunk-size", "c", defaultChunkSize, "Chunk size in bytes")
	flags.StringVarP(&patchConfiguration.algorithm, "algorithm", "a", defaultAlgorithmName, "Weak hash algorithm (adler|fletcher)")
	flags.StringVarP(&patchConfiguration.output, "output", "o", "", "Output path (default \"data/output/patch.json\")")
}
