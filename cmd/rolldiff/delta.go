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

// deltaLogger is the logger for the delta command.
var deltaLogger = logging.RootLogger.Sublogger("delta")

func deltaMain(command *cobra.Command, arguments []string) error {
	// Validate arguments.
	if len(arguments) != 2 {
		return errors.New("delta requires an old file and a new file")
	}
	basePath := arguments[0]
	targetPath := arguments[1]

	// Resolve the effective knobs.
	k, err := resolveKnobs(
		command.Flags(),
		deltaConfiguration.chunkSize,
		deltaConfiguration.algorithm,
		deltaConfiguration.output,
		defaultDeltaName,
	)
	if err != nil {
		return err
	}

	// Read both inputs. Missing inputs fail here, before any work.
	base, err := readInputFile(basePath)
	if err != nil {
		return err
	}
	target, err := readInputFile(targetPath)
	if err != nil {
		return err
	}

	// Generate the signature table for the base file in memory.
	signature, collisions, err := diff.NewSignature(base, k.chunkSize, k.algorithm)
	if err != nil {
		return errors.Wrap(err, "unable to generate signature")
	}
	if collisions > 0 {
		deltaLogger.Warnf("%d weak hash collision(s) while signing %s", collisions, basePath)
		cmd.Warning(fmt.Sprintf("%d weak hash collision(s) occurred while generating signatures", collisions))
	}

	// Generate the delta.
	delta, err := diff.Delta(target, k.chunkSize, k.algorithm, signature)
	if err != nil {
		return errors.Wrap(err, "unable to generate delta")
	}

	// Save the delta.
	if err := ensureParentDirectory(k.outputPath); err != nil {
		return err
	}
	if err := encoding.MarshalAndSaveJSON(k.outputPath, delta); err != nil {
		return errors.Wrap(err, "unable to save delta")
	}

	// Report how much of the target was covered by chunk matches.
	var matches int
	for _, operation := range delta {
		if operation.Kind == diff.OperationKindMatch {
			matches++
		}
	}
	matched := uint64(matches * k.chunkSize)
	deltaLogger.Infof("delta for %s against %s: %d operation(s), %d match(es)", targetPath, basePath, len(delta), matches)
	fmt.Printf("Delta contains %d operation(s) (%s of %s matched against existing chunks)\n",
		len(delta), humanize.Bytes(matched), humanize.Bytes(uint64(len(target))))
	fmt.Printf("Delta written to %s\n", k.outputPath)

	// Success.
	return nil
}

var deltaCommand = &cobra.Command{
	Use:   "delta <old-file> <new-file>",
	Short: "Generate the delta between an old file and a new file",
	Run:   cmd.Mainify(deltaMain),
}

var deltaConfiguration struct {
	help      bool
	chunkSize uint8
	algorithm string
	output    string
}

func init() {
	// Bind flags to configuration. We manually add help to override the
	// default message, but Cobra still implements it automatically.
	flags := deltaCommand.Flags()
	flags.BoolVarP(&deltaConfiguration.help, "help", "h", false, "Show help information")
	flags.Uint8VarP(&deltaConfiguration.chunkSize, "chunk-size", "c", defaultChunkSize, "Chunk size in bytes")
	flags.StringVarP(&deltaConfiguration.algorithm, "algorithm", "a", defaultAlgorithmName, "Weak hash algorithm (adler|fletcher)")
	flags.StringVarP(&deltaConfiguration.output, "output", "o", "", "Output path (default \"data/output/delta.json\")")
}
