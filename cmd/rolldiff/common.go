package main

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/spf13/pflag"

	"github.com/rolldiff/rolldiff/pkg/configuration"
	"github.com/rolldiff/rolldiff/pkg/rolling"
)

const (
	// defaultChunkSize is the chunk size used when neither a flag nor a
	// configuration file specifies one.
	defaultChunkSize = 4
	// defaultAlgorithmName is the weak hash algorithm used when neither a
	// flag nor a configuration file specifies one.
	defaultAlgorithmName = "adler"
	// defaultOutputDirectory is the directory for generated artifacts when
	// neither a flag nor a configuration file specifies one.
	defaultOutputDirectory = "data/output"
	// defaultSignatureName is the default file name for signature tables.
	defaultSignatureName = "signs.json"
	// defaultDeltaName is the default file name for deltas.
	defaultDeltaName = "delta.json"
	// defaultPatchName is the default file name for reconstructed files.
	defaultPatchName = "patch.json"
)

// knobs are the effective chunking parameters and output location for a
// single command invocation.
type knobs struct {
	// chunkSize is the chunk size in bytes.
	chunkSize int
	// algorithm is the weak hash algorithm.
	algorithm rolling.Algorithm
	// outputPath is the path for the command's generated artifact.
	outputPath string
}

// resolveKnobs merges built-in defaults, the optional global configuration
// file, and explicitly set flags into the effective knobs for a command.
// Explicitly set flags always win; configuration file values apply only to
// knobs the user left untouched.
func resolveKnobs(flags *pflag.FlagSet, chunkSize uint8, algorithmName, outputPath, outputName string) (knobs, error) {
	// Load the global configuration file, if present. A missing file simply
	// leaves the built-in defaults in effect.
	var global *configuration.Configuration
	if path, err := configuration.GlobalConfigurationPath(); err == nil {
		if c, err := configuration.Load(path); err == nil {
			global = c
		} else if !os.IsNotExist(err) {
			return knobs{}, errors.Wrap(err, "unable to load global configuration")
		}
	}

	// Apply configuration file defaults to untouched flags.
	if global != nil {
		if !flags.Changed("chunk-size") && global.Defaults.ChunkSize != 0 {
			chunkSize = global.Defaults.ChunkSize
		}
		if !flags.Changed("algorithm") && global.Defaults.Algorithm != "" {
			algorithmName = global.Defaults.Algorithm
		}
	}

	// Validate the chunk size.
	if chunkSize == 0 {
		return knobs{}, errors.New("chunk size must be positive")
	}

	// Parse and validate the algorithm name.
	algorithm, err := rolling.ParseAlgorithm(algorithmName)
	if err != nil {
		return knobs{}, err
	}

	// Compute the output path if no flag provided one.
	if outputPath == "" {
		directory := defaultOutputDirectory
		if global != nil && global.Defaults.OutputDirectory != "" {
			directory = global.Defaults.OutputDirectory
		}
		outputPath = filepath.Join(directory, outputName)
	}

	// Success.
	return knobs{
		chunkSize:  int(chunkSize),
		algorithm:  algorithm,
		outputPath: outputPath,
	}, nil
}

// readInputFile reads the entirety of the file at path. A missing or
// unreadable input fails here, before any pipeline work is performed.
func readInputFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read input file %s", path)
	}
	return data, nil
}

// ensureParentDirectory creates the parent directory of path if it doesn't
// already exist.
func ensureParentDirectory(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return errors.Wrap(err, "unable to create output directory")
	}
	return nil
}
