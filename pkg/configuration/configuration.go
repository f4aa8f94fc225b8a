package configuration

import (
	"os"
	"path/filepath"

	"github.com/rolldiff/rolldiff/pkg/encoding"
)

// GlobalConfigurationName is the name of the global configuration file within
// the user's home directory.
const GlobalConfigurationName = ".rolldiff.yml"

// Configuration is the global YAML configuration object type. Any field left
// at its zero value is treated as unset and the built-in default applies.
type Configuration struct {
	// Defaults are the default knob values applied when the corresponding
	// command line flags are not provided.
	Defaults struct {
		// ChunkSize is the default chunk size in bytes.
		ChunkSize uint8 `yaml:"chunkSize"`
		// Algorithm is the default weak hash algorithm name.
		Algorithm string `yaml:"algorithm"`
		// OutputDirectory is the default directory for generated artifacts.
		OutputDirectory string `yaml:"outputDirectory"`
	} `yaml:"defaults"`
}

// GlobalConfigurationPath computes the path to the global configuration file.
func GlobalConfigurationPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, GlobalConfigurationName), nil
}

// Load attempts to load a YAML-based configuration file from the specified
// path. Non-existence of the file is passed through unwrapped, so callers can
// detect it with os.IsNotExist and fall back to built-in defaults.
func Load(path string) (*Configuration, error) {
	// Create the target configuration object.
	result := &Configuration{}

	// Attempt to load. We pass-through os.IsNotExist errors.
	if err := encoding.LoadAndUnmarshalYAML(path, result); err != nil {
		return nil, err
	}

	// Success.
	return result, nil
}
