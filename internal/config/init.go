package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"gopkg.in/yaml.v3"

	"github.com/temirov/rcat/internal/utils"
)

// InitTarget identifies where configuration should be initialized.
type InitTarget string

const (
	// InitTargetLocal writes configuration into the working directory.
	InitTargetLocal InitTarget = "local"
	// InitTargetGlobal writes configuration into the global configuration directory.
	InitTargetGlobal InitTarget = "global"

	lockFileSuffix = ".lock"
)

// InitOptions controls how configuration initialization behaves.
type InitOptions struct {
	Target           InitTarget
	Force            bool
	WorkingDirectory string
}

// DefaultApplicationConfiguration returns the values written by InitializeConfiguration.
// Depth is left unset, meaning unlimited recursion.
func DefaultApplicationConfiguration() ApplicationConfiguration {
	noColor := false
	listOnly := false
	jsonOutput := false
	return ApplicationConfiguration{
		NoColor: &noColor,
		List:    &listOnly,
		JSON:    &jsonOutput,
		Exclude: []string{},
	}
}

// RenderDefaultConfiguration renders the default configuration as YAML.
func RenderDefaultConfiguration() ([]byte, error) {
	rendered, marshalErr := yaml.Marshal(DefaultApplicationConfiguration())
	if marshalErr != nil {
		return nil, fmt.Errorf("render default configuration: %w", marshalErr)
	}
	return rendered, nil
}

// InitializeConfiguration writes the default configuration to the requested target and
// returns the written path. The write happens under an exclusive lock next to the file.
func InitializeConfiguration(options InitOptions) (string, error) {
	destinationPath, resolveErr := resolveInitDestination(options)
	if resolveErr != nil {
		return "", resolveErr
	}

	fileLock := flock.New(destinationPath + lockFileSuffix)
	if lockErr := fileLock.Lock(); lockErr != nil {
		return "", fmt.Errorf("failed to acquire lock on %s: %w", destinationPath, lockErr)
	}
	defer func() {
		_ = fileLock.Unlock()
		_ = os.Remove(destinationPath + lockFileSuffix)
	}()

	if _, err := os.Stat(destinationPath); err == nil {
		if !options.Force {
			return "", fmt.Errorf("configuration file already exists at %s", destinationPath)
		}
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("inspect configuration path %s: %w", destinationPath, err)
	}

	rendered, renderErr := RenderDefaultConfiguration()
	if renderErr != nil {
		return "", renderErr
	}
	if err := os.WriteFile(destinationPath, rendered, 0o600); err != nil {
		return "", fmt.Errorf("write configuration to %s: %w", destinationPath, err)
	}

	return destinationPath, nil
}

func resolveInitDestination(options InitOptions) (string, error) {
	target := options.Target
	if target == "" {
		target = InitTargetLocal
	}
	switch target {
	case InitTargetLocal:
		workingDirectory := options.WorkingDirectory
		if workingDirectory == "" {
			current, err := os.Getwd()
			if err != nil {
				return "", fmt.Errorf("determine working directory for configuration: %w", err)
			}
			workingDirectory = current
		}
		return filepath.Join(workingDirectory, utils.LocalConfigFileName), nil
	case InitTargetGlobal:
		homeDirectory, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory for configuration: %w", err)
		}
		configurationDirectory := filepath.Join(homeDirectory, utils.GlobalConfigDirectoryName)
		if err := os.MkdirAll(configurationDirectory, 0o755); err != nil {
			return "", fmt.Errorf("create configuration directory %s: %w", configurationDirectory, err)
		}
		return filepath.Join(configurationDirectory, utils.ConfigFileName), nil
	default:
		return "", fmt.Errorf("unsupported init target %q", target)
	}
}
