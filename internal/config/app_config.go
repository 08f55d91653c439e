package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/temirov/rcat/internal/utils"
)

const (
	keyPath      = "dname"
	keyNoColor   = "no_color"
	keyExtension = "ext"
	keyDepth     = "depth"
	keyList      = "list"
	keyJSON      = "json"
	keyExclude   = "exclude"

	// legacyPathEnvironmentVariable is honored in addition to RCAT_DNAME.
	legacyPathEnvironmentVariable = "DNAME"

	errorNegativeDepthFormat = "%s: depth must not be negative, got %d"
)

// LoadOptions controls how application configuration is discovered.
type LoadOptions struct {
	WorkingDirectory string
	ExplicitFilePath string
	// SkipEnvironment disables reading RCAT_* variables.
	SkipEnvironment bool
}

// ApplicationConfiguration holds defaults read from configuration files and the environment.
// Nil pointers and empty strings mean "not configured".
type ApplicationConfiguration struct {
	Path      string   `mapstructure:"dname" yaml:"dname,omitempty"`
	NoColor   *bool    `mapstructure:"no_color" yaml:"no_color"`
	Extension string   `mapstructure:"ext" yaml:"ext"`
	Depth     *int     `mapstructure:"depth" yaml:"depth,omitempty"`
	List      *bool    `mapstructure:"list" yaml:"list"`
	JSON      *bool    `mapstructure:"json" yaml:"json"`
	Exclude   []string `mapstructure:"exclude" yaml:"exclude"`
}

// LoadApplicationConfiguration merges the global file, the local (or explicit) file and
// the environment, later sources overriding earlier ones.
func LoadApplicationConfiguration(options LoadOptions) (ApplicationConfiguration, error) {
	workingDirectory := options.WorkingDirectory
	if workingDirectory == "" {
		currentDirectory, err := os.Getwd()
		if err != nil {
			return ApplicationConfiguration{}, fmt.Errorf("determine working directory: %w", err)
		}
		workingDirectory = currentDirectory
	}

	var merged ApplicationConfiguration

	if homeDirectory, err := os.UserHomeDir(); err == nil && homeDirectory != "" {
		globalPath := filepath.Join(homeDirectory, utils.GlobalConfigDirectoryName, utils.ConfigFileName)
		globalConfig, loadErr := loadConfigurationFromPath(globalPath, false)
		if loadErr != nil {
			return ApplicationConfiguration{}, loadErr
		}
		merged = merged.Merge(globalConfig)
	}

	localPath, mustExist, resolveErr := resolveLocalConfigPath(workingDirectory, options.ExplicitFilePath)
	if resolveErr != nil {
		return ApplicationConfiguration{}, resolveErr
	}
	localConfig, loadErr := loadConfigurationFromPath(localPath, mustExist)
	if loadErr != nil {
		return ApplicationConfiguration{}, loadErr
	}
	merged = merged.Merge(localConfig)

	if !options.SkipEnvironment {
		environmentConfig, environmentErr := loadConfigurationFromEnvironment()
		if environmentErr != nil {
			return ApplicationConfiguration{}, environmentErr
		}
		merged = merged.Merge(environmentConfig)
	}

	if merged.Depth != nil && *merged.Depth < 0 {
		return ApplicationConfiguration{}, fmt.Errorf(errorNegativeDepthFormat, keyDepth, *merged.Depth)
	}
	if len(merged.Exclude) > 0 {
		merged.Exclude = utils.DeduplicatePatterns(merged.Exclude)
	}

	return merged, nil
}

// resolveLocalConfigPath returns the local configuration path and whether it must exist.
// An explicitly requested file must exist; the implicit .rcat.yaml is optional.
func resolveLocalConfigPath(workingDirectory, explicitPath string) (string, bool, error) {
	if explicitPath != "" {
		if filepath.IsAbs(explicitPath) {
			return explicitPath, true, nil
		}
		if workingDirectory == "" {
			absolute, err := filepath.Abs(explicitPath)
			if err != nil {
				return "", true, fmt.Errorf("resolve configuration path %s: %w", explicitPath, err)
			}
			return absolute, true, nil
		}
		return filepath.Join(workingDirectory, explicitPath), true, nil
	}
	if workingDirectory == "" {
		return "", false, nil
	}
	return filepath.Join(workingDirectory, utils.LocalConfigFileName), false, nil
}

func loadConfigurationFromPath(path string, mustExist bool) (ApplicationConfiguration, error) {
	if path == "" {
		return ApplicationConfiguration{}, nil
	}
	info, statErr := os.Stat(path)
	if statErr != nil {
		if os.IsNotExist(statErr) && !mustExist {
			return ApplicationConfiguration{}, nil
		}
		return ApplicationConfiguration{}, fmt.Errorf("stat configuration %s: %w", path, statErr)
	}
	if info.IsDir() {
		return ApplicationConfiguration{}, fmt.Errorf("configuration path %s is a directory", path)
	}

	reader := viper.New()
	reader.SetConfigFile(path)
	if !hasConfigExtension(path) {
		reader.SetConfigType("yaml")
	}
	if readErr := reader.ReadInConfig(); readErr != nil {
		return ApplicationConfiguration{}, fmt.Errorf("read configuration from %s: %w", path, readErr)
	}
	var config ApplicationConfiguration
	if decodeErr := reader.Unmarshal(&config); decodeErr != nil {
		return ApplicationConfiguration{}, fmt.Errorf("decode configuration from %s: %w", path, decodeErr)
	}
	return config, nil
}

func loadConfigurationFromEnvironment() (ApplicationConfiguration, error) {
	reader := viper.New()
	reader.SetEnvPrefix(utils.EnvironmentPrefix)
	reader.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	for _, key := range []string{keyNoColor, keyExtension, keyDepth, keyList, keyJSON} {
		if bindErr := reader.BindEnv(key); bindErr != nil {
			return ApplicationConfiguration{}, fmt.Errorf("bind environment for %s: %w", key, bindErr)
		}
	}
	if bindErr := reader.BindEnv(keyPath, environmentVariableName(keyPath), legacyPathEnvironmentVariable); bindErr != nil {
		return ApplicationConfiguration{}, fmt.Errorf("bind environment for %s: %w", keyPath, bindErr)
	}
	var config ApplicationConfiguration
	if decodeErr := reader.Unmarshal(&config); decodeErr != nil {
		return ApplicationConfiguration{}, fmt.Errorf("decode environment configuration: %w", decodeErr)
	}
	return config, nil
}

func environmentVariableName(key string) string {
	return utils.EnvironmentPrefix + "_" + strings.ToUpper(key)
}

func hasConfigExtension(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json", ".toml":
		return true
	default:
		return false
	}
}

// Merge overlays override onto the receiver returning the combined configuration.
func (config ApplicationConfiguration) Merge(override ApplicationConfiguration) ApplicationConfiguration {
	result := config
	if override.Path != "" {
		result.Path = override.Path
	}
	if override.NoColor != nil {
		result.NoColor = cloneBool(override.NoColor)
	}
	if override.Extension != "" {
		result.Extension = override.Extension
	}
	if override.Depth != nil {
		result.Depth = cloneInt(override.Depth)
	}
	if override.List != nil {
		result.List = cloneBool(override.List)
	}
	if override.JSON != nil {
		result.JSON = cloneBool(override.JSON)
	}
	if len(override.Exclude) > 0 {
		result.Exclude = append([]string{}, utils.DeduplicatePatterns(override.Exclude)...)
	}
	return result
}

// Exclusions builds the exclusion set from the fixed names plus the configured ones.
func (config ApplicationConfiguration) Exclusions() ExclusionSet {
	return NewExclusionSet(config.Exclude...)
}

func cloneBool(value *bool) *bool {
	if value == nil {
		return nil
	}
	cloned := *value
	return &cloned
}

func cloneInt(value *int) *int {
	if value == nil {
		return nil
	}
	cloned := *value
	return &cloned
}
