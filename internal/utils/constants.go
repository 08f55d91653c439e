package utils

// EmptyString represents a reusable empty string constant.
const EmptyString = ""

const (
	// ApplicationName is the command name used in help output and configuration paths.
	ApplicationName = "rcat"
	// ConfigFileName is the name of the global configuration file.
	ConfigFileName = "config.yaml"
	// LocalConfigFileName is the name of the configuration file read from the working directory.
	LocalConfigFileName = ".rcat.yaml"
	// GlobalConfigDirectoryName is the directory under the user's home holding the global configuration.
	GlobalConfigDirectoryName = ".rcat"
	// EnvironmentPrefix prefixes every environment variable read by rcat.
	EnvironmentPrefix = "RCAT"
	// GitDirectoryName is the name of the Git repository directory.
	GitDirectoryName = ".git"
)

// LoggerInitializationFailedMessageFormat reports a logger construction failure.
const LoggerInitializationFailedMessageFormat = "failed to initialize logger: %w"

// ApplicationExecutionFailedMessage prefixes fatal errors logged by the entry point.
const ApplicationExecutionFailedMessage = "rcat failed"
