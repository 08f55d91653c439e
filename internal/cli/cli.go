// Package cli provides the command line interface.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/temirov/rcat/internal/commands"
	"github.com/temirov/rcat/internal/config"
	"github.com/temirov/rcat/internal/output"
	"github.com/temirov/rcat/internal/services/clipboard"
	"github.com/temirov/rcat/internal/types"
	"github.com/temirov/rcat/internal/utils"
)

const (
	pathFlagName      = "dname"
	noColorFlagName   = "no-color"
	extensionFlagName = "ext"
	depthFlagName     = "depth"
	listFlagName      = "list"
	jsonFlagName      = "json"
	verboseFlagName   = "verbose"
	verboseShorthand  = "v"
	configFlagName    = "config"
	copyFlagName      = "copy"
	versionFlagName   = "version"
	defaultPath       = "."

	rootUse              = utils.ApplicationName + " [path]"
	rootShortDescription = "recursively print files with syntax highlighting"
	rootLongDescription  = `rcat walks a directory tree depth-first and prints every file it finds.
Files are shown with a banner and syntax highlighting; use --no-color for raw lines,
--list to only announce paths, or --json to print the directory tree as JSON.
Build artifacts, VCS and editor directories, lockfiles and ignore files are skipped.`
	rootUsageExample = `  # Print every Go file below ./internal
  rcat ./internal --ext go

  # List files at most one directory below the current one
  rcat --list --depth 1

  # Describe the tree as JSON
  rcat --json ./cmd`

	pathFlagDescription      = "directory name (overridden by the positional path)"
	noColorFlagDescription   = "disable syntax highlighting"
	extensionFlagDescription = "only process files with this extension, without the dot"
	depthFlagDescription     = "maximum recursion depth below the root (unlimited when absent)"
	listFlagDescription      = "list files without reading their contents"
	jsonFlagDescription      = "print the directory tree as JSON"
	verboseFlagDescription   = "increase diagnostic verbosity (repeatable)"
	configFlagDescription    = "path to a configuration file"
	copyFlagDescription      = "copy the printed output to the clipboard"
	versionFlagDescription   = "display application version"

	errorLoggerFormat = "initialize logger: %w"
)

// LoggerFactory builds the diagnostic logger for the requested verbosity.
type LoggerFactory func(verbosity int) (*zap.Logger, error)

// Dependencies carries the process resources used by the commands.
type Dependencies struct {
	Stdout           io.Writer
	Colorize         bool
	WorkingDirectory string
	NewLogger        LoggerFactory
	Copier           clipboard.Copier
}

// DefaultDependencies returns dependencies bound to the process streams and system clipboard.
func DefaultDependencies() Dependencies {
	return Dependencies{
		Stdout:    os.Stdout,
		Colorize:  output.ShouldColorize(os.Stdout),
		NewLogger: utils.NewApplicationLogger,
		Copier:    clipboard.NewService(),
	}
}

// Execute runs the rcat application.
func Execute() error {
	return NewRootCommand(DefaultDependencies()).Execute()
}

// runOptions stores the raw flag values of the root command.
type runOptions struct {
	path        string
	noColor     bool
	extension   string
	depth       uint
	listOnly    bool
	jsonOutput  bool
	verbosity   int
	configPath  string
	copyOutput  bool
	showVersion bool
}

// NewRootCommand builds the root Cobra command.
func NewRootCommand(dependencies Dependencies) *cobra.Command {
	if dependencies.Stdout == nil {
		dependencies.Stdout = io.Discard
	}
	if dependencies.NewLogger == nil {
		dependencies.NewLogger = utils.NewApplicationLogger
	}

	var options runOptions

	rootCommand := &cobra.Command{
		Use:           rootUse,
		Short:         rootShortDescription,
		Long:          rootLongDescription,
		Example:       rootUsageExample,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			if options.showVersion {
				_, printError := fmt.Fprint(dependencies.Stdout, utils.FormatVersion())
				return printError
			}
			return runRoot(command, arguments, options, dependencies)
		},
	}

	flagSet := rootCommand.Flags()
	flagSet.StringVar(&options.path, pathFlagName, defaultPath, pathFlagDescription)
	registerBooleanFlag(flagSet, &options.noColor, noColorFlagName, false, noColorFlagDescription)
	flagSet.StringVar(&options.extension, extensionFlagName, utils.EmptyString, extensionFlagDescription)
	flagSet.UintVar(&options.depth, depthFlagName, 0, depthFlagDescription)
	registerBooleanFlag(flagSet, &options.listOnly, listFlagName, false, listFlagDescription)
	registerBooleanFlag(flagSet, &options.jsonOutput, jsonFlagName, false, jsonFlagDescription)
	flagSet.CountVarP(&options.verbosity, verboseFlagName, verboseShorthand, verboseFlagDescription)
	flagSet.StringVar(&options.configPath, configFlagName, utils.EmptyString, configFlagDescription)
	registerBooleanFlag(flagSet, &options.copyOutput, copyFlagName, false, copyFlagDescription)
	flagSet.BoolVar(&options.showVersion, versionFlagName, false, versionFlagDescription)
	if depthFlag := flagSet.Lookup(depthFlagName); depthFlag != nil {
		depthFlag.DefValue = utils.EmptyString
	}

	rootCommand.AddCommand(createInitCommand(dependencies))
	rootCommand.InitDefaultHelpCmd()
	rootCommand.InitDefaultCompletionCmd()
	return rootCommand
}

// runRoot resolves the run configuration and walks the requested path.
func runRoot(command *cobra.Command, arguments []string, options runOptions, dependencies Dependencies) error {
	applicationConfiguration, loadError := config.LoadApplicationConfiguration(config.LoadOptions{
		WorkingDirectory: dependencies.WorkingDirectory,
		ExplicitFilePath: options.configPath,
	})
	if loadError != nil {
		return loadError
	}

	logger, loggerError := dependencies.NewLogger(options.verbosity)
	if loggerError != nil {
		return fmt.Errorf(errorLoggerFormat, loggerError)
	}
	defer func() {
		_ = logger.Sync()
	}()

	runConfiguration := resolveRunConfiguration(command.Flags(), arguments, options, applicationConfiguration)
	logger.Debug("run configuration",
		zap.String("root", runConfiguration.Root),
		zap.Stringer("mode", runConfiguration.Mode),
		zap.Bool("noColor", runConfiguration.NoColor),
		zap.String("extension", runConfiguration.Extension),
		zap.Strings("excluded", runConfiguration.Exclusions.Names()),
	)

	stdout := dependencies.Stdout
	var capture *clipboard.Capture
	if resolveBool(command.Flags(), copyFlagName, options.copyOutput, nil) {
		capture = clipboard.NewCapture(stdout)
		stdout = capture
	}

	printer := output.NewPrinter(stdout, dependencies.Colorize)
	processor := commands.NewFileProcessor(runConfiguration, printer, logger)
	if runError := processor.Run(runConfiguration.Root); runError != nil {
		return runError
	}

	if capture != nil {
		return capture.Commit(dependencies.Copier)
	}
	return nil
}

// resolveRunConfiguration applies flag values over configuration file and environment values.
// A flag only wins when it was given explicitly; the positional path wins over everything.
func resolveRunConfiguration(flagSet *pflag.FlagSet, arguments []string, options runOptions, applicationConfiguration config.ApplicationConfiguration) types.RunConfiguration {
	rootPath := defaultPath
	switch {
	case len(arguments) > 0 && strings.TrimSpace(arguments[0]) != utils.EmptyString:
		rootPath = arguments[0]
	case flagSet.Changed(pathFlagName):
		rootPath = options.path
	case applicationConfiguration.Path != utils.EmptyString:
		rootPath = applicationConfiguration.Path
	}

	extension := applicationConfiguration.Extension
	if flagSet.Changed(extensionFlagName) {
		extension = options.extension
	}

	var depth *uint
	if flagSet.Changed(depthFlagName) {
		flagDepth := options.depth
		depth = &flagDepth
	} else if applicationConfiguration.Depth != nil {
		configuredDepth := uint(*applicationConfiguration.Depth)
		depth = &configuredDepth
	}

	listOnly := resolveBool(flagSet, listFlagName, options.listOnly, applicationConfiguration.List)
	jsonOutput := resolveBool(flagSet, jsonFlagName, options.jsonOutput, applicationConfiguration.JSON)

	return types.RunConfiguration{
		Root:       rootPath,
		NoColor:    resolveBool(flagSet, noColorFlagName, options.noColor, applicationConfiguration.NoColor),
		Extension:  extension,
		Depth:      depth,
		Mode:       types.SelectMode(listOnly, jsonOutput),
		Exclusions: applicationConfiguration.Exclusions(),
	}
}

func resolveBool(flagSet *pflag.FlagSet, flagName string, flagValue bool, configured *bool) bool {
	if flagSet.Changed(flagName) || configured == nil {
		return flagValue
	}
	return *configured
}
