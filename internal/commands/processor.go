// Package commands contains the traversal engine: the depth-first walk, its filters and
// the dispatch of every visited file to the active output mode.
package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/temirov/rcat/internal/output"
	"github.com/temirov/rcat/internal/types"
	"github.com/temirov/rcat/internal/utils"
)

const (
	logMessageSkipping        = "Skipping"
	logMessageFileFound       = "file found"
	logMessageDirectoryFound  = "directory found"
	logMessageExtension       = "extracted file extension"
	logMessageEntry           = "entry"
	logMessageDepthPruned     = "depth limit reached"
	logMessageFileFailed      = "Error reading file"
	logMessageUnsupportedMode = "unsupported output mode"

	errorStatRootFormat = "stat %s: %w"
)

// entryKind classifies a path the way the walk treats it. Symbolic links are followed.
type entryKind int

const (
	entryKindOther entryKind = iota
	entryKindFile
	entryKindDirectory
)

// FileProcessor walks a root path and renders every qualifying file.
type FileProcessor struct {
	configuration types.RunConfiguration
	printer       *output.Printer
	highlighter   *output.Highlighter
	logger        *zap.Logger
}

// NewFileProcessor constructs a FileProcessor. Syntax highlighting is prepared only when
// content mode runs with color enabled. A nil logger discards diagnostics.
func NewFileProcessor(configuration types.RunConfiguration, printer *output.Printer, logger *zap.Logger) *FileProcessor {
	if logger == nil {
		logger = zap.NewNop()
	}
	processor := &FileProcessor{
		configuration: configuration,
		printer:       printer,
		logger:        logger,
	}
	if configuration.Mode == types.ModeContent && !configuration.NoColor {
		processor.highlighter = output.NewHighlighter()
	}
	return processor
}

// Run processes path. JSON mode serializes the tree rooted at path; otherwise a directory is
// walked with the configured depth and a single file is rendered without the extension filter.
func (processor *FileProcessor) Run(path string) error {
	rootInfo, statError := os.Stat(path)
	if statError != nil {
		if errors.Is(statError, fs.ErrNotExist) {
			return &types.PathNotFoundError{Path: path}
		}
		return fmt.Errorf(errorStatRootFormat, path, statError)
	}

	if processor.configuration.Mode == types.ModeJSON {
		tree, buildError := BuildTree(path, processor.configuration.Exclusions, processor.logger)
		if buildError != nil {
			return buildError
		}
		return processor.printer.WriteTreeJSON(tree)
	}

	if rootInfo.IsDir() {
		return processor.processDirectory(path, processor.configuration.Depth)
	}
	processor.processFileSafely(path)
	return nil
}

// processDirectory walks directoryPath depth-first. A nil depth means unlimited; a zero
// depth still renders the directory's own files but does not descend further.
func (processor *FileProcessor) processDirectory(directoryPath string, depth *uint) error {
	if classifyPath(directoryPath) != entryKindDirectory {
		return nil
	}
	directoryEntries, readError := os.ReadDir(directoryPath)
	if readError != nil {
		return &types.DirectoryReadError{Path: directoryPath, Err: readError}
	}

	for _, directoryEntry := range directoryEntries {
		entryName := directoryEntry.Name()
		if processor.configuration.Exclusions.Contains(entryName) {
			processor.logger.Info(logMessageSkipping, zap.String("name", entryName))
			continue
		}
		entryPath := filepath.Join(directoryPath, entryName)
		kind := classifyEntry(entryPath, directoryEntry)
		processor.logger.Log(utils.TraceLevel, logMessageEntry, zap.String("path", entryPath), zap.Int("kind", int(kind)))

		switch kind {
		case entryKindFile:
			processor.visitFile(entryPath)
		case entryKindDirectory:
			processor.logger.Debug(logMessageDirectoryFound, zap.String("path", entryPath))
			childDepth, descend := nextDepth(depth)
			if !descend {
				processor.logger.Log(utils.TraceLevel, logMessageDepthPruned, zap.String("path", entryPath))
				continue
			}
			if walkError := processor.processDirectory(entryPath, childDepth); walkError != nil {
				return walkError
			}
		}
	}
	return nil
}

// visitFile applies the extension filter to a file discovered during enumeration.
func (processor *FileProcessor) visitFile(filePath string) {
	processor.logger.Debug(logMessageFileFound, zap.String("path", filePath))
	fileExtension := utils.FileExtension(filePath)
	processor.logger.Debug(logMessageExtension, zap.String("extension", fileExtension))
	if processor.configuration.HasExtensionFilter() && fileExtension != processor.configuration.Extension {
		return
	}
	processor.processFileSafely(filePath)
}

// processFileSafely renders one file and reports a failure without stopping the walk.
func (processor *FileProcessor) processFileSafely(filePath string) {
	if processError := processor.processFile(filePath); processError != nil {
		processor.logger.Error(logMessageFileFailed, zap.String("path", filePath), zap.Error(processError))
	}
}

// processFile dispatches a file to the active output mode.
func (processor *FileProcessor) processFile(filePath string) error {
	switch processor.configuration.Mode {
	case types.ModeList:
		processor.printer.PrintListEntry(filePath)
		return nil
	case types.ModeContent:
		return processor.printer.RenderFile(filePath, processor.highlighter)
	default:
		return fmt.Errorf("%s: %s", logMessageUnsupportedMode, processor.configuration.Mode)
	}
}

// nextDepth returns the depth passed to a child directory and whether to descend at all.
func nextDepth(depth *uint) (*uint, bool) {
	if depth == nil {
		return nil, true
	}
	if *depth == 0 {
		return nil, false
	}
	remaining := *depth - 1
	return &remaining, true
}

// classifyEntry resolves the kind of a directory entry, following symbolic links.
func classifyEntry(entryPath string, directoryEntry fs.DirEntry) entryKind {
	entryType := directoryEntry.Type()
	switch {
	case entryType&fs.ModeSymlink != 0:
		return classifyPath(entryPath)
	case entryType.IsDir():
		return entryKindDirectory
	case entryType.IsRegular():
		return entryKindFile
	default:
		return entryKindOther
	}
}

// classifyPath stats path, following symbolic links. Unreachable paths are entryKindOther.
func classifyPath(path string) entryKind {
	info, statError := os.Stat(path)
	if statError != nil {
		return entryKindOther
	}
	switch {
	case info.IsDir():
		return entryKindDirectory
	case info.Mode().IsRegular():
		return entryKindFile
	default:
		return entryKindOther
	}
}
