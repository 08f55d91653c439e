package commands

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/temirov/rcat/internal/config"
	"github.com/temirov/rcat/internal/types"
)

// BuildTree builds the JSON tree rooted at directoryPath. Every child entry is checked
// against exclusions by its own name, the same rule the printing walk applies. A path that
// is not a directory yields an empty node. The extension filter and depth limit do not apply.
func BuildTree(directoryPath string, exclusions config.ExclusionSet, logger *zap.Logger) (*types.TreeNode, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	node := types.NewTreeNode()
	if classifyPath(directoryPath) != entryKindDirectory {
		return node, nil
	}

	directoryEntries, readError := os.ReadDir(directoryPath)
	if readError != nil {
		return nil, &types.DirectoryReadError{Path: directoryPath, Err: readError}
	}

	for _, directoryEntry := range directoryEntries {
		entryName := directoryEntry.Name()
		if exclusions.Contains(entryName) {
			logger.Info(logMessageSkipping, zap.String("name", entryName))
			continue
		}
		entryPath := filepath.Join(directoryPath, entryName)
		switch classifyEntry(entryPath, directoryEntry) {
		case entryKindFile:
			node.AddFile(entryName)
		case entryKindDirectory:
			childNode, childError := BuildTree(entryPath, exclusions, logger)
			if childError != nil {
				return nil, childError
			}
			node.AddDirectory(entryName, childNode)
		}
	}
	return node, nil
}
