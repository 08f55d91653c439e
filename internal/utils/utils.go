// Package utils contains general helper functions used across rcat.
package utils

import (
	"path/filepath"
	"strings"
)

const extensionSeparator = "."

// DeduplicatePatterns removes duplicate entries from a slice while preserving order.
// The first occurrence of each unique value is kept.
func DeduplicatePatterns(patterns []string) []string {
	encounteredPatterns := make(map[string]struct{})
	result := make([]string, 0, len(patterns))
	for _, pattern := range patterns {
		if _, exists := encounteredPatterns[pattern]; !exists {
			encounteredPatterns[pattern] = struct{}{}
			result = append(result, pattern)
		}
	}
	return result
}

// FileExtension returns the extension of the final path element without the leading dot.
// A name whose only dot is the leading one, such as ".bashrc", has no extension.
func FileExtension(path string) string {
	baseName := filepath.Base(path)
	if baseName == extensionSeparator || baseName == ".." {
		return EmptyString
	}
	separatorIndex := strings.LastIndex(baseName, extensionSeparator)
	if separatorIndex <= 0 {
		return EmptyString
	}
	return baseName[separatorIndex+1:]
}
