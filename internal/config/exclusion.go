// Package config loads rcat configuration files and builds the exclusion set.
package config

import (
	"sort"
	"strings"
)

// fixedExcludedNames lists build artifacts, VCS and editor directories, lockfiles and
// ignore files that are never rendered or descended into.
var fixedExcludedNames = [...]string{
	"target",
	".idea",
	".vscode",
	".git",
	"Cargo.lock",
	".gitignore",
}

// ExclusionSet is an immutable set of base names skipped during traversal.
// The zero value excludes nothing.
type ExclusionSet struct {
	names map[string]struct{}
}

// NewExclusionSet returns the fixed exclusion set extended with additionalNames.
// Blank names and names containing a path separator are ignored because membership
// is checked against base names only.
func NewExclusionSet(additionalNames ...string) ExclusionSet {
	names := make(map[string]struct{}, len(fixedExcludedNames)+len(additionalNames))
	for _, name := range fixedExcludedNames {
		names[name] = struct{}{}
	}
	for _, name := range additionalNames {
		trimmedName := strings.TrimSpace(name)
		if trimmedName == "" || strings.ContainsAny(trimmedName, `/\`) {
			continue
		}
		names[trimmedName] = struct{}{}
	}
	return ExclusionSet{names: names}
}

// Contains reports whether baseName is excluded.
func (set ExclusionSet) Contains(baseName string) bool {
	_, excluded := set.names[baseName]
	return excluded
}

// Names returns the excluded names in sorted order.
func (set ExclusionSet) Names() []string {
	result := make([]string, 0, len(set.names))
	for name := range set.names {
		result = append(result, name)
	}
	sort.Strings(result)
	return result
}
