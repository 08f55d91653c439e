// Package types defines every cross‑package data structure used by the rcat CLI.
package types

import "github.com/temirov/rcat/internal/config"

// Mode selects how visited files are rendered. Exactly one mode is active per run.
type Mode int

const (
	// ModeContent prints a banner, the file content and a footer for every file.
	ModeContent Mode = iota
	// ModeList prints a single announcement line per file without reading it.
	ModeList
	// ModeJSON serializes the directory tree as JSON.
	ModeJSON
)

const (
	modeNameContent = "content"
	modeNameList    = "list"
	modeNameJSON    = "json"
)

// String returns the lower-case mode name.
func (mode Mode) String() string {
	switch mode {
	case ModeList:
		return modeNameList
	case ModeJSON:
		return modeNameJSON
	default:
		return modeNameContent
	}
}

// SelectMode resolves the mode from the list and json switches. JSON wins over list.
func SelectMode(listOnly bool, jsonOutput bool) Mode {
	if jsonOutput {
		return ModeJSON
	}
	if listOnly {
		return ModeList
	}
	return ModeContent
}

// RunConfiguration holds the parameters of a single run. It is built once and never mutated.
type RunConfiguration struct {
	Root       string
	NoColor    bool
	Extension  string
	Depth      *uint
	Mode       Mode
	Exclusions config.ExclusionSet
}

// HasExtensionFilter reports whether only files with a specific extension are processed.
func (configuration RunConfiguration) HasExtensionFilter() bool {
	return configuration.Extension != ""
}
