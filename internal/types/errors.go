package types

import (
	"errors"
	"fmt"
)

var (
	// ErrPathNotFound reports that the requested root does not exist.
	ErrPathNotFound = errors.New("path not found")
	// ErrDirectoryRead reports that a directory could not be enumerated.
	ErrDirectoryRead = errors.New("failed to read directory")
	// ErrSyntaxHighlighting reports that the highlighter rejected a file's content.
	ErrSyntaxHighlighting = errors.New("syntax highlighting failed")
)

// PathNotFoundError is returned when the root path does not exist.
type PathNotFoundError struct {
	Path string
}

func (pathError *PathNotFoundError) Error() string {
	return fmt.Sprintf("%v: %s", ErrPathNotFound, pathError.Path)
}

// Is matches ErrPathNotFound.
func (pathError *PathNotFoundError) Is(target error) bool {
	return target == ErrPathNotFound
}

// DirectoryReadError is returned when enumerating a directory fails. It aborts the run.
type DirectoryReadError struct {
	Path string
	Err  error
}

func (readError *DirectoryReadError) Error() string {
	return fmt.Sprintf("%v %s: %v", ErrDirectoryRead, readError.Path, readError.Err)
}

// Is matches ErrDirectoryRead.
func (readError *DirectoryReadError) Is(target error) bool {
	return target == ErrDirectoryRead
}

func (readError *DirectoryReadError) Unwrap() error {
	return readError.Err
}

// SyntaxHighlightingError is returned when highlighting a file fails. It only ends
// processing of that file.
type SyntaxHighlightingError struct {
	Path string
	Err  error
}

func (highlightError *SyntaxHighlightingError) Error() string {
	return fmt.Sprintf("%v for %s: %v", ErrSyntaxHighlighting, highlightError.Path, highlightError.Err)
}

// Is matches ErrSyntaxHighlighting.
func (highlightError *SyntaxHighlightingError) Is(target error) bool {
	return target == ErrSyntaxHighlighting
}

func (highlightError *SyntaxHighlightingError) Unwrap() error {
	return highlightError.Err
}
