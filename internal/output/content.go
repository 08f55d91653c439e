package output

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/temirov/rcat/internal/types"
	"github.com/temirov/rcat/internal/utils"
)

const (
	errorOpenFileFormat = "could not open file %s: %w"
	errorReadFileFormat = "could not read file %s: %w"
)

// RenderFile prints the banner, the content of the file at path and the footer.
// A nil highlighter prints every line verbatim. Content that is not UTF-8 text is
// printed verbatim even when a highlighter is supplied.
//
// #nosec G304
func (printer *Printer) RenderFile(path string, highlighter *Highlighter) error {
	printer.PrintFileHeader(path)

	fileHandle, openError := os.Open(path)
	if openError != nil {
		return fmt.Errorf(errorOpenFileFormat, path, openError)
	}
	defer fileHandle.Close()

	if highlighter == nil {
		if plainError := printer.printPlainLines(fileHandle); plainError != nil {
			return fmt.Errorf(errorReadFileFormat, path, plainError)
		}
		printer.PrintFileFooter()
		return nil
	}

	content, readError := io.ReadAll(fileHandle)
	if readError != nil {
		return fmt.Errorf(errorReadFileFormat, path, readError)
	}
	if utils.IsBinary(content) {
		if plainError := printer.printPlainLines(bytes.NewReader(content)); plainError != nil {
			return fmt.Errorf(errorReadFileFormat, path, plainError)
		}
		printer.PrintFileFooter()
		return nil
	}

	if highlightError := highlighter.HighlightLines(path, string(content), printer.PrintLine); highlightError != nil {
		return &types.SyntaxHighlightingError{Path: path, Err: highlightError}
	}
	printer.PrintFileFooter()
	return nil
}

// printPlainLines copies reader line by line, dropping the line terminators.
func (printer *Printer) printPlainLines(reader io.Reader) error {
	lineReader := bufio.NewReader(reader)
	for {
		line, readError := lineReader.ReadString('\n')
		if len(line) > 0 {
			printer.PrintLine(trimLineEnding(line))
		}
		if readError != nil {
			if errors.Is(readError, io.EOF) {
				return nil
			}
			return readError
		}
	}
}

func trimLineEnding(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
