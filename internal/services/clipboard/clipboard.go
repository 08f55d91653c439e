// Package clipboard copies rendered output to the system clipboard.
package clipboard

import (
	"bytes"
	"fmt"
	"io"

	"github.com/atotto/clipboard"
)

// Copier copies textual data to the system clipboard.
type Copier interface {
	Copy(text string) error
}

// Service implements Copier using github.com/atotto/clipboard.
type Service struct{}

// NewService constructs a Clipboard service implementation.
func NewService() *Service {
	return &Service{}
}

// Copy writes text to the system clipboard.
func (service *Service) Copy(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard is not supported on this system")
	}
	return clipboard.WriteAll(text)
}

var _ Copier = (*Service)(nil)

// Capture forwards writes to an underlying writer while keeping a copy for the clipboard.
type Capture struct {
	destination io.Writer
	captured    bytes.Buffer
}

// NewCapture returns a Capture writing through to destination.
func NewCapture(destination io.Writer) *Capture {
	return &Capture{destination: destination}
}

// Write forwards data and keeps only the bytes the destination accepted.
func (capture *Capture) Write(data []byte) (int, error) {
	written, writeError := capture.destination.Write(data)
	if written > 0 {
		capture.captured.Write(data[:written])
	}
	return written, writeError
}

// Commit hands everything written so far to copier.
func (capture *Capture) Commit(copier Copier) error {
	if copier == nil {
		return nil
	}
	if copyError := copier.Copy(capture.captured.String()); copyError != nil {
		return fmt.Errorf("copy output to clipboard: %w", copyError)
	}
	return nil
}
