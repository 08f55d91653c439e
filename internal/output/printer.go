// Package output renders visited files: content banners, list announcements and the JSON tree.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/temirov/rcat/internal/types"
)

const (
	ruleCharacter    = "━"
	ruleWidth        = 50
	openingFileLabel = "▶ OPENING FILE:"
	listFileLabel    = "📄 File:"
	endOfFileMarker  = "[ END OF FILE ]"
	jsonIndent       = "  "

	noColorEnvironmentVariable = "NO_COLOR"

	errorSerializeTreeFormat = "serialize tree: %w"
)

// ShouldColorize reports whether banner styling should be emitted for file.
// Styling requires a terminal and an unset NO_COLOR variable.
func ShouldColorize(file *os.File) bool {
	if file == nil {
		return false
	}
	if _, noColorSet := os.LookupEnv(noColorEnvironmentVariable); noColorSet {
		return false
	}
	descriptor := file.Fd()
	return isatty.IsTerminal(descriptor) || isatty.IsCygwinTerminal(descriptor)
}

type bannerStyles struct {
	rule     *color.Color
	opening  *color.Color
	path     *color.Color
	listName *color.Color
	footer   *color.Color
}

func newBannerStyles(colorize bool) bannerStyles {
	styles := bannerStyles{
		rule:     color.New(color.FgCyan),
		opening:  color.New(color.Bold, color.FgYellow),
		path:     color.New(color.Bold, color.FgGreen),
		listName: color.New(color.Bold, color.FgBlue),
		footer:   color.New(color.Bold, color.FgRed),
	}
	for _, style := range []*color.Color{styles.rule, styles.opening, styles.path, styles.listName, styles.footer} {
		if colorize {
			style.EnableColor()
		} else {
			style.DisableColor()
		}
	}
	return styles
}

// Printer writes everything rcat prints to standard output.
type Printer struct {
	writer io.Writer
	styles bannerStyles
}

// NewPrinter returns a Printer writing to writer. colorize controls banner styling only;
// syntax highlighting is configured separately.
func NewPrinter(writer io.Writer, colorize bool) *Printer {
	return &Printer{writer: writer, styles: newBannerStyles(colorize)}
}

// PrintFileHeader prints the banner announcing a file's content.
func (printer *Printer) PrintFileHeader(path string) {
	rule := printer.styles.rule.Sprint(strings.Repeat(ruleCharacter, ruleWidth))
	fmt.Fprintf(printer.writer, "\n%s\n%s  %s\n%s\n\n",
		rule,
		printer.styles.opening.Sprint(openingFileLabel),
		printer.styles.path.Sprint(path),
		rule,
	)
}

// PrintFileFooter prints the end-of-file marker.
func (printer *Printer) PrintFileFooter() {
	fmt.Fprintf(printer.writer, "\n%s\n\n", printer.styles.footer.Sprint(endOfFileMarker))
}

// PrintListEntry prints the single line announcing a file in list mode.
func (printer *Printer) PrintListEntry(path string) {
	fmt.Fprintf(printer.writer, "\n%s %s\n\n",
		printer.styles.listName.Sprint(listFileLabel),
		printer.styles.path.Sprint(path),
	)
}

// PrintLine prints one line of file content followed by a newline.
func (printer *Printer) PrintLine(line string) {
	fmt.Fprintln(printer.writer, line)
}

// WriteTreeJSON serializes tree as indented JSON followed by a newline.
func (printer *Printer) WriteTreeJSON(tree *types.TreeNode) error {
	if tree == nil {
		tree = types.NewTreeNode()
	}
	encoded, marshalError := json.MarshalIndent(tree, "", jsonIndent)
	if marshalError != nil {
		return fmt.Errorf(errorSerializeTreeFormat, marshalError)
	}
	if _, writeError := fmt.Fprintln(printer.writer, string(encoded)); writeError != nil {
		return fmt.Errorf(errorSerializeTreeFormat, writeError)
	}
	return nil
}
