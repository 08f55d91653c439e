package output

import (
	"path/filepath"
	"strings"
	"unicode"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// DefaultThemeName is the built-in dark theme used for every highlighted file.
const DefaultThemeName = "base16-snazzy"

// Highlighter renders source text as 24-bit terminal escape sequences.
type Highlighter struct {
	style     *chroma.Style
	formatter chroma.Formatter
}

// NewHighlighter returns a Highlighter using DefaultThemeName.
func NewHighlighter() *Highlighter {
	return &Highlighter{
		style:     styles.Get(DefaultThemeName),
		formatter: formatters.TTY16m,
	}
}

// LexerFor returns the lexer matching the file name, or the plain-text lexer.
func LexerFor(path string) chroma.Lexer {
	lexer := lexers.Match(filepath.Base(path))
	if lexer == nil {
		lexer = lexers.Fallback
	}
	return chroma.Coalesce(lexer)
}

// HighlightLines tokenises content once, so lexer state carries across lines, and calls
// emit with every highlighted line. Trailing whitespace is trimmed from each rendered line.
func (highlighter *Highlighter) HighlightLines(path string, content string, emit func(string)) error {
	iterator, tokeniseError := LexerFor(path).Tokenise(nil, content)
	if tokeniseError != nil {
		return tokeniseError
	}

	var lineBuilder strings.Builder
	for _, lineTokens := range chroma.SplitTokensIntoLines(iterator.Tokens()) {
		lineTokens = trimTrailingWhitespace(lineTokens)
		lineBuilder.Reset()
		if formatError := highlighter.formatter.Format(&lineBuilder, highlighter.style, chroma.Literator(lineTokens...)); formatError != nil {
			return formatError
		}
		emit(strings.TrimRightFunc(lineBuilder.String(), unicode.IsSpace))
	}
	return nil
}

// trimTrailingWhitespace drops the line terminator and any trailing whitespace carried by the
// last tokens of a line so the formatter never wraps them in escape codes.
func trimTrailingWhitespace(lineTokens []chroma.Token) []chroma.Token {
	for len(lineTokens) > 0 {
		lastToken := &lineTokens[len(lineTokens)-1]
		lastToken.Value = strings.TrimRightFunc(lastToken.Value, unicode.IsSpace)
		if lastToken.Value != "" {
			break
		}
		lineTokens = lineTokens[:len(lineTokens)-1]
	}
	return lineTokens
}
