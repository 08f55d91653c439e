package utils_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/temirov/rcat/internal/utils"
)

func TestFileExtension(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		path     string
		expected string
	}{
		{path: "main.go", expected: "go"},
		{path: "/src/lib.rs", expected: "rs"},
		{path: "archive.tar.gz", expected: "gz"},
		{path: "Makefile", expected: ""},
		{path: ".bashrc", expected: ""},
		{path: ".config.yaml", expected: "yaml"},
		{path: "trailing.", expected: ""},
		{path: "dir.d/README", expected: ""},
		{path: "..", expected: ""},
		{path: "UPPER.RS", expected: "RS"},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.path, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, testCase.expected, utils.FileExtension(testCase.path))
		})
	}
}

func TestDeduplicatePatterns(t *testing.T) {
	t.Parallel()

	require.Equal(t, []string{"b", "a", "c"}, utils.DeduplicatePatterns([]string{"b", "a", "b", "c", "a"}))
	require.Empty(t, utils.DeduplicatePatterns(nil))
}

func TestIsBinary(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		data     []byte
		expected bool
	}{
		{name: "empty", data: nil, expected: false},
		{name: "ascii", data: []byte("fn main() {}\n"), expected: false},
		{name: "multibyte", data: []byte("привет, 世界\n"), expected: false},
		{name: "nul byte", data: []byte("a\x00b"), expected: true},
		{name: "invalid utf8", data: []byte{0xff, 0xfe, 'a'}, expected: true},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, testCase.expected, utils.IsBinary(testCase.data))
		})
	}
}

func TestLevelForVerbosity(t *testing.T) {
	t.Parallel()

	require.Equal(t, zapcore.InfoLevel, utils.LevelForVerbosity(-1))
	require.Equal(t, zapcore.InfoLevel, utils.LevelForVerbosity(0))
	require.Equal(t, zapcore.DebugLevel, utils.LevelForVerbosity(1))
	require.Equal(t, utils.TraceLevel, utils.LevelForVerbosity(2))
	require.Equal(t, utils.TraceLevel, utils.LevelForVerbosity(5))
	require.Less(t, int(utils.TraceLevel), int(zapcore.DebugLevel))
}

func TestNewApplicationLoggerLevels(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		verbosity    int
		debugEnabled bool
		traceEnabled bool
	}{
		{verbosity: 0},
		{verbosity: 1, debugEnabled: true},
		{verbosity: 2, debugEnabled: true, traceEnabled: true},
	}

	for _, testCase := range testCases {
		logger, buildError := utils.NewApplicationLogger(testCase.verbosity)
		require.NoError(t, buildError)
		require.True(t, logger.Core().Enabled(zapcore.InfoLevel))
		require.Equal(t, testCase.debugEnabled, logger.Core().Enabled(zapcore.DebugLevel))
		require.Equal(t, testCase.traceEnabled, logger.Core().Enabled(utils.TraceLevel))
	}
}

func TestFormatVersion(t *testing.T) {
	t.Parallel()

	formatted := utils.FormatVersion()
	require.True(t, strings.HasPrefix(formatted, "rcat version: "))
	require.True(t, strings.HasSuffix(formatted, "\n"))
}
