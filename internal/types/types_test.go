package types_test

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/rcat/internal/types"
)

func TestSelectMode(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name         string
		listOnly     bool
		jsonOutput   bool
		expectedMode types.Mode
		expectedName string
	}{
		{name: "default", expectedMode: types.ModeContent, expectedName: "content"},
		{name: "list", listOnly: true, expectedMode: types.ModeList, expectedName: "list"},
		{name: "json", jsonOutput: true, expectedMode: types.ModeJSON, expectedName: "json"},
		{name: "json overrides list", listOnly: true, jsonOutput: true, expectedMode: types.ModeJSON, expectedName: "json"},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			mode := types.SelectMode(testCase.listOnly, testCase.jsonOutput)
			require.Equal(t, testCase.expectedMode, mode)
			require.Equal(t, testCase.expectedName, mode.String())
		})
	}
}

func TestRunConfigurationHasExtensionFilter(t *testing.T) {
	t.Parallel()

	require.False(t, types.RunConfiguration{}.HasExtensionFilter())
	require.True(t, types.RunConfiguration{Extension: "rs"}.HasExtensionFilter())
}

func TestErrorsMatchSentinels(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name            string
		err             error
		sentinel        error
		expectedMessage string
		wrapsCause      bool
	}{
		{
			name:            "path not found",
			err:             &types.PathNotFoundError{Path: "/missing"},
			sentinel:        types.ErrPathNotFound,
			expectedMessage: "path not found: /missing",
		},
		{
			name:            "directory read",
			err:             &types.DirectoryReadError{Path: "/locked", Err: fs.ErrPermission},
			sentinel:        types.ErrDirectoryRead,
			expectedMessage: "failed to read directory /locked: permission denied",
			wrapsCause:      true,
		},
		{
			name:            "syntax highlighting",
			err:             &types.SyntaxHighlightingError{Path: "main.go", Err: fs.ErrPermission},
			sentinel:        types.ErrSyntaxHighlighting,
			expectedMessage: "syntax highlighting failed for main.go: permission denied",
			wrapsCause:      true,
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			require.ErrorIs(t, testCase.err, testCase.sentinel)
			require.EqualError(t, testCase.err, testCase.expectedMessage)
			require.Equal(t, testCase.wrapsCause, errors.Is(testCase.err, fs.ErrPermission))
		})
	}
}
