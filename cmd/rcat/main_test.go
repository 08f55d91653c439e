package main_test

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type commandResult struct {
	stdout   string
	stderr   string
	exitCode int
}

// #nosec G204
func buildBinary(testSetup *testing.T) string {
	testSetup.Helper()
	binaryName := "rcat_integration_test_binary"
	if runtime.GOOS == "windows" {
		binaryName += ".exe"
	}
	binaryPath := filepath.Join(testSetup.TempDir(), binaryName)

	currentDirectory, directoryError := os.Getwd()
	require.NoError(testSetup, directoryError)
	moduleRoot := filepath.Dir(filepath.Dir(currentDirectory))

	buildCommand := exec.Command("go", "build", "-o", binaryPath, "./cmd/rcat")
	buildCommand.Dir = moduleRoot
	buildOutput, buildError := buildCommand.CombinedOutput()
	require.NoError(testSetup, buildError, "build output:\n%s", string(buildOutput))
	return binaryPath
}

// #nosec G204
func runBinary(testSetup *testing.T, binaryPath string, workingDirectory string, arguments ...string) commandResult {
	testSetup.Helper()
	command := exec.Command(binaryPath, arguments...)
	command.Dir = workingDirectory
	command.Env = append(os.Environ(),
		"HOME="+testSetup.TempDir(),
		"NO_COLOR=1",
		"RCAT_NO_COLOR=", "RCAT_EXT=", "RCAT_DEPTH=", "RCAT_LIST=", "RCAT_JSON=", "RCAT_DNAME=", "DNAME=",
	)

	var standardOutput, standardError bytes.Buffer
	command.Stdout = &standardOutput
	command.Stderr = &standardError

	result := commandResult{}
	runError := command.Run()
	if runError != nil {
		var exitError *exec.ExitError
		require.True(testSetup, errors.As(runError, &exitError), "unexpected run error %v", runError)
		result.exitCode = exitError.ExitCode()
	}
	result.stdout = standardOutput.String()
	result.stderr = standardError.String()
	return result
}

func setupTestDirectory(testSetup *testing.T, directoryStructure map[string]string) string {
	testSetup.Helper()
	temporaryDirectoryRoot := testSetup.TempDir()
	for relativePath, content := range directoryStructure {
		absolutePath := filepath.Join(temporaryDirectoryRoot, filepath.FromSlash(relativePath))
		require.NoError(testSetup, os.MkdirAll(filepath.Dir(absolutePath), 0o755))
		require.NoError(testSetup, os.WriteFile(absolutePath, []byte(content), 0o644))
	}
	return temporaryDirectoryRoot
}

func TestBinaryListsRelativePaths(testInstance *testing.T) {
	binaryPath := buildBinary(testInstance)
	testDirectory := setupTestDirectory(testInstance, map[string]string{
		"proj/a.rs":       "fn a() {}",
		"proj/b.txt":      "b",
		"proj/sub/c.rs":   "fn c() {}",
		"proj/.git/HEAD":  "ref: refs/heads/main",
		"proj/Cargo.lock": "# lock",
	})

	result := runBinary(testInstance, binaryPath, testDirectory, "proj", "--list", "--ext", "rs")
	require.Zero(testInstance, result.exitCode, result.stderr)
	require.Equal(testInstance,
		"\n📄 File: "+filepath.Join("proj", "a.rs")+"\n\n\n📄 File: "+filepath.Join("proj", "sub", "c.rs")+"\n\n",
		result.stdout)
	require.Contains(testInstance, result.stderr, "Skipping")
	require.Contains(testInstance, result.stderr, ".git")
}

func TestBinaryMissingPathExitsWithFailure(testInstance *testing.T) {
	binaryPath := buildBinary(testInstance)
	testDirectory := setupTestDirectory(testInstance, map[string]string{})

	result := runBinary(testInstance, binaryPath, testDirectory, "does_not_exist")
	require.Equal(testInstance, 1, result.exitCode)
	require.Empty(testInstance, result.stdout)
	require.Contains(testInstance, result.stderr, "path not found: does_not_exist")
}

func TestBinaryUnreadableFileKeepsExitStatus(testInstance *testing.T) {
	if os.Geteuid() == 0 {
		testInstance.Skip("file permissions are not enforced for root")
	}
	binaryPath := buildBinary(testInstance)
	testDirectory := setupTestDirectory(testInstance, map[string]string{
		"a_locked.txt": "secret",
		"b_open.txt":   "visible",
	})
	lockedPath := filepath.Join(testDirectory, "a_locked.txt")
	require.NoError(testInstance, os.Chmod(lockedPath, 0o000))
	testInstance.Cleanup(func() {
		_ = os.Chmod(lockedPath, 0o644)
	})

	result := runBinary(testInstance, binaryPath, testDirectory, ".", "--no-color")
	require.Zero(testInstance, result.exitCode, result.stderr)
	require.Contains(testInstance, result.stdout, "visible")
	require.Contains(testInstance, result.stderr, "Error reading file")
	require.Contains(testInstance, result.stderr, "a_locked.txt")
}

func TestBinaryUnreadableRootFileExitsZero(testInstance *testing.T) {
	if os.Geteuid() == 0 {
		testInstance.Skip("file permissions are not enforced for root")
	}
	binaryPath := buildBinary(testInstance)
	testDirectory := setupTestDirectory(testInstance, map[string]string{"locked.txt": "secret"})
	lockedPath := filepath.Join(testDirectory, "locked.txt")
	require.NoError(testInstance, os.Chmod(lockedPath, 0o000))
	testInstance.Cleanup(func() {
		_ = os.Chmod(lockedPath, 0o644)
	})

	result := runBinary(testInstance, binaryPath, testDirectory, "locked.txt", "--no-color")
	require.Zero(testInstance, result.exitCode, result.stderr)
	require.Contains(testInstance, result.stderr, "Error reading file")
	require.NotContains(testInstance, result.stdout, "[ END OF FILE ]")
}

func TestBinaryPlainOutputHasNoEscapeSequences(testInstance *testing.T) {
	binaryPath := buildBinary(testInstance)
	testDirectory := setupTestDirectory(testInstance, map[string]string{
		"main.go": "package main\n\nfunc main() {}\n",
	})

	plain := runBinary(testInstance, binaryPath, testDirectory, "main.go", "--no-color")
	require.Zero(testInstance, plain.exitCode, plain.stderr)
	require.NotContains(testInstance, plain.stdout, "\x1b[")
	require.Contains(testInstance, plain.stdout, "\npackage main\n\nfunc main() {}\n")

	highlighted := runBinary(testInstance, binaryPath, testDirectory, "main.go")
	require.Zero(testInstance, highlighted.exitCode, highlighted.stderr)
	require.Contains(testInstance, highlighted.stdout, "\x1b[38;2;")
	require.True(testInstance, strings.HasPrefix(highlighted.stdout, "\n━"))
}

func TestBinaryRejectsNegativeDepth(testInstance *testing.T) {
	binaryPath := buildBinary(testInstance)
	testDirectory := setupTestDirectory(testInstance, map[string]string{"a.txt": "a"})

	result := runBinary(testInstance, binaryPath, testDirectory, "--depth", "-1")
	require.NotZero(testInstance, result.exitCode)
	require.Empty(testInstance, result.stdout)
}

func TestBinaryVersionFlag(testInstance *testing.T) {
	binaryPath := buildBinary(testInstance)

	result := runBinary(testInstance, binaryPath, testInstance.TempDir(), "--version")
	require.Zero(testInstance, result.exitCode, result.stderr)
	require.True(testInstance, strings.HasPrefix(result.stdout, "rcat version: "))
}
