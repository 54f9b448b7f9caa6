package driver

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"umjunsik/internal/config"
)

func TestExpand(t *testing.T) {
	args := []string{"{input}", "-o", "{output}", "--map={input}.map", "-O2"}
	got := Expand(args, "a.lamina", "a.s")

	assert.Equal(t, []string{"a.lamina", "-o", "a.s", "--map=a.lamina.map", "-O2"}, got)
	assert.Equal(t, "{input}", args[0], "arguments must not be modified in place")
}

func TestBuildWithCopyTools(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses cp")
	}
	if _, err := exec.LookPath("cp"); err != nil {
		t.Skip("cp not available")
	}

	dir := t.TempDir()
	cfg := config.Defaults
	cfg.WorkDir = dir
	cfg.Backend = config.Tool{Command: "cp", Args: []string{"{input}", "{output}"}}
	cfg.Linker = config.Tool{Command: "cp", Args: []string{"{input}", "{output}"}}

	art, err := Build(context.Background(), &cfg, "fn @main() -> i64 {}\n", "prog.umm", "")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "prog.lamina"), art.IR)
	assert.Equal(t, filepath.Join(dir, "prog.s"), art.Assembly)
	assert.Equal(t, filepath.Join(dir, "prog"), art.Executable)

	data, err := os.ReadFile(art.Executable)
	require.NoError(t, err)
	assert.Equal(t, "fn @main() -> i64 {}\n", string(data))

	require.NoError(t, art.Cleanup())
	assert.NoFileExists(t, art.IR)
	assert.NoFileExists(t, art.Assembly)
	assert.FileExists(t, art.Executable)
}

func TestBuildReportsToolFailure(t *testing.T) {
	cfg := config.Defaults
	cfg.WorkDir = t.TempDir()
	cfg.Backend = config.Tool{Command: "umjunsik-no-such-backend"}

	_, err := Build(context.Background(), &cfg, "", "prog.umm", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "backend")
}

func copyToolsConfig(t *testing.T) config.Config {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("uses cp")
	}
	if _, err := exec.LookPath("cp"); err != nil {
		t.Skip("cp not available")
	}
	cfg := config.Defaults
	cfg.WorkDir = ""
	cfg.Backend = config.Tool{Command: "cp", Args: []string{"{input}", "{output}"}}
	cfg.Linker = config.Tool{Command: "cp", Args: []string{"{input}", "{output}"}}
	return cfg
}

func TestCleanupRemovesTemporaryWorkDir(t *testing.T) {
	cfg := copyToolsConfig(t)
	output := filepath.Join(t.TempDir(), "prog")

	art, err := Build(context.Background(), &cfg, "fn @main() -> i64 {}\n", "prog.umm", output)
	require.NoError(t, err)
	assert.DirExists(t, art.Dir)

	require.NoError(t, art.Cleanup())
	assert.NoDirExists(t, art.Dir)
	assert.FileExists(t, output)
}

func TestCleanupKeepsTemporaryWorkDirHoldingExecutable(t *testing.T) {
	cfg := copyToolsConfig(t)

	art, err := Build(context.Background(), &cfg, "fn @main() -> i64 {}\n", "prog.umm", "")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(art.Dir) })

	require.NoError(t, art.Cleanup())
	assert.NoFileExists(t, art.IR)
	assert.NoFileExists(t, art.Assembly)
	assert.FileExists(t, art.Executable)
}

func TestFailedBuildRemovesTemporaryWorkDir(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("TMPDIR", tmp)

	cfg := config.Defaults
	cfg.WorkDir = ""
	cfg.Backend = config.Tool{Command: "umjunsik-no-such-backend"}

	_, err := Build(context.Background(), &cfg, "", "prog.umm", "")
	require.Error(t, err)

	entries, err := os.ReadDir(tmp)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRunPropagatesExitCode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses /bin/sh")
	}

	script := filepath.Join(t.TempDir(), "exit3")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\necho hi\nexit 3\n"), 0o755))

	var stdout, stderr bytes.Buffer
	code, err := Run(context.Background(), script, &stdout, &stderr)
	require.NoError(t, err)
	assert.Equal(t, 3, code)
	assert.Equal(t, "hi\n", stdout.String())

	_, err = Run(context.Background(), filepath.Join(t.TempDir(), "missing"), &stdout, &stderr)
	assert.Error(t, err)
}
