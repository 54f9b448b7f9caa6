// Package driver turns Lamina IR text into a native executable by running
// the configured backend and linker, and runs the result.
package driver

import (
	"context"
	goerrors "errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/tliron/commonlog"

	"umjunsik/internal/config"
)

var log = commonlog.GetLogger("umjunsik.driver")

// Artifacts lists the files produced by Build
type Artifacts struct {
	Dir        string
	IR         string
	Assembly   string
	Executable string

	tempDir bool // Dir was created by Build
}

// Build writes irText for program name into the work directory, lowers it
// with the backend and links it. The returned executable lives in the work
// directory unless output is non-empty.
func Build(ctx context.Context, cfg *config.Config, irText, name, output string) (art *Artifacts, err error) {
	dir, tempDir := cfg.WorkDir, false
	if dir == "" {
		tmp, mkErr := os.MkdirTemp("", "umjunsik-")
		if mkErr != nil {
			return nil, fmt.Errorf("failed to create work directory: %w", mkErr)
		}
		dir, tempDir = tmp, true
		defer func() {
			if err != nil {
				os.RemoveAll(tmp)
			}
		}()
	} else if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create work directory: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	if base == "" || base == "." {
		base = "main"
	}

	art = &Artifacts{
		Dir:        dir,
		IR:         filepath.Join(dir, base+".lamina"),
		Assembly:   filepath.Join(dir, base+".s"),
		Executable: filepath.Join(dir, base),
		tempDir:    tempDir,
	}
	if output != "" {
		art.Executable = output
	}

	if err := os.WriteFile(art.IR, []byte(irText), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write IR: %w", err)
	}

	if err := runTool(ctx, "backend", cfg.Backend, art.IR, art.Assembly); err != nil {
		return nil, err
	}
	if err := runTool(ctx, "linker", cfg.Linker, art.Assembly, art.Executable); err != nil {
		return nil, err
	}

	return art, nil
}

// Cleanup removes the intermediate files of a build. A work directory created
// by Build is removed as a whole unless the executable was placed inside it.
func (a *Artifacts) Cleanup() error {
	if a.tempDir && !within(a.Dir, a.Executable) {
		return os.RemoveAll(a.Dir)
	}
	var errs []error
	for _, path := range []string{a.IR, a.Assembly} {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			errs = append(errs, err)
		}
	}
	return goerrors.Join(errs...)
}

func within(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	return err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// Run executes exe and returns its exit code. A non-zero exit is not an
// error; failing to start the process is.
func Run(ctx context.Context, exe string, stdout, stderr io.Writer) (int, error) {
	cmd := exec.CommandContext(ctx, exe)
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	log.Debugf("running %s", exe)
	err := cmd.Run()

	var exitErr *exec.ExitError
	if goerrors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	if err != nil {
		return -1, fmt.Errorf("failed to run %s: %w", exe, err)
	}
	return 0, nil
}

func runTool(ctx context.Context, stage string, tool config.Tool, input, output string) error {
	if tool.Command == "" {
		return fmt.Errorf("no %s command configured", stage)
	}

	args := Expand(tool.Args, input, output)
	log.Infof("%s: %s %s", stage, tool.Command, strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, tool.Command, args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		msg := strings.TrimSpace(string(out))
		if msg == "" {
			return fmt.Errorf("%s %s failed: %w", stage, tool.Command, err)
		}
		return fmt.Errorf("%s %s failed: %w\n%s", stage, tool.Command, err, msg)
	}
	return nil
}

// Expand substitutes the input and output placeholders in args
func Expand(args []string, input, output string) []string {
	replacer := strings.NewReplacer(
		config.InputPlaceholder, input,
		config.OutputPlaceholder, output,
	)

	expanded := make([]string, len(args))
	for i, arg := range args {
		expanded[i] = replacer.Replace(arg)
	}
	return expanded
}
