// SPDX-License-Identifier: Apache-2.0
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	"gopkg.in/urfave/cli.v1"

	"umjunsik/grammar"
	"umjunsik/internal/compiler"
	"umjunsik/internal/config"
	"umjunsik/internal/driver"
	"umjunsik/internal/errors"
)

var version = "0.1.0"

func main() {
	app := cli.NewApp()
	app.Name = "umjunsik"
	app.Usage = "compile Umjunsik programs to Lamina IR and native executables"
	app.Version = version
	app.ArgsUsage = "<file.umm>"
	app.Flags = []cli.Flag{
		configFileFlag,
		verbosityFlag,
		quietFlag,
		runFlag,
		outputFlag,
		emitFlag,
	}
	app.Before = func(ctx *cli.Context) error {
		cfg, err := loadConfig(ctx)
		if err != nil {
			return err
		}
		commonlog.Configure(cfg.Verbosity, nil)
		return nil
	}
	app.Action = build
	app.Commands = []cli.Command{
		{
			Action:    check,
			Name:      "check",
			Usage:     "Report diagnostics without building",
			ArgsUsage: "<file.umm>...",
		},
		{
			Action:    format,
			Name:      "fmt",
			Usage:     "Print sources in canonical layout",
			ArgsUsage: "<file.umm>...",
			Flags:     []cli.Flag{writeFlag},
		},
		dumpConfigCommand,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// build compiles one source file and either emits an intermediate form or
// produces (and optionally runs) an executable.
func build(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return cli.NewExitError("Usage: umjunsik [options] <file.umm>", 2)
	}

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	startTime := time.Now()
	path := ctx.Args().First()

	result, ok := compileFile(path, cfg)
	if !ok {
		color.Red("Compilation failed after %s", formatDuration(time.Since(startTime)))
		return cli.NewExitError("", 1)
	}

	if emit := ctx.String(emitFlag.Name); emit != "" {
		return emitResult(result, emit, ctx.String("output"))
	}

	bg, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	art, err := driver.Build(bg, cfg, result.IR, path, ctx.String("output"))
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	if !cfg.KeepFiles {
		if err := art.Cleanup(); err != nil {
			return err
		}
	}

	if !cfg.Quiet {
		color.Green("Successfully built %s in %s", art.Executable, formatDuration(time.Since(startTime)))
	}

	if !ctx.Bool("run") {
		return nil
	}

	exe := art.Executable
	if !filepath.IsAbs(exe) && !strings.ContainsRune(exe, filepath.Separator) {
		exe = "." + string(filepath.Separator) + exe
	}
	code, err := driver.Run(bg, exe, os.Stdout, os.Stderr)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	if code != 0 {
		return cli.NewExitError("", code)
	}
	return nil
}

// check reports diagnostics for every file given
func check(ctx *cli.Context) error {
	if ctx.NArg() == 0 {
		return cli.NewExitError("Usage: umjunsik check <file.umm>...", 2)
	}

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	startTime := time.Now()
	failed := 0
	for _, path := range ctx.Args() {
		if _, ok := compileFile(path, cfg); !ok {
			failed++
		}
	}

	duration := formatDuration(time.Since(startTime))
	if failed > 0 {
		color.Red("%d of %d files failed after %s", failed, ctx.NArg(), duration)
		return cli.NewExitError("", 1)
	}
	if !cfg.Quiet {
		color.Green("Successfully checked %d files in %s", ctx.NArg(), duration)
	}
	return nil
}

// format prints or rewrites every file given in canonical layout
func format(ctx *cli.Context) error {
	if ctx.NArg() == 0 {
		return cli.NewExitError("Usage: umjunsik fmt [-w] <file.umm>...", 2)
	}

	failed := false
	for _, path := range ctx.Args() {
		source, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		formatted, err := grammar.Format(path, string(source))
		if err != nil {
			grammar.ReportParseError(string(source), err)
			failed = true
			continue
		}

		if !ctx.Bool("write") {
			fmt.Print(formatted)
			continue
		}
		if formatted != string(source) {
			if err := os.WriteFile(path, []byte(formatted), 0o644); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
		}
	}

	if failed {
		return cli.NewExitError("", 1)
	}
	return nil
}

// compileFile compiles path and prints its diagnostics. Warnings are
// suppressed in quiet mode.
func compileFile(path string, cfg *config.Config) (*compiler.Result, bool) {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read file: %v\n", err)
		return nil, false
	}

	result, err := compiler.Compile(path, string(source))
	reporter := errors.NewErrorReporter(path, string(source))

	if err != nil {
		if cerr, ok := err.(*compiler.Error); ok {
			fmt.Print(reporter.FormatAll(cerr.Diagnostics))
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		return result, false
	}

	if !cfg.Quiet {
		fmt.Print(reporter.FormatAll(result.Warnings))
	}
	return result, true
}

func emitResult(result *compiler.Result, emit, output string) error {
	var text string
	switch emit {
	case "tokens":
		var b strings.Builder
		table := tablewriter.NewWriter(&b)
		table.SetHeader([]string{"Pos", "Type", "Lexeme", "Value"})
		table.SetAutoFormatHeaders(false)
		for _, tok := range result.Tokens {
			table.Append([]string{
				fmt.Sprintf("%d:%d", tok.Position.Line, tok.Position.Column),
				tok.Type.String(),
				fmt.Sprintf("%q", tok.Lexeme),
				strconv.FormatInt(tok.Value, 10),
			})
		}
		table.Render()
		text = b.String()
	case "ast":
		text = result.Program.String()
	case "ir":
		text = result.IR
	default:
		return cli.NewExitError(fmt.Sprintf("unknown --emit value %q (want tokens, ast or ir)", emit), 2)
	}

	var w io.Writer = os.Stdout
	if output != "" && output != "-" {
		f, err := os.Create(output)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	_, err := io.WriteString(w, text)
	return err
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
