// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"

	"gopkg.in/urfave/cli.v1"

	"umjunsik/internal/config"
)

var (
	configFileFlag = cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	verbosityFlag = cli.IntFlag{
		Name:  "verbosity",
		Usage: "Logging verbosity: 0=quiet, 1=info, 2=debug",
		Value: 0,
	}
	quietFlag = cli.BoolFlag{
		Name:  "quiet, q",
		Usage: "Suppress warnings and status lines",
	}
	runFlag = cli.BoolFlag{
		Name:  "run, r",
		Usage: "Run the program after building it",
	}
	outputFlag = cli.StringFlag{
		Name:  "output, o",
		Usage: "Path of the executable (or of the emitted text with --emit)",
	}
	emitFlag = cli.StringFlag{
		Name:  "emit",
		Usage: "Print an intermediate form instead of building: tokens, ast or ir",
	}
	writeFlag = cli.BoolFlag{
		Name:  "write, w",
		Usage: "Write the result back to the source file",
	}

	dumpConfigCommand = cli.Command{
		Action:      dumpConfig,
		Name:        "dumpconfig",
		Usage:       "Show configuration values",
		ArgsUsage:   "",
		Description: `The dumpconfig command shows configuration values.`,
	}
)

// loadConfig starts from the defaults, applies the config file and then the
// command line flags.
func loadConfig(ctx *cli.Context) (*config.Config, error) {
	cfg := config.Defaults

	if file := ctx.GlobalString(configFileFlag.Name); file != "" {
		if err := config.Load(file, &cfg); err != nil {
			return nil, err
		}
	}

	if ctx.GlobalIsSet(verbosityFlag.Name) {
		cfg.Verbosity = ctx.GlobalInt(verbosityFlag.Name)
	}
	if ctx.GlobalBool("quiet") {
		cfg.Quiet = true
	}

	return &cfg, nil
}

// dumpConfig is the dumpconfig command.
func dumpConfig(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	out, err := config.Dump(cfg)
	if err != nil {
		return err
	}

	dump := os.Stdout
	if ctx.NArg() > 0 {
		dump, err = os.OpenFile(ctx.Args().Get(0), os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return err
		}
		defer dump.Close()
	}
	if _, err := dump.Write(out); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
