// Package config loads the TOML settings shared by the command line tools.
package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"

	"github.com/naoina/toml"
)

// Placeholders substituted in backend and linker arguments
const (
	InputPlaceholder  = "{input}"
	OutputPlaceholder = "{output}"
)

// Tool is an external command invoked by the driver
type Tool struct {
	Command string
	Args    []string
}

type Config struct {
	Backend Tool // IR text to assembly
	Linker  Tool // assembly to executable

	// WorkDir holds intermediate files. Empty means a fresh temp directory.
	WorkDir   string
	KeepFiles bool

	Verbosity int
	Quiet     bool
}

// Defaults is the configuration used when no file is given
var Defaults = Config{
	Backend: Tool{
		Command: "lamina",
		Args:    []string{InputPlaceholder, "-o", OutputPlaceholder},
	},
	Linker: Tool{
		Command: "clang",
		Args:    []string{InputPlaceholder, "-o", OutputPlaceholder},
	},
}

// These settings ensure that TOML keys use the same names as Go struct fields.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		return fmt.Errorf("field '%s' is not defined in %s", field, rt.String())
	},
}

// Load reads file on top of cfg. Keys absent from the file keep the value
// already in cfg.
func Load(file string, cfg *Config) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	return Decode(file, f, cfg)
}

func Decode(name string, r io.Reader, cfg *Config) error {
	err := tomlSettings.NewDecoder(bufio.NewReader(r)).Decode(cfg)
	// Add file name to errors that have a line number.
	if _, ok := err.(*toml.LineError); ok {
		err = errors.New(name + ", " + err.Error())
	}
	return err
}

// Dump renders cfg in the format accepted by Load
func Dump(cfg *Config) ([]byte, error) {
	return tomlSettings.Marshal(cfg)
}
