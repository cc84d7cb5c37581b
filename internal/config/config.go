// Package config loads jot's optional configuration file.
//
// Configuration lives in a "jot.toml" in the working directory. Every
// setting has a sensible default so the file is entirely optional.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// File is the name of the config file jot looks for.
const File = "jot.toml"

// Config is jot's configuration.
type Config struct {
	// REPL configures the interactive session.
	REPL REPL `toml:"repl"`

	// Debug enables debug logging.
	Debug bool `toml:"debug"`
}

// REPL holds settings for the interactive session.
type REPL struct {
	// Prompt is the text shown before each line of input.
	Prompt string `toml:"prompt"`
}

// Default returns the [Config] jot uses in the absence of a config file.
func Default() Config {
	return Config{
		REPL: REPL{
			Prompt: "jot> ",
		},
	}
}

// Load reads config from path, layering the file's settings over the
// defaults.
//
// A missing file is not an error, the defaults are returned as is. An
// unrecognised key is an error, it is most likely a typo the user
// would want to know about.
func Load(path string) (Config, error) {
	cfg := Default()

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}

		return Config{}, fmt.Errorf("could not parse %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("unrecognised config keys in %s: %v", path, undecoded)
	}

	return cfg, nil
}
