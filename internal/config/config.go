// Package config loads and validates the texkit.toml snippet
// configuration.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/samber/oops"
)

// Config file names tried in order at each directory level.
var configNames = []string{"texkit.toml", ".texkit.toml"}

// Load reads, decodes, and validates a texkit config. With an empty path
// the config file is located by walking up from the working directory.
func Load(path string) (*Config, error) {
	located, err := locate(path)
	if err != nil {
		return nil, err
	}

	cfg, err := parse(located)
	if err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Anchor the output dir to the config location so render results do
	// not depend on where the command was invoked.
	if !filepath.IsAbs(cfg.Output) {
		cfg.Output = filepath.Clean(filepath.Join(cfg.ConfigDir, cfg.Output))
	}

	return cfg, nil
}

// locate returns the config file to load: the explicit path when one is
// given, otherwise the nearest config file at or above the working
// directory.
func locate(path string) (string, error) {
	if path == "" {
		return FindConfigFile()
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", oops.
				Code("CONFIG_NOT_FOUND").
				With("path", path).
				Hint("Create the file or pass a valid --config path").
				Errorf("config file %q does not exist", path)
		}

		return "", oops.Wrapf(err, "checking config file %q", path)
	}

	return path, nil
}

func parse(path string) (*Config, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, oops.Wrapf(err, "resolving absolute config path")
	}

	k := koanf.New(".")
	if loadErr := k.Load(file.Provider(abs), toml.Parser()); loadErr != nil {
		return nil, oops.
			Code("CONFIG_INVALID").
			With("path", abs).
			Hint("Fix TOML syntax and required fields in your config").
			Wrapf(loadErr, "loading config from %q", abs)
	}

	cfg := &Config{ConfigDir: filepath.Dir(abs)}
	if unmarshalErr := k.Unmarshal("", cfg); unmarshalErr != nil {
		return nil, oops.
			Code("CONFIG_INVALID").
			With("path", abs).
			Hint("Fix config structure to match the texkit schema").
			Wrapf(unmarshalErr, "decoding config from %q", abs)
	}

	return cfg, nil
}

// FindConfigFile walks from the working directory toward the filesystem
// root and returns the first texkit.toml or .texkit.toml found.
func FindConfigFile() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", oops.Wrapf(err, "getting working directory")
	}

	for {
		for _, name := range configNames {
			candidate := filepath.Join(dir, name)
			_, statErr := os.Stat(candidate)
			switch {
			case statErr == nil:
				return candidate, nil
			case !errors.Is(statErr, fs.ErrNotExist):
				return "", oops.Wrapf(statErr, "checking for config file at %q", candidate)
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", oops.
				Code("CONFIG_NOT_FOUND").
				Hint("Run 'texkit init' to create a config file").
				Errorf("no texkit.toml or .texkit.toml found in any parent directory")
		}

		dir = parent
	}
}
