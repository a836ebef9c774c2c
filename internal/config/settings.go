// Package config loads the optional a11y-gate.yaml settings file. The file
// only relocates the pipeline's working directories; the standard registry
// itself is compile-time configuration and never read from disk.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is looked up in the current directory when no explicit
// settings path is given.
const DefaultFileName = "a11y-gate.yaml"

type Settings struct {
	ResultsDir string `yaml:"results_dir"`
	ReportsDir string `yaml:"reports_dir"`
	RunLog     string `yaml:"run_log"`
}

// Load reads settings from path. A missing file at the default location is
// not an error; the zero Settings value keeps the CWD defaults. An explicit
// path that cannot be read or parsed is an error.
func Load(path string) (Settings, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFileName
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return Settings{}, nil
		}
		return Settings{}, fmt.Errorf("read settings %s: %w", path, err)
	}
	var s Settings
	if err := yaml.Unmarshal(b, &s); err != nil {
		return Settings{}, fmt.Errorf("parse settings %s: %w", path, err)
	}
	return s, nil
}
