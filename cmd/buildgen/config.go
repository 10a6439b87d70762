package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v4"
)

// configFile is looked up in the working directory to supply flag defaults.
const configFile = ".buildgen.yaml"

// fileConfig mirrors the command-line flags. Zero values mean the key was
// absent and the built-in default stays.
type fileConfig struct {
	Tags    string `yaml:"tags"`
	Tests   bool   `yaml:"tests"`
	Output  string `yaml:"output"`
	Color   string `yaml:"color"`
	Verbose bool   `yaml:"verbose"`
}

// loadFileConfig reads the config file in the directory. A missing file is
// not an error; it returns the zero config.
func loadFileConfig(dir string) (fileConfig, error) {
	var cfg fileConfig

	raw, err := os.ReadFile(filepath.Join(dir, configFile))
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", configFile, err)
	}
	return cfg, nil
}

// merge applies the file config to the flags that were not given on the
// command line. given reports whether the named flag was set explicitly.
func (c fileConfig) merge(given func(name string) bool) {
	if c.Tags != "" && !given("t") {
		*tFlag = c.Tags
	}
	if c.Tests && !given("tests") {
		*testsFlag = true
	}
	if c.Output != "" && !given("o") {
		*oFlag = c.Output
	}
	if c.Color != "" && !given("c") {
		*cFlag = c.Color
	}
	if c.Verbose && !given("v") {
		*vFlag = true
	}
}
