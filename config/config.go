// Copyright (c) 2020 Mercari, Inc.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

// Package config loads the optional project configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"
)

// DefaultFilename is looked up in the project root when no file is given.
const DefaultFilename = "crudgen.yml"

// Inflector kinds.
const (
	InflectorRules   = "rules"
	InflectorClassic = "classic"
)

// Inflection is an irregular singular/plural pair.
type Inflection struct {
	Singular string `yaml:"singular"`
	Plural   string `yaml:"plural"`
}

// Config is the project configuration.
type Config struct {
	// Inflector selects the pluralization engine: "rules" or "classic".
	Inflector string `yaml:"inflector"`

	// Inflections are irregular words registered in front of the regular rules.
	Inflections []Inflection `yaml:"inflections"`

	// AppDir is the directory mapped to AppNamespace.
	AppDir string `yaml:"app_dir"`

	// AppNamespace is the root PHP namespace of AppDir.
	AppNamespace string `yaml:"app_namespace"`

	// MigrationsDir holds the migration files.
	MigrationsDir string `yaml:"migrations_dir"`

	// RoutesFile receives the route registration unless overridden on the
	// command line.
	RoutesFile string `yaml:"routes_file"`

	// UpdateExcludedFields are never forwarded by the update transfer
	// object, in addition to id and *_ids relation fields.
	UpdateExcludedFields []string `yaml:"update_excluded_fields"`
}

// Default returns the configuration of a stock Laravel project.
func Default() *Config {
	return &Config{
		Inflector:     InflectorRules,
		AppDir:        "app",
		AppNamespace:  "App",
		MigrationsDir: "database/migrations",
		RoutesFile:    "routes/api.php",
	}
}

// Load reads path and fills unset values from Default. When path is empty
// the default file in root is used if present.
func Load(root, path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = filepath.Join(root, DefaultFilename)
	} else if !filepath.IsAbs(path) {
		path = filepath.Join(root, path)
	}

	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var file Config
	if err := yaml.UnmarshalStrict(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	cfg.merge(&file)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

func (c *Config) merge(o *Config) {
	if o.Inflector != "" {
		c.Inflector = o.Inflector
	}
	if o.AppDir != "" {
		c.AppDir = o.AppDir
	}
	if o.AppNamespace != "" {
		c.AppNamespace = o.AppNamespace
	}
	if o.MigrationsDir != "" {
		c.MigrationsDir = o.MigrationsDir
	}
	if o.RoutesFile != "" {
		c.RoutesFile = o.RoutesFile
	}
	c.Inflections = append(c.Inflections, o.Inflections...)
	c.UpdateExcludedFields = append(c.UpdateExcludedFields, o.UpdateExcludedFields...)
}

// Validate checks values that cannot be defaulted.
func (c *Config) Validate() error {
	switch c.Inflector {
	case InflectorRules, InflectorClassic:
	default:
		return fmt.Errorf("unknown inflector %q (valid: %s, %s)", c.Inflector, InflectorRules, InflectorClassic)
	}

	for i, in := range c.Inflections {
		if in.Singular == "" || in.Plural == "" {
			return fmt.Errorf("inflections[%d]: singular and plural are required", i)
		}
	}

	return nil
}
