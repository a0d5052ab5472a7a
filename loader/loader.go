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

// Package loader reads field schemas and maps them to migration columns.
package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"

	"go.mercari.io/crudgen/models"
	"gopkg.in/yaml.v2"
)

// SchemaFileNotFoundError is returned when a schema path was given but
// nothing exists there.
type SchemaFileNotFoundError struct {
	Path string
}

func (e *SchemaFileNotFoundError) Error() string {
	return fmt.Sprintf("schema file not found: %s", e.Path)
}

// SchemaFormatError is returned when the schema source is not a mapping of
// model names to flat field/rule mappings.
type SchemaFormatError struct {
	Path   string
	Reason string
}

func (e *SchemaFormatError) Error() string {
	return fmt.Sprintf("invalid schema %s: %s", e.Path, e.Reason)
}

var fieldNameRegexp = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// LoadSchema reads the schema file at path and returns the fields declared
// for modelName. An empty path yields an empty schema.
func LoadSchema(path, modelName string) (*models.Schema, error) {
	if path == "" {
		return &models.Schema{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &SchemaFileNotFoundError{Path: path}
		}
		return nil, fmt.Errorf("failed to read schema %s: %w", path, err)
	}

	return ParseSchema(data, path, modelName)
}

// ParseSchema decodes a YAML or JSON document. Every entry is validated,
// not only the one for modelName, so a broken file fails regardless of
// which model is generated.
func ParseSchema(data []byte, path, modelName string) (*models.Schema, error) {
	var doc yaml.MapSlice
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &SchemaFormatError{Path: path, Reason: err.Error()}
	}

	var found *models.Schema
	for _, item := range doc {
		name, ok := item.Key.(string)
		if !ok {
			return nil, &SchemaFormatError{Path: path, Reason: fmt.Sprintf("model name %v is not a string", item.Key)}
		}

		schema, err := parseFields(path, name, item.Value)
		if err != nil {
			return nil, err
		}
		if name == modelName && found == nil {
			found = schema
		}
	}

	if found == nil {
		return &models.Schema{}, nil
	}
	return found, nil
}

func parseFields(path, model string, v interface{}) (*models.Schema, error) {
	schema := &models.Schema{}
	if v == nil {
		return schema, nil
	}

	fields, ok := v.(yaml.MapSlice)
	if !ok {
		return nil, &SchemaFormatError{Path: path, Reason: fmt.Sprintf("%s: expected a mapping of field names to rules", model)}
	}

	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		name, ok := f.Key.(string)
		if !ok || !fieldNameRegexp.MatchString(name) {
			return nil, &SchemaFormatError{Path: path, Reason: fmt.Sprintf("%s: invalid field name %v", model, f.Key)}
		}
		if seen[name] {
			return nil, &SchemaFormatError{Path: path, Reason: fmt.Sprintf("%s: duplicate field %q", model, name)}
		}
		seen[name] = true

		rule, ok := f.Value.(string)
		if !ok {
			return nil, &SchemaFormatError{Path: path, Reason: fmt.Sprintf("%s.%s: rule must be a string, got %T", model, name, f.Value)}
		}

		schema.Fields = append(schema.Fields, models.Field{Name: name, Rule: rule})
	}

	return schema, nil
}
