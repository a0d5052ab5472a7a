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

package generator

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"text/template"

	"go.mercari.io/crudgen/tplbin"
)

// TemplateType represents a template type.
type TemplateType uint

// the order here is the order artifacts are generated in.
const (
	ModelTemplate TemplateType = iota
	ModelMethodsTemplate
	MigrationTemplate
	MigrationColumnTemplate
	ControllerTemplate
	ServiceTemplate
	DTOStubTemplate
	DTOStoreTemplate
	DTOUpdateTemplate
	DTODeleteTemplate
	DTOListTemplate
	ResponsesHelperTemplate
	ResourceTemplate
	RouteTemplate
)

// String returns the name for the associated template type.
func (tt TemplateType) String() string {
	var s string
	switch tt {
	case ModelTemplate:
		s = "model"
	case ModelMethodsTemplate:
		s = "model_methods"
	case MigrationTemplate:
		s = "migration"
	case MigrationColumnTemplate:
		s = "migration_column"
	case ControllerTemplate:
		s = "controller"
	case ServiceTemplate:
		s = "service"
	case DTOStubTemplate:
		s = "dto_stub"
	case DTOStoreTemplate:
		s = "dto_store"
	case DTOUpdateTemplate:
		s = "dto_update"
	case DTODeleteTemplate:
		s = "dto_delete"
	case DTOListTemplate:
		s = "dto_list"
	case ResponsesHelperTemplate:
		s = "responses_helper"
	case ResourceTemplate:
		s = "resource"
	case RouteTemplate:
		s = "route"
	default:
		panic("unknown TemplateType")
	}
	return s
}

// Filename returns the template file name.
func (tt TemplateType) Filename() string {
	return tt.String() + ".php.tpl"
}

// templateSet is a set of templates.
type templateSet struct {
	funcs template.FuncMap
	l     func(string) ([]byte, error)
	tpls  map[string]*template.Template
}

// Execute executes a specified template in the template set using the supplied
// obj as its parameters and writing the output to w.
func (ts *templateSet) Execute(w io.Writer, name string, obj interface{}) error {
	tpl, ok := ts.tpls[name]
	if !ok {
		// attempt to load and parse the template
		buf, err := ts.l(name)
		if err != nil {
			return err
		}

		// parse template
		tpl, err = template.New(name).Funcs(ts.funcs).Parse(string(buf))
		if err != nil {
			return err
		}
		ts.tpls[name] = tpl
	}

	return tpl.Execute(w, obj)
}

// templateLoader returns a loader reading name from dir, falling back to
// the embedded defaults for files dir does not provide.
func templateLoader(dir string) func(string) ([]byte, error) {
	return func(name string) ([]byte, error) {
		if dir != "" {
			buf, err := os.ReadFile(filepath.Join(dir, name))
			if err == nil {
				return buf, nil
			}
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("failed to read template %s: %w", name, err)
			}
		}

		buf, err := fs.ReadFile(tplbin.Assets, name)
		if err != nil {
			return nil, fmt.Errorf("failed to read template %s from assets: %w", name, err)
		}
		return buf, nil
	}
}
