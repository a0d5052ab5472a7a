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
	"fmt"
	"strings"
	"text/template"

	"go.mercari.io/crudgen/internal"
	"go.mercari.io/crudgen/models"
)

// newTemplateFuncs returns a set of template funcs bound to the supplied renderer.
// pluralize, snake and camel are unused by the defaults and kept for custom
// templates; tplbin/README.md lists them for create-template users.
func (r *Renderer) newTemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"phpstr":    internal.EscapePHPString,
		"phplist":   r.phplist,
		"dto":       r.dto,
		"dtofqn":    r.dtofqn,
		"pluralize": r.pluralize,
		"snake":     internal.CamelToSnake,
		"camel":     internal.SnakeToCamel,
	}
}

// phplist renders values as the items of a PHP array literal.
func (r *Renderer) phplist(values []string) string {
	quoted := make([]string, 0, len(values))
	for _, v := range values {
		quoted = append(quoted, "'"+internal.EscapePHPString(v)+"'")
	}
	return strings.Join(quoted, ", ")
}

// dto returns the class name of the transfer object of the named kind.
func (r *Renderer) dto(kind string, c *models.GenerationContext) (string, error) {
	k, ok := models.ParseDTOKind(kind)
	if !ok {
		return "", fmt.Errorf("unknown DTO kind %q", kind)
	}
	return c.DTOName(k), nil
}

// dtofqn returns the fully-qualified class name of the service-layer
// transfer object of the named kind.
func (r *Renderer) dtofqn(kind string, c *models.GenerationContext) (string, error) {
	name, err := r.dto(kind, c)
	if err != nil {
		return "", err
	}
	return c.DTOServiceNamespace.Name + `\` + name, nil
}

func (r *Renderer) pluralize(s string) string {
	return r.inflector.Pluralize(s)
}
