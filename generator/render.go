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
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"go.mercari.io/crudgen/internal"
	"go.mercari.io/crudgen/models"
)

// serviceDTOTemplates maps each kind to its service-layer template.
// Model-layer transfer objects always use DTOStubTemplate.
var serviceDTOTemplates = map[models.DTOKind]TemplateType{
	models.DTOStore:  DTOStoreTemplate,
	models.DTOUpdate: DTOUpdateTemplate,
	models.DTODelete: DTODeleteTemplate,
	models.DTOList:   DTOListTemplate,
}

// Renderer turns a generation context into artifact text. Renders do no
// file I/O apart from loading templates.
type Renderer struct {
	inflector internal.Inflector
	ts        *templateSet
}

// NewRenderer returns a renderer using the templates in templatePath,
// falling back to the embedded defaults.
func NewRenderer(inflector internal.Inflector, templatePath string) *Renderer {
	r := &Renderer{inflector: inflector}
	r.ts = &templateSet{
		funcs: r.newTemplateFuncs(),
		l:     templateLoader(templatePath),
		tpls:  map[string]*template.Template{},
	}
	return r
}

func (r *Renderer) render(tt TemplateType, obj interface{}) (string, error) {
	buf := new(bytes.Buffer)
	if err := r.ts.Execute(buf, tt.Filename(), obj); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", tt, err)
	}
	return buf.String(), nil
}

// RenderModel renders the model class skeleton.
func (r *Renderer) RenderModel(c *models.GenerationContext) (string, error) {
	return r.render(ModelTemplate, c)
}

// RenderModelMethods renders the static CRUD methods spliced into the model.
func (r *Renderer) RenderModelMethods(c *models.GenerationContext) (string, error) {
	return r.render(ModelMethodsTemplate, c)
}

// RenderMigration renders the create-table migration skeleton.
func (r *Renderer) RenderMigration(c *models.GenerationContext) (string, error) {
	return r.render(MigrationTemplate, c)
}

// migrationColumns returns the columns spliced into a migration. The id
// column is declared by the skeleton's $table->id().
func migrationColumns(c *models.GenerationContext) []models.Column {
	cols := make([]models.Column, 0, len(c.Columns))
	for _, col := range c.Columns {
		if col.Name == idField {
			continue
		}
		cols = append(cols, col)
	}
	return cols
}

// RenderMigrationColumns renders one column definition line per column,
// in schema order.
func (r *Renderer) RenderMigrationColumns(c *models.GenerationContext) (string, error) {
	cols := migrationColumns(c)
	lines := make([]string, 0, len(cols))
	for _, col := range cols {
		s, err := r.render(MigrationColumnTemplate, col)
		if err != nil {
			return "", err
		}
		s = strings.TrimRight(s, "\r\n")
		if s == "" || strings.Contains(s, "\n") {
			return "", fmt.Errorf("%s must render exactly one line for column %s", MigrationColumnTemplate.Filename(), col.Name)
		}
		lines = append(lines, s)
	}
	return strings.Join(lines, "\n"), nil
}

// MigrationColumnGuards returns, per column, the text that marks the column
// as already declared in a migration.
func MigrationColumnGuards(c *models.GenerationContext) []string {
	cols := migrationColumns(c)
	guards := make([]string, 0, len(cols))
	for _, col := range cols {
		guards = append(guards, "('"+internal.EscapePHPString(col.Name)+"')")
	}
	return guards
}

// RenderController renders the resource controller.
func (r *Renderer) RenderController(c *models.GenerationContext) (string, error) {
	return r.render(ControllerTemplate, c)
}

// RenderService renders the service class.
func (r *Renderer) RenderService(c *models.GenerationContext) (string, error) {
	return r.render(ServiceTemplate, c)
}

// dtoData is the template data of one transfer object.
type dtoData struct {
	*models.GenerationContext

	Kind      models.DTOKind
	Layer     models.DTOLayer
	Namespace models.Namespace
	Name      string
	Rules     []models.Field
	Excluded  []string
	PerPage   int
	Page      int
}

// RenderDTO renders the transfer object of kind k in layer l.
func (r *Renderer) RenderDTO(c *models.GenerationContext, k models.DTOKind, l models.DTOLayer) (string, error) {
	tt := DTOStubTemplate
	if l == models.DTOLayerService {
		var ok bool
		if tt, ok = serviceDTOTemplates[k]; !ok {
			return "", fmt.Errorf("no template for %s DTO", k)
		}
	}

	d := &dtoData{
		GenerationContext: c,
		Kind:              k,
		Layer:             l,
		Namespace:         c.DTONamespace(l),
		Name:              c.DTOName(k),
		Excluded:          c.UpdateExcluded,
		PerPage:           defaultPerPage,
		Page:              defaultPage,
	}
	if l == models.DTOLayerService {
		d.Rules = DTORules(k, c.Schema)
	}

	return r.render(tt, d)
}

// RenderResponsesHelper renders the shared response helper.
func (r *Renderer) RenderResponsesHelper(c *models.GenerationContext) (string, error) {
	return r.render(ResponsesHelperTemplate, c)
}

// RenderResource renders the API resource class.
func (r *Renderer) RenderResource(c *models.GenerationContext) (string, error) {
	return r.render(ResourceTemplate, c)
}

// RenderRoute renders the route registration line without a line break.
func (r *Renderer) RenderRoute(c *models.GenerationContext) (string, error) {
	s, err := r.render(RouteTemplate, c)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(s), nil
}
