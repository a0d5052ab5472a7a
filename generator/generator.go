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
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path"
	"path/filepath"
	"time"

	"go.mercari.io/crudgen/config"
	"go.mercari.io/crudgen/internal"
	"go.mercari.io/crudgen/loader"
	"go.mercari.io/crudgen/models"
	"go.mercari.io/crudgen/mutator"
)

// MigrationTimestampFormat prefixes new migration file names.
const MigrationTimestampFormat = "2006_01_02_150405"

// Step identifies one artifact of the generation plan.
type Step int

// the order here is the order steps run in.
const (
	StepModel Step = iota
	StepModelMethods
	StepMigration
	StepMigrationColumns
	StepController
	StepService
	StepDTO
	StepResponsesHelper
	StepResource
	StepRoute
)

func (s Step) String() string {
	switch s {
	case StepModel:
		return "model"
	case StepModelMethods:
		return "model methods"
	case StepMigration:
		return "migration"
	case StepMigrationColumns:
		return "migration columns"
	case StepController:
		return "controller"
	case StepService:
		return "service"
	case StepDTO:
		return "dto"
	case StepResponsesHelper:
		return "responses helper"
	case StepResource:
		return "resource"
	case StepRoute:
		return "route"
	default:
		panic("unknown Step")
	}
}

// StepResult is the outcome of one artifact.
type StepResult struct {
	Step   Step
	Path   string
	Status mutator.Status
	Detail string
	Err    error
}

// Report lists the step results of one run in execution order.
type Report struct {
	Names   *models.Names
	Results []*StepResult
}

// Count returns the number of results with status s.
func (r *Report) Count(s mutator.Status) int {
	n := 0
	for _, res := range r.Results {
		if res.Status == s {
			n++
		}
	}
	return n
}

// Failed reports whether a step failed.
func (r *Report) Failed() bool {
	return r.Count(mutator.StatusFailed) > 0
}

// Request is the resolved command-line input of one run.
type Request struct {
	// Name is the entity name, e.g. "product" or "OrderItem".
	Name string

	// SchemaPath is the schema file, relative to the project root unless
	// absolute. Empty means no fields.
	SchemaPath string

	// RoutePath is the route file, relative to the project root unless
	// absolute. Empty means the configured default.
	RoutePath string

	// ControllerSubPath is the namespace below the controllers namespace.
	ControllerSubPath string
}

type GeneratorOption struct {
	Config       *config.Config
	TemplatePath string

	// Force regenerates the controller, service, DTOs and resource.
	Force bool

	// NoSkeleton skips the model, migration and resource skeletons for
	// projects whose framework created them already.
	NoSkeleton bool

	Now    func() time.Time
	Logger *slog.Logger

	// Progress, when set, receives every result as soon as it is known.
	Progress func(*StepResult)
}

func NewGenerator(fsys mutator.FS, inflector internal.Inflector, opt GeneratorOption) *Generator {
	cfg := opt.Config
	if cfg == nil {
		cfg = config.Default()
	}
	now := opt.Now
	if now == nil {
		now = time.Now
	}
	logger := opt.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Generator{
		fs:         fsys,
		inflector:  inflector,
		renderer:   NewRenderer(inflector, opt.TemplatePath),
		cfg:        cfg,
		force:      opt.Force,
		noSkeleton: opt.NoSkeleton,
		now:        now,
		logger:     logger,
		progress:   opt.Progress,
	}
}

type Generator struct {
	fs        mutator.FS
	inflector internal.Inflector
	renderer  *Renderer
	cfg       *config.Config

	force      bool
	noSkeleton bool

	now      func() time.Time
	logger   *slog.Logger
	progress func(*StepResult)
}

// run is the state of one Generate call.
type run struct {
	g      *Generator
	ctx    *models.GenerationContext
	report *Report

	migrationPath string
}

// Generate runs the whole plan for req. It stops at the first failing step
// and returns the report so far together with the error. Generate checks
// ctx between steps and never interrupts a step midway.
func (g *Generator) Generate(ctx context.Context, req Request) (*Report, error) {
	report := &Report{}

	names, err := internal.Resolve(g.inflector, req.Name)
	if err != nil {
		return report, err
	}
	report.Names = names

	schema, err := loader.LoadSchema(g.resolvePath(req.SchemaPath), names.ModelName)
	if err != nil {
		return report, err
	}

	gctx, err := NewGenerationContext(names, schema, req.ControllerSubPath, g.cfg)
	if err != nil {
		return report, err
	}

	g.logger.Debug("resolved names",
		"model", names.ModelName,
		"table", names.TableName,
		"route", names.RouteSlug,
		"fields", schema.Len(),
		"controller", gctx.ControllerFQN(),
	)

	r := &run{g: g, ctx: gctx, report: report}
	steps := []func() error{
		r.model,
		r.modelMethods,
		r.migration,
		r.migrationColumns,
		r.controller,
		r.service,
		r.dtos,
		r.responsesHelper,
		r.resource,
		func() error { return r.route(req.RoutePath) },
	}
	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		if err := step(); err != nil {
			return report, err
		}
	}

	return report, nil
}

// resolvePath makes p relative to the project root unless it is absolute.
func (g *Generator) resolvePath(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(g.fs.Root(), p)
}

func (r *run) record(res *StepResult) {
	r.report.Results = append(r.report.Results, res)
	if res.Err != nil {
		r.g.logger.Debug("step failed", "step", res.Step.String(), "path", res.Path, "error", res.Err)
	} else {
		r.g.logger.Debug("step done", "step", res.Step.String(), "path", res.Path, "status", res.Status.String(), "detail", res.Detail)
	}
	if r.g.progress != nil {
		r.g.progress(res)
	}
}

func (r *run) fail(step Step, p string, err error) error {
	r.record(&StepResult{Step: step, Path: p, Status: mutator.StatusFailed, Detail: err.Error(), Err: err})
	return err
}

// apply renders with fn and applies the result as t.
func (r *run) apply(step Step, t *mutator.Target, fn func(*models.GenerationContext) (string, error)) error {
	return r.applyWrap(step, t, fn, func(err error) error {
		return fmt.Errorf("%s: %w", step, err)
	})
}

// applyWrap is apply with a custom mapping of mutation errors.
func (r *run) applyWrap(step Step, t *mutator.Target, fn func(*models.GenerationContext) (string, error), wrap func(error) error) error {
	content, err := fn(r.ctx)
	if err != nil {
		return r.fail(step, t.Path, err)
	}
	t.Content = content

	r.g.logger.Debug("applying", "step", step.String(), "path", t.Path, "mode", t.Mode.String())

	res, err := mutator.Apply(r.g.fs, t)
	if err != nil {
		return r.fail(step, t.Path, wrap(err))
	}

	r.record(&StepResult{Step: step, Path: res.Path, Status: res.Status, Detail: res.Detail})
	return nil
}

func (r *run) skip(step Step, p, detail string) {
	r.record(&StepResult{Step: step, Path: p, Status: mutator.StatusSkipped, Detail: detail})
}

func (r *run) modelPath() string {
	return path.Join(r.ctx.ModelNamespace.Dir, r.ctx.ModelName+".php")
}

func (r *run) model() error {
	if r.g.noSkeleton {
		return nil
	}
	return r.apply(StepModel, &mutator.Target{
		Path: r.modelPath(),
		Mode: mutator.CreateIfAbsent,
	}, r.g.renderer.RenderModel)
}

func (r *run) modelMethods() error {
	return r.apply(StepModelMethods, &mutator.Target{
		Path:  r.modelPath(),
		Mode:  mutator.InsertBeforeMarker,
		Guard: "function store" + r.ctx.ModelName,
	}, r.g.renderer.RenderModelMethods)
}

func (r *run) migrationPattern() string {
	return path.Join(r.g.cfg.MigrationsDir, "*_create_"+r.ctx.TableName+"_table.php")
}

func (r *run) migration() error {
	pattern := r.migrationPattern()
	matches, err := r.g.fs.Glob(pattern)
	if err != nil {
		return r.fail(StepMigration, pattern, err)
	}
	if len(matches) > 0 {
		r.migrationPath = matches[0]
		if !r.g.noSkeleton {
			r.skip(StepMigration, r.migrationPath, "already exists")
		}
		return nil
	}
	if r.g.noSkeleton {
		return nil
	}

	p := path.Join(r.g.cfg.MigrationsDir, r.g.now().Format(MigrationTimestampFormat)+"_create_"+r.ctx.TableName+"_table.php")
	if err := r.apply(StepMigration, &mutator.Target{
		Path: p,
		Mode: mutator.CreateIfAbsent,
	}, r.g.renderer.RenderMigration); err != nil {
		return err
	}
	r.migrationPath = p
	return nil
}

func (r *run) migrationColumns() error {
	if len(r.ctx.Columns) == 0 {
		r.skip(StepMigrationColumns, r.migrationPath, "no schema fields")
		return nil
	}
	if len(migrationColumns(r.ctx)) == 0 {
		r.skip(StepMigrationColumns, r.migrationPath, "no columns to add")
		return nil
	}
	if r.migrationPath == "" {
		pattern := r.migrationPattern()
		return r.fail(StepMigrationColumns, pattern, &MigrationFileNotFoundError{Table: r.ctx.TableName, Pattern: pattern})
	}

	return r.apply(StepMigrationColumns, &mutator.Target{
		Path:   r.migrationPath,
		Mode:   mutator.AnchoredBlockInsert,
		Guards: MigrationColumnGuards(r.ctx),
	}, r.g.renderer.RenderMigrationColumns)
}

func (r *run) controller() error {
	return r.apply(StepController, &mutator.Target{
		Path:      path.Join(r.ctx.ControllerNamespace.Dir, r.ctx.ControllerName+".php"),
		Mode:      mutator.CreateIfAbsent,
		Overwrite: r.g.force,
	}, r.g.renderer.RenderController)
}

func (r *run) service() error {
	return r.apply(StepService, &mutator.Target{
		Path:      path.Join(r.ctx.ServiceNamespace.Dir, r.ctx.ServiceName+".php"),
		Mode:      mutator.CreateIfAbsent,
		Overwrite: r.g.force,
	}, r.g.renderer.RenderService)
}

func (r *run) dtos() error {
	for _, k := range models.DTOKinds {
		for _, l := range []models.DTOLayer{models.DTOLayerModel, models.DTOLayerService} {
			err := r.apply(StepDTO, &mutator.Target{
				Path:      path.Join(r.ctx.DTONamespace(l).Dir, r.ctx.DTOName(k)+".php"),
				Mode:      mutator.CreateIfAbsent,
				Overwrite: r.g.force,
			}, func(c *models.GenerationContext) (string, error) {
				return r.g.renderer.RenderDTO(c, k, l)
			})
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *run) responsesHelper() error {
	return r.apply(StepResponsesHelper, &mutator.Target{
		Path: path.Join(r.ctx.HelperNamespace.Dir, "ResponsesHelper.php"),
		Mode: mutator.CreateIfAbsent,
	}, r.g.renderer.RenderResponsesHelper)
}

func (r *run) resource() error {
	if r.g.noSkeleton {
		return nil
	}
	return r.apply(StepResource, &mutator.Target{
		Path:      path.Join(r.ctx.ResourceNamespace.Dir, r.ctx.ResourceName+".php"),
		Mode:      mutator.CreateIfAbsent,
		Overwrite: r.g.force,
	}, r.g.renderer.RenderResource)
}

func (r *run) route(routePath string) error {
	if routePath == "" {
		routePath = r.g.cfg.RoutesFile
	}

	return r.applyWrap(StepRoute, &mutator.Target{
		Path:  routePath,
		Mode:  mutator.AppendIfAbsent,
		Guard: r.ctx.ControllerFQN(),
	}, r.g.renderer.RenderRoute, func(err error) error {
		var notFound *mutator.FileNotFoundError
		if errors.As(err, &notFound) {
			return &RouteFileNotFoundError{Path: notFound.Path}
		}
		return fmt.Errorf("%s: %w", StepRoute, err)
	})
}
