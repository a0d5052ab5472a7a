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

package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
	"go.mercari.io/crudgen/config"
	"go.mercari.io/crudgen/generator"
	"go.mercari.io/crudgen/internal"
	"go.mercari.io/crudgen/mutator"
)

const exampleUsage = `
  # Scaffold a product CRUD package in the current Laravel project
  crudgen product

  # Use field rules from a schema file and register the route in routes/v1.php
  crudgen product --schema database/schema.yml --api-route routes/v1.php

  # Put the controller under App\Http\Controllers\Admin
  crudgen order_item --controller-route Admin

  # Show what would be written
  crudgen product --schema database/schema.yml --dry-run
`

var version string

var (
	rootOpts = internal.ArgType{}
	rootCmd  = &cobra.Command{
		Use:   "crudgen NAME",
		Short: "crudgen scaffolds the model, controller, service, DTOs and route of a Laravel CRUD resource.",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("must specify 1 argument")
			}
			return nil
		},
		Example: strings.Trim(exampleUsage, "\n"),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := processArgs(&rootOpts, args); err != nil {
				return err
			}
			return runGenerate(cmd, &rootOpts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       versionInfo(),
	}
)

func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	setRootOpts(rootCmd, &rootOpts)
}

func setRootOpts(cmd *cobra.Command, opts *internal.ArgType) {
	cmd.Flags().StringVar(&opts.SchemaFile, "schema", "", "schema file mapping model names to field rules")
	cmd.Flags().StringVar(&opts.APIRoute, "api-route", "", "route file to register the resource in (default from config, routes/api.php)")
	cmd.Flags().StringVar(&opts.ControllerRoute, "controller-route", "", "controller sub-namespace, e.g. Admin/V1")
	cmd.Flags().StringVar(&opts.ProjectRoot, "project-root", "", "root directory of the project (default current directory)")
	cmd.Flags().StringVar(&opts.ConfigFile, "config", "", "config file (default "+config.DefaultFilename+" in the project root)")
	cmd.Flags().StringVar(&opts.TemplatePath, "template-path", "", "user supplied template path")
	cmd.Flags().BoolVar(&opts.Force, "force", false, "regenerate existing controller, service, DTOs and resource")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "print the files that would be written without writing them")
	cmd.Flags().BoolVar(&opts.NoSkeleton, "no-skeleton", false, "do not create model, migration and resource skeletons")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "print debug logs to stderr")
}

func processArgs(args *internal.ArgType, argv []string) error {
	args.Name = argv[0]

	// determine project root
	if args.ProjectRoot == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		args.ProjectRoot = cwd
	}
	root, err := filepath.Abs(args.ProjectRoot)
	if err != nil {
		return err
	}
	info, err := os.Stat(root)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("project root is not directory")
	}
	args.ProjectRoot = root

	// check template path
	if args.TemplatePath != "" {
		info, err := os.Stat(args.TemplatePath)
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return fmt.Errorf("template path is not directory")
		}
	}

	return nil
}

func runGenerate(cmd *cobra.Command, args *internal.ArgType) error {
	cfg, err := config.Load(args.ProjectRoot, args.ConfigFile)
	if err != nil {
		return err
	}

	inflector, err := internal.NewInflector(cfg.Inflector, cfg.Inflections)
	if err != nil {
		return fmt.Errorf("load inflection rule failed: %v", err)
	}

	var (
		fsys mutator.FS = mutator.NewOSFS(args.ProjectRoot)
		dry  *mutator.DryRunFS
	)
	if args.DryRun {
		dry = mutator.NewDryRunFS(fsys)
		fsys = dry
	}

	p := newPrinter(cmd.OutOrStdout(), args.ProjectRoot)
	g := generator.NewGenerator(fsys, inflector, generator.GeneratorOption{
		Config:       cfg,
		TemplatePath: args.TemplatePath,
		Force:        args.Force,
		NoSkeleton:   args.NoSkeleton,
		Logger:       newLogger(cmd.ErrOrStderr(), args.Verbose),
		Progress:     p.Step,
	})

	p.Start(args.Name, args.DryRun)
	report, err := g.Generate(cmd.Context(), generator.Request{
		Name:              args.Name,
		SchemaPath:        args.SchemaFile,
		RoutePath:         args.APIRoute,
		ControllerSubPath: args.ControllerRoute,
	})
	if dry != nil {
		p.Planned(dry.Writes())
	}
	if err != nil {
		return err
	}

	p.Done(report)
	return nil
}

func versionInfo() string {
	if version != "" {
		return version
	}

	// For those who "go install" crudgen
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "(devel)"
	}
	return info.Main.Version
}
