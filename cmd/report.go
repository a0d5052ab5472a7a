package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"go.mercari.io/crudgen/generator"
	"go.mercari.io/crudgen/mutator"
)

// printer writes step progress for humans.
type printer struct {
	w    io.Writer
	root string
}

func newPrinter(w io.Writer, root string) *printer {
	return &printer{w: w, root: root}
}

// statusColor returns a color-formatted status string.
func statusColor(status mutator.Status) string {
	switch status {
	case mutator.StatusCreated:
		return color.New(color.FgGreen).Sprint("CREATE ")
	case mutator.StatusPatched:
		return color.New(color.FgCyan).Sprint("PATCH  ")
	case mutator.StatusSkipped:
		return color.New(color.FgBlue).Sprint("SKIP   ")
	case mutator.StatusFailed:
		return color.New(color.FgRed).Sprint("FAIL   ")
	default:
		return status.String()
	}
}

// display shortens p to be relative to the project root.
func (p *printer) display(path string) string {
	if path == "" {
		return "-"
	}
	if filepath.IsAbs(path) {
		if rel, err := filepath.Rel(p.root, path); err == nil && !strings.HasPrefix(rel, "..") {
			return filepath.ToSlash(rel)
		}
	}
	return path
}

func (p *printer) Start(name string, dryRun bool) {
	mode := ""
	if dryRun {
		mode = color.New(color.FgYellow).Sprint(" (dry run)")
	}
	fmt.Fprintf(p.w, "Generating CRUD package for %s%s\n", name, mode)
}

func (p *printer) Step(res *generator.StepResult) {
	line := fmt.Sprintf("  %s %-18s %s", statusColor(res.Status), res.Step, p.display(res.Path))
	if res.Detail != "" && res.Status != mutator.StatusFailed {
		line += color.New(color.FgHiBlack).Sprintf(" (%s)", res.Detail)
	}
	fmt.Fprintln(p.w, line)
}

// Planned lists the files a dry run would have written.
func (p *printer) Planned(paths []string) {
	if len(paths) == 0 {
		fmt.Fprintln(p.w, "Nothing would be written.")
		return
	}
	fmt.Fprintf(p.w, "%d files would be written:\n", len(paths))
	for _, path := range paths {
		fmt.Fprintf(p.w, "  %s\n", p.display(path))
	}
}

func (p *printer) Done(r *generator.Report) {
	fmt.Fprintf(p.w, "%s CRUD package for %s: %d created, %d patched, %d skipped\n",
		color.New(color.FgGreen).Sprint("✓"),
		r.Names.ModelName,
		r.Count(mutator.StatusCreated),
		r.Count(mutator.StatusPatched),
		r.Count(mutator.StatusSkipped),
	)
}

// newLogger returns a text logger on w, discarding everything below warn
// unless verbose is set.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
