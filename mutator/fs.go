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

package mutator

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// FS is a project tree addressed by paths relative to its root. Absolute
// paths are accepted as is.
type FS interface {
	// Root returns the project root directory.
	Root() string

	// ReadFile returns the content of name. A missing file yields an error
	// matching fs.ErrNotExist.
	ReadFile(name string) ([]byte, error)

	// WriteFile replaces name with data, creating parent directories.
	WriteFile(name string, data []byte) error

	// Exists reports whether name is present.
	Exists(name string) (bool, error)

	// Glob returns the names matching pattern in lexical order, relative
	// to the root when the pattern is.
	Glob(pattern string) ([]string, error)
}

type osFS struct {
	root string
}

// NewOSFS returns an FS writing to the directory root.
func NewOSFS(root string) FS {
	return &osFS{root: filepath.Clean(root)}
}

func (o *osFS) Root() string {
	return o.root
}

func (o *osFS) abs(name string) string {
	if filepath.IsAbs(name) {
		return filepath.Clean(name)
	}
	return filepath.Join(o.root, filepath.FromSlash(name))
}

func (o *osFS) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(o.abs(name))
}

// WriteFile writes to a temporary file next to name and renames it, so a
// failed write never leaves a truncated target behind.
func (o *osFS) WriteFile(name string, data []byte) (err error) {
	dst := o.abs(name)
	dir := filepath.Dir(dst)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	perm := os.FileMode(0o644)
	if fi, err := os.Stat(dst); err == nil {
		if fi.IsDir() {
			return fmt.Errorf("%s is a directory", dst)
		}
		perm = fi.Mode().Perm()
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(dst)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmp.Name(), perm); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), dst)
}

func (o *osFS) Exists(name string) (bool, error) {
	_, err := os.Stat(o.abs(name))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, err
	}
}

// rootPattern returns pattern as a slash-separated path inside the root,
// or false when it is absolute or leaves the root.
func rootPattern(pattern string) (string, bool) {
	if filepath.IsAbs(pattern) {
		return "", false
	}
	p := path.Clean(filepath.ToSlash(pattern))
	return p, fs.ValidPath(p)
}

func (o *osFS) Glob(pattern string) ([]string, error) {
	// matched inside the root, whose own name may hold glob metacharacters
	if p, ok := rootPattern(pattern); ok {
		matches, err := fs.Glob(os.DirFS(o.root), p)
		if err != nil {
			return nil, err
		}
		sort.Strings(matches)
		return matches, nil
	}

	matches, err := filepath.Glob(o.abs(pattern))
	if err != nil {
		return nil, err
	}
	return o.rel(pattern, matches), nil
}

func (o *osFS) rel(pattern string, matches []string) []string {
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		if !filepath.IsAbs(pattern) {
			if r, err := filepath.Rel(o.root, m); err == nil {
				m = filepath.ToSlash(r)
			}
		}
		out = append(out, m)
	}
	sort.Strings(out)
	return out
}

// DryRunFS keeps writes in memory on top of a base FS.
type DryRunFS struct {
	base   FS
	files  map[string][]byte
	writes []string
}

// NewDryRunFS returns an FS that reads through to base and never writes
// to it.
func NewDryRunFS(base FS) *DryRunFS {
	return &DryRunFS{
		base:  base,
		files: make(map[string][]byte),
	}
}

func (d *DryRunFS) Root() string {
	return d.base.Root()
}

func (d *DryRunFS) key(name string) string {
	if filepath.IsAbs(name) {
		return filepath.Clean(name)
	}
	return filepath.Join(d.base.Root(), filepath.FromSlash(name))
}

func (d *DryRunFS) ReadFile(name string) ([]byte, error) {
	if data, ok := d.files[d.key(name)]; ok {
		return append([]byte(nil), data...), nil
	}
	return d.base.ReadFile(name)
}

func (d *DryRunFS) WriteFile(name string, data []byte) error {
	k := d.key(name)
	if _, ok := d.files[k]; !ok {
		d.writes = append(d.writes, name)
	}
	d.files[k] = append([]byte(nil), data...)
	return nil
}

func (d *DryRunFS) Exists(name string) (bool, error) {
	if _, ok := d.files[d.key(name)]; ok {
		return true, nil
	}
	return d.base.Exists(name)
}

func (d *DryRunFS) Glob(pattern string) ([]string, error) {
	matches, err := d.base.Glob(pattern)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(matches))
	for _, m := range matches {
		seen[d.key(m)] = true
	}

	p, inRoot := rootPattern(pattern)
	for k := range d.files {
		if seen[k] {
			continue
		}

		var (
			name = k
			ok   bool
			err  error
		)
		if inRoot {
			r, rerr := filepath.Rel(d.base.Root(), k)
			if rerr != nil {
				continue
			}
			name = filepath.ToSlash(r)
			ok, err = path.Match(p, name)
		} else {
			ok, err = filepath.Match(d.key(pattern), k)
		}
		if err != nil {
			return nil, err
		}
		if ok {
			matches = append(matches, name)
		}
	}

	sort.Strings(matches)
	return matches, nil
}

// Writes returns the names written so far, in first-write order.
func (d *DryRunFS) Writes() []string {
	return append([]string(nil), d.writes...)
}

// isNotExist reports whether err means the file is absent.
func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

// trimNewlines drops trailing line breaks.
func trimNewlines(s string) string {
	return strings.TrimRight(s, "\r\n")
}
