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

// Package mutator creates and patches project files so that applying the
// same target twice leaves the tree as applying it once.
package mutator

import (
	"fmt"
	"regexp"
	"strings"
)

// Mode is the way a target is written.
type Mode int

const (
	// CreateIfAbsent writes the whole file unless it exists.
	CreateIfAbsent Mode = iota

	// InsertBeforeMarker splices content before the closing brace of the
	// file unless Guard is already present.
	InsertBeforeMarker

	// AppendIfAbsent appends content as its own line unless Guard is
	// already present.
	AppendIfAbsent

	// AnchoredBlockInsert inserts the lines of content whose guard is
	// missing right before the timestamps column of a table definition.
	AnchoredBlockInsert
)

func (m Mode) String() string {
	switch m {
	case CreateIfAbsent:
		return "create"
	case InsertBeforeMarker:
		return "insert"
	case AppendIfAbsent:
		return "append"
	case AnchoredBlockInsert:
		return "block"
	default:
		panic("unknown Mode")
	}
}

// Status is the outcome of applying a target.
type Status int

const (
	StatusCreated Status = iota
	StatusPatched
	StatusSkipped
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusCreated:
		return "Created"
	case StatusPatched:
		return "Patched"
	case StatusSkipped:
		return "Skipped"
	case StatusFailed:
		return "Failed"
	default:
		panic("unknown Status")
	}
}

// Target describes one file mutation.
type Target struct {
	Path    string
	Content string
	Mode    Mode

	// Guard marks content that is already present, for InsertBeforeMarker
	// and AppendIfAbsent.
	Guard string

	// Guards holds one marker per line of Content, for AnchoredBlockInsert.
	Guards []string

	// Overwrite replaces an existing file in CreateIfAbsent mode.
	Overwrite bool
}

// Result is the outcome of one Apply.
type Result struct {
	Path   string
	Status Status
	Detail string
}

var (
	closingBraceRegexp = regexp.MustCompile(`\}\s*$`)
	tableBlockRegexp   = regexp.MustCompile(`(?s)(Schema::create\(.*?function \(Blueprint \$table\) \{)(.*?)\n(\s*\$table->timestamps\(\);)`)
)

// Apply performs t on fsys. The target file is either written once with
// its complete new content or left untouched.
func Apply(fsys FS, t *Target) (*Result, error) {
	var (
		res *Result
		err error
	)
	switch t.Mode {
	case CreateIfAbsent:
		res, err = createIfAbsent(fsys, t)
	case InsertBeforeMarker:
		res, err = insertBeforeMarker(fsys, t)
	case AppendIfAbsent:
		res, err = appendIfAbsent(fsys, t)
	case AnchoredBlockInsert:
		res, err = anchoredBlockInsert(fsys, t)
	default:
		err = fmt.Errorf("unknown mode %d for %s", t.Mode, t.Path)
	}
	if err != nil {
		return &Result{Path: t.Path, Status: StatusFailed, Detail: err.Error()}, err
	}
	return res, nil
}

func createIfAbsent(fsys FS, t *Target) (*Result, error) {
	exists, err := fsys.Exists(t.Path)
	if err != nil {
		return nil, err
	}

	detail := ""
	if exists {
		if !t.Overwrite {
			return &Result{Path: t.Path, Status: StatusSkipped, Detail: "already exists"}, nil
		}
		detail = "overwritten"
	}

	if err := fsys.WriteFile(t.Path, []byte(t.Content)); err != nil {
		return nil, err
	}
	return &Result{Path: t.Path, Status: StatusCreated, Detail: detail}, nil
}

func readExisting(fsys FS, path string) (string, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		if isNotExist(err) {
			return "", &FileNotFoundError{Path: path}
		}
		return "", err
	}
	return string(data), nil
}

func insertBeforeMarker(fsys FS, t *Target) (*Result, error) {
	content, err := readExisting(fsys, t.Path)
	if err != nil {
		return nil, err
	}

	if t.Guard != "" && strings.Contains(content, t.Guard) {
		return &Result{Path: t.Path, Status: StatusSkipped, Detail: "already contains " + t.Guard}, nil
	}

	loc := closingBraceRegexp.FindStringIndex(content)
	if loc == nil {
		return nil, &AnchorNotFoundError{Path: t.Path, Anchor: "closing brace"}
	}

	prefix := content[:loc[0]]
	if prefix != "" && !strings.HasSuffix(prefix, "\n") {
		prefix += "\n"
	}

	var b strings.Builder
	b.WriteString(prefix)
	b.WriteString(trimNewlines(t.Content))
	b.WriteString("\n")
	b.WriteString(content[loc[0]:])

	if err := fsys.WriteFile(t.Path, []byte(b.String())); err != nil {
		return nil, err
	}
	return &Result{Path: t.Path, Status: StatusPatched}, nil
}

func appendIfAbsent(fsys FS, t *Target) (*Result, error) {
	content, err := readExisting(fsys, t.Path)
	if err != nil {
		return nil, err
	}

	guard := t.Guard
	if guard == "" {
		guard = t.Content
	}
	if strings.Contains(content, guard) {
		return &Result{Path: t.Path, Status: StatusSkipped, Detail: "already contains " + guard}, nil
	}

	content += "\n" + trimNewlines(t.Content) + "\n"
	if err := fsys.WriteFile(t.Path, []byte(content)); err != nil {
		return nil, err
	}
	return &Result{Path: t.Path, Status: StatusPatched}, nil
}

func anchoredBlockInsert(fsys FS, t *Target) (*Result, error) {
	lines := splitLines(t.Content)
	if len(lines) != len(t.Guards) {
		return nil, fmt.Errorf("%s: %d lines but %d guards", t.Path, len(lines), len(t.Guards))
	}

	content, err := readExisting(fsys, t.Path)
	if err != nil {
		return nil, err
	}

	m := tableBlockRegexp.FindStringSubmatchIndex(content)
	if m == nil {
		return nil, &AnchorNotFoundError{Path: t.Path, Anchor: "Schema::create block with $table->timestamps()"}
	}

	// guards are matched against the columns declared so far
	body := content[m[2]:m[6]]

	var missing []string
	for i, line := range lines {
		if strings.Contains(body, t.Guards[i]) {
			continue
		}
		missing = append(missing, line)
	}
	if len(missing) == 0 {
		return &Result{Path: t.Path, Status: StatusSkipped, Detail: "columns already present"}, nil
	}

	var b strings.Builder
	b.WriteString(content[:m[6]])
	for _, line := range missing {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(content[m[6]:])

	if err := fsys.WriteFile(t.Path, []byte(b.String())); err != nil {
		return nil, err
	}
	return &Result{
		Path:   t.Path,
		Status: StatusPatched,
		Detail: fmt.Sprintf("%d of %d columns inserted", len(missing), len(lines)),
	}, nil
}

func splitLines(s string) []string {
	s = trimNewlines(s)
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
