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

import "fmt"

// MigrationFileNotFoundError is returned when columns must be inserted but
// no create-table migration exists for the table.
type MigrationFileNotFoundError struct {
	Table   string
	Pattern string
}

func (e *MigrationFileNotFoundError) Error() string {
	return fmt.Sprintf("migration file for table %s not found (looked for %s)", e.Table, e.Pattern)
}

// RouteFileNotFoundError is returned when the route file to register the
// controller in does not exist.
type RouteFileNotFoundError struct {
	Path string
}

func (e *RouteFileNotFoundError) Error() string {
	return fmt.Sprintf("route file not found: %s", e.Path)
}

// InvalidControllerPathError is returned for a controller sub-namespace
// that cannot be used as a PHP namespace.
type InvalidControllerPathError struct {
	Path   string
	Reason string
}

func (e *InvalidControllerPathError) Error() string {
	return fmt.Sprintf("invalid controller path %q: %s", e.Path, e.Reason)
}
