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

package loader

import (
	"strings"

	"go.mercari.io/crudgen/models"
)

// columnTypes is checked in order; the first rule token found wins.
var columnTypes = []struct {
	token string
	typ   models.ColumnType
}{
	{"integer", models.ColumnInteger},
	{"numeric", models.ColumnFloat},
	{"boolean", models.ColumnBoolean},
	{"date", models.ColumnDate},
}

// ruleTokens returns the set of token names in a pipe-delimited rule.
// Parameters after ':' are dropped.
func ruleTokens(rule string) map[string]bool {
	tokens := make(map[string]bool)
	for _, t := range strings.Split(rule, "|") {
		if i := strings.IndexByte(t, ':'); i >= 0 {
			t = t[:i]
		}
		t = strings.TrimSpace(t)
		if t != "" {
			tokens[t] = true
		}
	}
	return tokens
}

// MapColumn derives the migration column of a field from its rule.
// Unknown tokens are ignored.
func MapColumn(field, rule string) models.Column {
	tokens := ruleTokens(rule)

	col := models.Column{
		Name:     field,
		Type:     models.ColumnString,
		Nullable: tokens["nullable"],
	}
	for _, ct := range columnTypes {
		if tokens[ct.token] {
			col.Type = ct.typ
			break
		}
	}

	return col
}

// MapColumns maps every field of schema in declaration order.
func MapColumns(schema *models.Schema) []models.Column {
	if schema.Len() == 0 {
		return nil
	}

	cols := make([]models.Column, 0, len(schema.Fields))
	for _, f := range schema.Fields {
		cols = append(cols, MapColumn(f.Name, f.Rule))
	}
	return cols
}
