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
	"strings"

	"go.mercari.io/crudgen/models"
)

const (
	idField = "id"
	idRule  = "required|int"

	// relationSuffix marks many-to-many id lists, which are synced
	// separately and never written by toUpdate().
	relationSuffix = "_ids"

	defaultPerPage = 15
	defaultPage    = 1
)

var listRules = []models.Field{
	{Name: "per_page", Rule: "nullable|int"},
	{Name: "page", Rule: "nullable|int"},
}

// DTORules returns the validation rules of the transfer object of kind k.
func DTORules(k models.DTOKind, schema *models.Schema) []models.Field {
	switch k {
	case models.DTOStore:
		if schema.Len() == 0 {
			return nil
		}
		return append([]models.Field(nil), schema.Fields...)

	case models.DTOUpdate:
		rules := []models.Field{{Name: idField, Rule: idRule}}
		if schema == nil {
			return rules
		}
		for _, f := range schema.Fields {
			if f.Name == idField {
				rules[0].Rule = f.Rule
				continue
			}
			rules = append(rules, f)
		}
		return rules

	case models.DTODelete:
		return []models.Field{{Name: idField, Rule: idRule}}

	case models.DTOList:
		return append([]models.Field(nil), listRules...)

	default:
		panic("unknown DTOKind")
	}
}

// UpdateExcluded returns the keys toUpdate() drops: the identifier, every
// relation id list of schema, then extra. Duplicates are removed.
func UpdateExcluded(schema *models.Schema, extra []string) []string {
	seen := map[string]bool{idField: true}
	keys := []string{idField}

	add := func(k string) {
		if k == "" || seen[k] {
			return
		}
		seen[k] = true
		keys = append(keys, k)
	}

	if schema != nil {
		for _, f := range schema.Fields {
			if strings.HasSuffix(f.Name, relationSuffix) {
				add(f.Name)
			}
		}
	}
	for _, k := range extra {
		add(k)
	}

	return keys
}
