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

package internal

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gedex/inflector"
	"github.com/jinzhu/inflection"
	"go.mercari.io/crudgen/config"
)

type Inflector interface {
	Singularize(string) string
	Pluralize(string) string
}

// ruleInflector is backed by the rule tables of jinzhu/inflection.
type ruleInflector struct{}

func (i *ruleInflector) Singularize(s string) string {
	return inflection.Singular(s)
}
func (i *ruleInflector) Pluralize(s string) string {
	return inflection.Plural(s)
}

// classicInflector is backed by gedex/inflector, with user irregulars
// consulted first.
type classicInflector struct {
	plurals   map[string]string
	singulars map[string]string
}

func (i *classicInflector) Singularize(s string) string {
	if v, ok := i.singulars[strings.ToLower(s)]; ok {
		return matchCase(s, v)
	}
	return inflector.Singularize(s)
}
func (i *classicInflector) Pluralize(s string) string {
	if v, ok := i.plurals[strings.ToLower(s)]; ok {
		return matchCase(s, v)
	}
	return inflector.Pluralize(s)
}

// matchCase capitalizes v when s starts with an upper case letter.
func matchCase(s, v string) string {
	if s == "" || v == "" {
		return v
	}
	if strings.ToUpper(s[:1]) == s[:1] && strings.ToLower(s[:1]) != s[:1] {
		return strings.ToUpper(v[:1]) + v[1:]
	}
	return v
}

// NewInflector returns the inflector of the given kind with rules registered
// as irregular words.
func NewInflector(kind string, rules []config.Inflection) (Inflector, error) {
	switch kind {
	case "", config.InflectorRules:
		registerRule(rules)
		return &ruleInflector{}, nil
	case config.InflectorClassic:
		ci := &classicInflector{
			plurals:   make(map[string]string, len(rules)),
			singulars: make(map[string]string, len(rules)),
		}
		for _, rule := range rules {
			ci.plurals[strings.ToLower(rule.Singular)] = strings.ToLower(rule.Plural)
			ci.singulars[strings.ToLower(rule.Plural)] = strings.ToLower(rule.Singular)
		}
		return ci, nil
	default:
		return nil, fmt.Errorf("unknown inflector %q", kind)
	}
}

var (
	registerDefaults sync.Once
	builtinIrregular inflection.IrregularSlice
)

// registerRule rebuilds the irregular word list. Irregulars match in
// registration order, so user rules come first, then the defaults, then
// the words built into jinzhu/inflection.
func registerRule(rules []config.Inflection) {
	registerDefaults.Do(func() {
		builtinIrregular = append(inflection.IrregularSlice(nil), inflection.GetIrregular()...)

		for _, rule := range defaultSingularInflections {
			inflection.AddSingular(rule.find, rule.replace)
		}
		for _, rule := range defaultPluralInflections {
			inflection.AddPlural(rule.find, rule.replace)
		}
	})

	inflection.SetIrregular(inflection.IrregularSlice{})
	for _, rule := range rules {
		inflection.AddIrregular(rule.Singular, rule.Plural)
	}
	for _, rule := range defaultIrregularRules {
		inflection.AddIrregular(rule.singular, rule.plural)
	}
	inflection.SetIrregular(append(inflection.GetIrregular(), builtinIrregular...))
}
