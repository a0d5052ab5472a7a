// Copyright (c) 2021 Mercari, Inc.
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
	"testing"

	"github.com/jinzhu/inflection"
	"go.mercari.io/crudgen/config"
)

type inflectionPattern struct {
	single string
	plural string
}

var inflectionPatterns = []inflectionPattern{
	{"alias", "aliases"},
	{"belief", "beliefs"},
	{"bus", "buses"},
	{"cafe", "cafes"},
	{"category", "categories"},
	{"chef", "chefs"},
	{"chief", "chiefs"},
	{"child", "children"},
	{"drive", "drives"},
	{"foe", "foes"},
	{"foot", "feet"},
	{"glove", "gloves"},
	{"goose", "geese"},
	{"halo", "halos"},
	{"hero", "heroes"},
	{"human", "humans"},
	{"item", "items"},
	{"matrix", "matrices"},
	{"person", "people"},
	{"photo", "photos"},
	{"piano", "pianos"},
	{"potato", "potatoes"},
	{"product", "products"},
	{"quiz", "quizzes"},
	{"tax", "taxes"},
	{"thief", "thieves"},
	{"tooth", "teeth"},
	{"wave", "waves"},
	{`atlas`, `atlases`},
	{`corpus`, `corpuses`},
	{`genus`, `genera`},
	{`loaf`, `loaves`},
	{`man`, `men`},
	{`mongoose`, `mongooses`},
	{`octopus`, `octopuses`},
	{`ox`, `oxen`},
	{`turf`, `turfs`},
}

func init() {
	registerRule(nil)
}

func TestInflection(t *testing.T) {
	for _, tc := range inflectionPatterns {
		s := inflection.Plural(tc.single)
		if s != tc.plural {
			t.Errorf("Pluralize(%s): got %q, expected: %q", tc.single, s, tc.plural)
		}
		s = inflection.Singular(tc.plural)
		if s != tc.single {
			t.Errorf("Singular(%s): got %q, expected: %q", tc.plural, s, tc.single)
		}
	}
}

func TestIrregularRulesMatchWholeWord(t *testing.T) {
	for _, rule := range defaultIrregularRules {
		if s := inflection.Plural(rule.singular); s != rule.plural {
			t.Errorf("Pluralize(%s): got %q, expected: %q", rule.singular, s, rule.plural)
		}
		if s := inflection.Singular(rule.plural); s != rule.singular {
			t.Errorf("Singular(%s): got %q, expected: %q", rule.plural, s, rule.singular)
		}
	}
}

func TestNewInflectorUserRulesWin(t *testing.T) {
	t.Cleanup(func() { registerRule(nil) })

	rules := []config.Inflection{
		{Singular: "media", Plural: "medias"},
		{Singular: "person", Plural: "persons"},
	}
	tests := []inflectionPattern{
		{"media", "medias"},
		{"person", "persons"},
		{"salesperson", "salespersons"},
		{"mongoose", "mongooses"},
		{"goose", "geese"},
		{"man", "men"},
	}

	for _, kind := range []string{config.InflectorRules, config.InflectorClassic} {
		in, err := NewInflector(kind, rules)
		if err != nil {
			t.Fatalf("NewInflector(%q): %v", kind, err)
		}
		for _, tc := range tests {
			if kind == config.InflectorClassic && tc.single != "media" && tc.single != "person" {
				continue
			}
			if got := in.Pluralize(tc.single); got != tc.plural {
				t.Errorf("%q Pluralize(%s): got %q, expected: %q", kind, tc.single, got, tc.plural)
			}
		}
	}

	// a later call replaces the user rules of the previous one
	in, err := NewInflector(config.InflectorRules, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := in.Pluralize("person"); got != "people" {
		t.Errorf("Pluralize(person): got %q, expected: %q", got, "people")
	}
}

func TestNewInflector(t *testing.T) {
	t.Cleanup(func() { registerRule(nil) })

	rules := []config.Inflection{{Singular: "cactus", Plural: "cacti"}}

	for _, kind := range []string{"", config.InflectorRules, config.InflectorClassic} {
		in, err := NewInflector(kind, rules)
		if err != nil {
			t.Fatalf("NewInflector(%q): %v", kind, err)
		}

		if got := in.Pluralize("cactus"); got != "cacti" {
			t.Errorf("%q Pluralize(cactus): got %q, expected: %q", kind, got, "cacti")
		}
		if got := in.Singularize("cacti"); got != "cactus" {
			t.Errorf("%q Singularize(cacti): got %q, expected: %q", kind, got, "cactus")
		}
		if got := in.Pluralize("product"); got != "products" {
			t.Errorf("%q Pluralize(product): got %q, expected: %q", kind, got, "products")
		}
	}

	if _, err := NewInflector("nope", nil); err == nil {
		t.Error("NewInflector(nope): expected an error")
	}
}

func TestClassicInflectorKeepsCase(t *testing.T) {
	in, err := NewInflector(config.InflectorClassic, []config.Inflection{{Singular: "cactus", Plural: "cacti"}})
	if err != nil {
		t.Fatal(err)
	}
	if got := in.Pluralize("Cactus"); got != "Cacti" {
		t.Errorf("Pluralize(Cactus): got %q, expected: %q", got, "Cacti")
	}
}
