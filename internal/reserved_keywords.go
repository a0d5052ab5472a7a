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

import "strings"

// This list was created with reference to https://www.php.net/manual/en/reserved.php
// It holds the keywords and reserved class names that cannot name a class.
var reservedKeywords = map[string]struct{}{
	"abstract":     struct{}{},
	"and":          struct{}{},
	"array":        struct{}{},
	"as":           struct{}{},
	"bool":         struct{}{},
	"break":        struct{}{},
	"callable":     struct{}{},
	"case":         struct{}{},
	"catch":        struct{}{},
	"class":        struct{}{},
	"clone":        struct{}{},
	"const":        struct{}{},
	"continue":     struct{}{},
	"declare":      struct{}{},
	"default":      struct{}{},
	"do":           struct{}{},
	"echo":         struct{}{},
	"else":         struct{}{},
	"elseif":       struct{}{},
	"empty":        struct{}{},
	"enddeclare":   struct{}{},
	"endfor":       struct{}{},
	"endforeach":   struct{}{},
	"endif":        struct{}{},
	"endswitch":    struct{}{},
	"endwhile":     struct{}{},
	"eval":         struct{}{},
	"exit":         struct{}{},
	"extends":      struct{}{},
	"false":        struct{}{},
	"final":        struct{}{},
	"finally":      struct{}{},
	"float":        struct{}{},
	"fn":           struct{}{},
	"for":          struct{}{},
	"foreach":      struct{}{},
	"function":     struct{}{},
	"global":       struct{}{},
	"goto":         struct{}{},
	"if":           struct{}{},
	"implements":   struct{}{},
	"include":      struct{}{},
	"include_once": struct{}{},
	"instanceof":   struct{}{},
	"insteadof":    struct{}{},
	"int":          struct{}{},
	"interface":    struct{}{},
	"isset":        struct{}{},
	"iterable":     struct{}{},
	"list":         struct{}{},
	"match":        struct{}{},
	"mixed":        struct{}{},
	"namespace":    struct{}{},
	"never":        struct{}{},
	"new":          struct{}{},
	"null":         struct{}{},
	"object":       struct{}{},
	"or":           struct{}{},
	"parent":       struct{}{},
	"print":        struct{}{},
	"private":      struct{}{},
	"protected":    struct{}{},
	"public":       struct{}{},
	"readonly":     struct{}{},
	"require":      struct{}{},
	"require_once": struct{}{},
	"return":       struct{}{},
	"self":         struct{}{},
	"static":       struct{}{},
	"string":       struct{}{},
	"switch":       struct{}{},
	"throw":        struct{}{},
	"trait":        struct{}{},
	"true":         struct{}{},
	"try":          struct{}{},
	"unset":        struct{}{},
	"use":          struct{}{},
	"var":          struct{}{},
	"void":         struct{}{},
	"while":        struct{}{},
	"xor":          struct{}{},
	"yield":        struct{}{},
}

// IsReservedKeyword reports whether s cannot be used as a PHP class name.
func IsReservedKeyword(s string) bool {
	_, ok := reservedKeywords[strings.ToLower(s)]
	return ok
}
