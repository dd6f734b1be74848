// Copyright 2026 The Symplify Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package rewrite implements the pattern matcher, the substitution engine,
// and the one-step rule expander that together drive the simplifier.
package rewrite

import (
	"strings"

	"github.com/symplify/symplify/ast"
)

// Bindings maps placeholders to the closed terms they were matched against.
// Bindings are built incrementally by the matcher; a bound placeholder must
// match structurally on re-encounter.
type Bindings struct {
	values [26]ast.Value
	keys   ast.PlaceholderSet
}

// Bind associates p with v, overwriting any existing binding.
func (b *Bindings) Bind(p ast.Placeholder, v ast.Value) {
	b.values[p] = v
	b.keys = b.keys.Add(p)
}

// Value returns the term bound to p.
func (b *Bindings) Value(p ast.Placeholder) (ast.Value, bool) {
	if !b.keys.Contains(p) {
		return nil, false
	}
	return b.values[p], true
}

// Keys returns the set of bound placeholders.
func (b *Bindings) Keys() ast.PlaceholderSet {
	return b.keys
}

// Len returns the number of bound placeholders.
func (b *Bindings) Len() int {
	return b.keys.Len()
}

// Covers returns true if the bound placeholders are exactly the given set.
func (b *Bindings) Covers(set ast.PlaceholderSet) bool {
	return b.keys == set
}

// Copy returns a copy of the bindings that can be extended without
// affecting the original.
func (b *Bindings) Copy() *Bindings {
	cpy := *b
	return &cpy
}

func (b *Bindings) String() string {
	var buf strings.Builder
	buf.WriteByte('{')
	for p := ast.Placeholder(0); p < 26; p++ {
		if v, ok := b.Value(p); ok {
			if buf.Len() > 1 {
				buf.WriteString(", ")
			}
			buf.WriteString(p.String())
			buf.WriteString(": ")
			buf.WriteString(v.String())
		}
	}
	buf.WriteByte('}')
	return buf.String()
}
