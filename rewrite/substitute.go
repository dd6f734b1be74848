// Copyright 2026 The Symplify Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package rewrite

import (
	"fmt"

	"github.com/symplify/symplify/ast"
)

// Substitute instantiates a rule template by replacing every placeholder
// with its binding. The result is a closed term: if the template's
// placeholders are covered by env, no placeholder survives substitution.
//
// Substituting a placeholder that has no binding is a programming error in
// the caller (the expander only substitutes a side whose placeholders were
// all bound by the match) and panics.
func Substitute(pattern ast.Value, env *Bindings) ast.Value {
	switch p := pattern.(type) {
	case ast.Placeholder:
		v, ok := env.Value(p)
		if !ok {
			panic(fmt.Sprintf("rewrite: unbound placeholder %v in substitution", p))
		}
		return v
	case *ast.Op:
		return ast.NewOp(p.Operator, Substitute(p.LHS, env), Substitute(p.RHS, env))
	default:
		return pattern
	}
}
