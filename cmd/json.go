// Copyright 2026 The Symplify Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package cmd

import (
	"github.com/symplify/symplify/ast"
)

// termJSON renders a term as a nested object with an explicit type hint per
// node, for tooling that consumes `--format=json` output.
func termJSON(v ast.Value) any {
	switch v := v.(type) {
	case ast.Empty:
		return map[string]any{"type": "empty"}
	case ast.Number:
		return map[string]any{"type": "value", "value": float64(v)}
	case ast.Constant:
		return map[string]any{"type": "constant", "name": v.String()}
	case ast.Symbol:
		return map[string]any{"type": "symbol", "name": string(v)}
	case ast.Placeholder:
		return map[string]any{"type": "placeholder", "name": v.String()}
	case ast.FunctionTag:
		return map[string]any{"type": "function", "name": v.String()}
	case *ast.Op:
		return map[string]any{
			"type": "op",
			"op":   v.Operator.String(),
			"lhs":  termJSON(v.LHS),
			"rhs":  termJSON(v.RHS),
		}
	}
	return nil
}
