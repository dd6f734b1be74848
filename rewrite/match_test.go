// Copyright 2026 The Symplify Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package rewrite

import (
	"testing"

	"github.com/symplify/symplify/ast"
)

// template parses a rule-side pattern: single lowercase letters become
// placeholders.
func template(t *testing.T, input string) ast.Value {
	t.Helper()
	return convertPlaceholders(ast.MustParse(input))
}

func TestMatch(t *testing.T) {
	tests := []struct {
		term    string
		pattern string
		ok      bool
	}{
		{"q + r", "x + y", true},
		{"q + r", "x * y", false},
		{"q + q", "x + x", true},
		{"q + r", "x + x", false},
		{"sin(q)", "sin(x)", true},
		{"sin(q)", "cos(x)", false},
		{"f(q, q)", "f(a, a)", true},
		{"f(q, r)", "f(a, a)", false},
		{"f(q, r)", "f(a, b)", true},
		{"(q + r) * s", "a * (x + y)", false},
		{"s * (q + r)", "a * (x + y)", true},
		{"log(q, e)", "log(x, e)", true},
		{"log(q, pi)", "log(x, e)", false},
		{"q + 0", "x + 0", true},
		{"q + 1", "x + 0", false},
		{"d/dq(q ^ 2)", "d/dx(x ^ r)", true},
		{"d/dq(r ^ 2)", "d/dx(x ^ r)", false},
		{"-q", "-x", true},
	}
	for _, tc := range tests {
		term := ast.MustParse(tc.term)
		pattern := template(t, tc.pattern)
		var env Bindings
		ok := Match(term, pattern, &env)
		if ok != tc.ok {
			t.Errorf("Match(%q, %q): expected %v but got %v", tc.term, tc.pattern, tc.ok, ok)
			continue
		}
		// Soundness: substituting the bindings back into the pattern must
		// reproduce the term exactly.
		if ok {
			if got := Substitute(pattern, &env); !got.Equal(term) {
				t.Errorf("Substitute(%q, %v): expected %v but got %v", tc.pattern, &env, term, got)
			}
		}
	}
}

func TestMatchEnvUnchangedOnFailure(t *testing.T) {
	var env Bindings
	env.Bind(ast.PlaceholderFor('x'), ast.Symbol("q"))

	if Match(ast.MustParse("r + r"), template(t, "x + x"), &env) {
		t.Fatal("expected match to fail against existing binding")
	}
	if env.Len() != 1 {
		t.Fatalf("expected env unchanged but got %v", &env)
	}
	if v, ok := env.Value(ast.PlaceholderFor('x')); !ok || !v.Equal(ast.Symbol("q")) {
		t.Fatalf("expected x bound to q but got %v", &env)
	}
}

func TestMatchExistingBinding(t *testing.T) {
	var env Bindings
	env.Bind(ast.PlaceholderFor('x'), ast.Symbol("q"))

	if !Match(ast.Symbol("q"), ast.PlaceholderFor('x'), &env) {
		t.Fatal("expected bound placeholder to match its binding")
	}
	if Match(ast.Symbol("r"), ast.PlaceholderFor('x'), &env) {
		t.Fatal("expected bound placeholder to reject a different term")
	}
}

func TestMatchSymmetric(t *testing.T) {
	// Placeholders resolve on either side, so two templates can be matched
	// against each other.
	var env Bindings
	if !Match(template(t, "x + y"), ast.MustParse("q + r"), &env) {
		t.Fatal("expected placeholder on the left to match")
	}
	if v, _ := env.Value(ast.PlaceholderFor('x')); !v.Equal(ast.Symbol("q")) {
		t.Fatalf("expected x bound to q but got %v", &env)
	}

	var env2 Bindings
	if !Match(template(t, "x + x"), template(t, "a + a"), &env2) {
		t.Fatal("expected templates to unify")
	}
}

func TestMatchDeterministic(t *testing.T) {
	term := ast.MustParse("(q + r) * (q + r)")
	pattern := template(t, "x * x")

	var env1, env2 Bindings
	if !Match(term, pattern, &env1) || !Match(term, pattern, &env2) {
		t.Fatal("expected match to succeed")
	}
	if env1.Keys() != env2.Keys() {
		t.Fatalf("expected identical environments: %v vs %v", &env1, &env2)
	}
	v1, _ := env1.Value(ast.PlaceholderFor('x'))
	v2, _ := env2.Value(ast.PlaceholderFor('x'))
	if !v1.Equal(v2) {
		t.Fatalf("expected identical bindings: %v vs %v", v1, v2)
	}
}

func TestSubstituteClosed(t *testing.T) {
	var env Bindings
	env.Bind(ast.PlaceholderFor('x'), ast.MustParse("q + r"))
	env.Bind(ast.PlaceholderFor('y'), ast.Symbol("s"))

	out := Substitute(template(t, "x * y + x"), &env)
	if !out.IsGround() {
		t.Fatalf("expected closed term but got %v", out)
	}
	if expected := ast.MustParse("(q + r) * s + (q + r)"); !out.Equal(expected) {
		t.Fatalf("expected %v but got %v", expected, out)
	}
}

func TestSubstituteUnboundPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on unbound placeholder")
		}
	}()
	var env Bindings
	Substitute(template(t, "x + y"), &env)
}
