// Copyright 2026 The Symplify Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package rewrite

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/symplify/symplify/ast"
)

// Rule is an ordered pair of templates declaring an algebraic equivalence.
// Rules are bidirectional: the expander applies both source→target and
// target→source, except that a direction whose target introduces
// placeholders the source did not bind is never applied.
type Rule struct {
	Source ast.Value
	Target ast.Value

	sourceSet ast.PlaceholderSet
	targetSet ast.PlaceholderSet
	merged    ast.PlaceholderSet
}

// NewRule returns a rule over the given templates. A rule is valid iff one
// side's placeholder set covers the union of both sides; otherwise neither
// direction could substitute without unbound placeholders.
func NewRule(source, target ast.Value) (*Rule, error) {
	r := &Rule{
		Source:    source,
		Target:    target,
		sourceSet: ast.Placeholders(source),
		targetSet: ast.Placeholders(target),
	}
	r.merged = r.sourceSet.Union(r.targetSet)
	if r.sourceSet != r.merged && r.targetSet != r.merged {
		return nil, fmt.Errorf("rule %v = %v: free placeholders on both sides", source, target)
	}
	return r, nil
}

// ParseRule parses a rule written as an equality in surface syntax, e.g.
// "x + 0 = x". Any symbol whose name is a single lowercase letter becomes a
// placeholder.
func ParseRule(line string) (*Rule, error) {
	v, err := ast.Parse(line)
	if err != nil {
		return nil, err
	}
	op, ok := v.(*ast.Op)
	if !ok || op.Operator != ast.Equality {
		return nil, fmt.Errorf("rule %q: not an equality", line)
	}
	return NewRule(convertPlaceholders(op.LHS), convertPlaceholders(op.RHS))
}

// MustParseRule parses a rule and panics if the line is not a valid rule.
// A malformed entry in a rule catalog is a programming error.
func MustParseRule(line string) *Rule {
	r, err := ParseRule(line)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Rule) String() string {
	return r.Source.String() + " = " + r.Target.String()
}

// convertPlaceholders rewrites single-lowercase-letter symbols into the
// corresponding placeholders so the template can be used for matching and
// substitution. Reserved letters (e, i) never reach this point; the parser
// produces constants for them.
func convertPlaceholders(v ast.Value) ast.Value {
	switch v := v.(type) {
	case *ast.Op:
		return ast.NewOp(v.Operator, convertPlaceholders(v.LHS), convertPlaceholders(v.RHS))
	case ast.Symbol:
		if len(v) == 1 && v[0] >= 'a' && v[0] <= 'z' {
			return ast.PlaceholderFor(v[0])
		}
		return v
	default:
		return v
	}
}

var (
	defaultRulesOnce sync.Once
	defaultRules     []*Rule
)

// DefaultRules returns the bundled rule catalog. The catalog is parsed once
// and is read-only afterwards.
func DefaultRules() []*Rule {
	defaultRulesOnce.Do(func() {
		defaultRules = make([]*Rule, 0, len(defaultCatalog)+1)
		for _, line := range defaultCatalog {
			defaultRules = append(defaultRules, MustParseRule(line))
		}
		// The reciprocal link has no surface spelling of its own ("1/x"
		// lexes as a quotient), so it is built directly.
		reciprocal, err := NewRule(
			ast.NewUnary(ast.Reciprocal, ast.PlaceholderFor('x')),
			ast.NewOp(ast.Quotient, ast.Number(1), ast.PlaceholderFor('x')),
		)
		if err != nil {
			panic(err)
		}
		defaultRules = append(defaultRules, reciprocal)
	})
	return defaultRules
}

type ruleFile struct {
	Rules []string `yaml:"rules"`
}

// LoadRules parses a YAML rule document of the form:
//
//	rules:
//	  - "x + 0 = x"
//	  - "x * 1 = x"
func LoadRules(bs []byte) ([]*Rule, error) {
	var f ruleFile
	if err := yaml.Unmarshal(bs, &f); err != nil {
		return nil, err
	}
	rules := make([]*Rule, 0, len(f.Rules))
	for _, line := range f.Rules {
		r, err := ParseRule(line)
		if err != nil {
			return nil, err
		}
		rules = append(rules, r)
	}
	return rules, nil
}

// LoadRulesFile reads and parses a YAML rule file.
func LoadRulesFile(path string) ([]*Rule, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	rules, err := LoadRules(bs)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", path, err)
	}
	return rules, nil
}
