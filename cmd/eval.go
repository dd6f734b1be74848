// Copyright 2026 The Symplify Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/symplify/symplify/ast"
	"github.com/symplify/symplify/config"
	"github.com/symplify/symplify/metrics"
	"github.com/symplify/symplify/search"
	"github.com/symplify/symplify/util"
)

type evalParams struct {
	configFile  string
	ruleFiles   []string
	maxOps      int
	maxIter     int
	format      *util.EnumFlag
	showMetrics bool
}

var configuredEvalParams = evalParams{
	format: formatFlag(),
}

var evalCommand = &cobra.Command{
	Use:   "eval <expression>",
	Short: "Simplify a single expression",
	Long: `Simplify a single expression and print the rewrite trace.

The pretty format prints one (<opcount>) <term> line per trace step, ending
with the smallest equivalent term found. The json format emits the best
term, its operator count, and the full trace.`,
	PreRunE: func(_ *cobra.Command, args []string) error {
		if len(args) != 1 {
			return errors.New("specify exactly one expression")
		}
		return nil
	},
	Run: func(_ *cobra.Command, args []string) {
		os.Exit(evalRun(args[0], &configuredEvalParams, os.Stdout, os.Stderr))
	},
}

func evalRun(input string, params *evalParams, stdout, stderr io.Writer) int {
	cfg, err := config.Load(params.configFile)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}
	if params.maxOps > 0 {
		cfg.MaxOperations = params.maxOps
	}
	if params.maxIter > 0 {
		cfg.MaxIterations = params.maxIter
	}
	cfg.RuleFiles = append(cfg.RuleFiles, params.ruleFiles...)

	rules, err := loadRules(cfg.RuleFiles)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}

	m := metrics.New()

	timer := m.Timer(metrics.ExprParse)
	timer.Start()
	term, err := ast.Parse(input)
	timer.Stop()
	if err != nil {
		var perr *ast.ParseError
		if errors.As(err, &perr) {
			fmt.Fprintln(stderr, perr.Indicator())
		}
		fmt.Fprintln(stderr, "error:", err)
		return 2
	}

	searcher := search.New().
		WithRules(rules).
		WithMaxOperations(cfg.MaxOperations).
		WithMaxIterations(cfg.MaxIterations).
		WithCacheSize(cfg.CacheSize).
		WithMetrics(m)

	result := searcher.Simplify(context.Background(), term)

	switch params.format.String() {
	case formatJSON:
		out := map[string]any{
			"input":      input,
			"best":       result.Best.String(),
			"term":       termJSON(result.Best),
			"opcount":    result.OpCount,
			"iterations": result.Iterations,
			"trace":      traceJSON(result.Steps),
		}
		if params.showMetrics {
			out["metrics"] = m.All()
		}
		bs, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			fmt.Fprintln(stderr, "error:", err)
			return 1
		}
		fmt.Fprintln(stdout, string(bs))
	default:
		for _, step := range result.Steps {
			fmt.Fprintf(stdout, "(%d) %s\n", step.OpCount, step.Term)
		}
		if params.showMetrics {
			fmt.Fprintln(stdout, m)
		}
	}
	return 0
}

func traceJSON(steps []search.Step) []any {
	out := make([]any, len(steps))
	for i, step := range steps {
		out[i] = map[string]any{
			"opcount": step.OpCount,
			"term":    step.Term.String(),
		}
	}
	return out
}

func init() {
	fs := evalCommand.Flags()
	addOutputFormatFlag(fs, configuredEvalParams.format)
	addConfigFileFlag(fs, &configuredEvalParams.configFile)
	addRuleFilesFlag(fs, &configuredEvalParams.ruleFiles)
	addLimitFlags(fs, &configuredEvalParams.maxOps, &configuredEvalParams.maxIter)
	fs.BoolVar(&configuredEvalParams.showMetrics, "metrics", false, "print engine metrics")
	RootCommand.AddCommand(evalCommand)
}
