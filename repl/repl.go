// Copyright 2026 The Symplify Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package repl implements a Read-Eval-Print-Loop (REPL) for interacting
// with the simplifier.
//
// The REPL is typically used from the command line, however, it can also be
// used as a library.
package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"

	"github.com/olekukonko/tablewriter"
	"github.com/peterh/liner"

	"github.com/symplify/symplify/ast"
	"github.com/symplify/symplify/rewrite"
	"github.com/symplify/symplify/search"
)

// REPL represents an instance of the interactive shell.
type REPL struct {
	mtx      sync.Mutex
	output   io.Writer
	searcher *search.Searcher
	rules    []*rewrite.Rule

	historyPath string
	initPrompt  string
	banner      string
}

// New returns a new instance of the REPL bound to the given searcher.
func New(output io.Writer, searcher *search.Searcher, rules []*rewrite.Rule) *REPL {
	return &REPL{
		output:     output,
		searcher:   searcher.WithRules(rules),
		rules:      rules,
		initPrompt: "> ",
	}
}

// WithHistoryPath sets the file used to persist input history.
func (r *REPL) WithHistoryPath(path string) *REPL {
	r.historyPath = path
	return r
}

// WithBanner sets the banner printed when the loop starts.
func (r *REPL) WithBanner(banner string) *REPL {
	r.banner = banner
	return r
}

// SetRules replaces the active rule set. Safe to call while the loop is
// running; the next input line sees the new rules.
func (r *REPL) SetRules(rules []*rewrite.Rule) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.rules = rules
	r.searcher.WithRules(rules)
}

// stop is returned by OneShot when the user asked to exit.
type stop struct{}

func (stop) Error() string {
	return "exit"
}

// Loop runs until the user enters "exit", Ctrl+C, Ctrl+D, or an unexpected
// error occurs.
func (r *REPL) Loop(ctx context.Context) {

	// Initialize the liner library.
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	line.SetMultiLineMode(true)
	r.loadHistory(line)

	if len(r.banner) > 0 {
		fmt.Fprintln(r.output, r.banner)
	}

	line.SetCompleter(complete)

	for {
		input, err := line.Prompt(r.initPrompt)

		if err == liner.ErrPromptAborted || err == io.EOF {
			fmt.Fprintln(r.output, "Exiting")
			break
		}

		if err != nil {
			fmt.Fprintln(r.output, "error (fatal):", err)
			os.Exit(1)
		}

		if input == "" {
			continue
		}

		if err := r.OneShot(ctx, input); err != nil {
			if errors.As(err, &stop{}) {
				break
			}
			fmt.Fprintln(r.output, "error:", err)
		}

		line.AppendHistory(input)
	}

	r.saveHistory(line)
}

// LoopReader runs the plain line-pipe variant of the loop: lines are read
// from in and simplified until an empty line or end of input. Parse errors
// are printed and reading continues; the returned error is non-nil only on
// read failure.
func (r *REPL) LoopReader(ctx context.Context, in io.Reader) error {
	reader := newLineReader(in)
	for {
		input, err := reader.readLine()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if input == "" {
			return nil
		}
		if err := r.OneShot(ctx, input); err != nil {
			if errors.As(err, &stop{}) {
				return nil
			}
			fmt.Fprintln(r.output, "error:", err)
		}
	}
}

// OneShot evaluates a single line of input: a REPL command or an expression
// to simplify. Parse errors are printed, not returned; the returned error
// reports either a stop request or an unexpected failure.
func (r *REPL) OneShot(ctx context.Context, input string) error {
	switch input {
	case "exit", "quit":
		return stop{}
	case "help":
		r.printHelp()
		return nil
	case "rules":
		r.printRules()
		return nil
	}

	term, err := ast.Parse(input)
	if err != nil {
		var perr *ast.ParseError
		if errors.As(err, &perr) {
			fmt.Fprintln(r.output, perr.Indicator())
			fmt.Fprintln(r.output, perr.Error())
			return nil
		}
		return err
	}

	r.mtx.Lock()
	result := r.searcher.Simplify(ctx, term)
	r.mtx.Unlock()
	for _, step := range result.Steps {
		fmt.Fprintf(r.output, "(%d) %s\n", step.OpCount, step.Term)
	}
	return nil
}

func (r *REPL) printHelp() {
	fmt.Fprintln(r.output, "Enter an expression to simplify it, e.g. x * 1 + 0.")
	fmt.Fprintln(r.output, "")
	fmt.Fprintln(r.output, "Commands:")
	fmt.Fprintln(r.output, "  rules     print the active rule catalog")
	fmt.Fprintln(r.output, "  help      print this message")
	fmt.Fprintln(r.output, "  exit      exit the shell (also Ctrl+D)")
}

func (r *REPL) printRules() {
	r.mtx.Lock()
	rules := r.rules
	r.mtx.Unlock()

	table := tablewriter.NewWriter(r.output)
	table.SetHeader([]string{"", "Source", "Target"})
	table.SetAutoWrapText(false)
	for i, rule := range rules {
		table.Append([]string{strconv.Itoa(i + 1), rule.Source.String(), rule.Target.String()})
	}
	table.Render()
}

var commands = []string{"exit", "help", "quit", "rules"}

func complete(line string) []string {
	var out []string
	for _, c := range commands {
		if len(line) <= len(c) && c[:len(line)] == line {
			out = append(out, c)
		}
	}
	return out
}

func (r *REPL) loadHistory(prompt *liner.State) {
	if r.historyPath == "" {
		return
	}
	if f, err := os.Open(r.historyPath); err == nil {
		prompt.ReadHistory(f)
		f.Close()
	}
}

func (r *REPL) saveHistory(prompt *liner.State) {
	if r.historyPath == "" {
		return
	}
	if f, err := os.Create(r.historyPath); err == nil {
		prompt.WriteHistory(f)
		f.Close()
	}
}
