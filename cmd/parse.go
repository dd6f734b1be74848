// Copyright 2026 The Symplify Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/symplify/symplify/ast"
	"github.com/symplify/symplify/util"
)

type parseParams struct {
	format *util.EnumFlag
}

var configuredParseParams = parseParams{
	format: formatFlag(),
}

var parseCommand = &cobra.Command{
	Use:   "parse <expression>",
	Short: "Parse an expression",
	Long:  `Parse an expression and print the term.`,
	PreRunE: func(_ *cobra.Command, args []string) error {
		if len(args) != 1 {
			return errors.New("specify exactly one expression")
		}
		return nil
	},
	Run: func(_ *cobra.Command, args []string) {
		os.Exit(parseRun(args[0], &configuredParseParams, os.Stdout, os.Stderr))
	},
}

func parseRun(input string, params *parseParams, stdout, stderr io.Writer) int {
	term, err := ast.Parse(input)
	if err != nil {
		var perr *ast.ParseError
		if errors.As(err, &perr) {
			fmt.Fprintln(stderr, perr.Indicator())
		}
		fmt.Fprintln(stderr, "error:", err)
		return 2
	}

	switch params.format.String() {
	case formatJSON:
		bs, err := json.MarshalIndent(termJSON(term), "", "  ")
		if err != nil {
			fmt.Fprintln(stderr, "error:", err)
			return 1
		}
		fmt.Fprintln(stdout, string(bs))
	default:
		fmt.Fprintf(stdout, "(%d) %s\n", ast.OpCount(term), term)
	}
	return 0
}

func init() {
	addOutputFormatFlag(parseCommand.Flags(), configuredParseParams.format)
	RootCommand.AddCommand(parseCommand)
}
