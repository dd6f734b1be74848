// Copyright 2026 The Symplify Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/symplify/symplify/util"
)

type rulesParams struct {
	configFile string
	ruleFiles  []string
	format     *util.EnumFlag
}

var configuredRulesParams = rulesParams{
	format: formatFlag(),
}

var rulesCommand = &cobra.Command{
	Use:   "rules",
	Short: "Print the active rule catalog",
	Long:  `Print the bundled rule catalog together with any loaded rule files.`,
	Run: func(_ *cobra.Command, _ []string) {
		os.Exit(rulesRun(&configuredRulesParams, os.Stdout, os.Stderr))
	},
}

func rulesRun(params *rulesParams, stdout, stderr io.Writer) int {
	rules, err := loadRules(params.ruleFiles)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}

	switch params.format.String() {
	case formatJSON:
		out := make([]any, len(rules))
		for i, rule := range rules {
			out[i] = map[string]any{
				"source": rule.Source.String(),
				"target": rule.Target.String(),
			}
		}
		bs, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			fmt.Fprintln(stderr, "error:", err)
			return 1
		}
		fmt.Fprintln(stdout, string(bs))
	default:
		table := tablewriter.NewWriter(stdout)
		table.SetHeader([]string{"", "Source", "Target"})
		table.SetAutoWrapText(false)
		for i, rule := range rules {
			table.Append([]string{strconv.Itoa(i + 1), rule.Source.String(), rule.Target.String()})
		}
		table.Render()
	}
	return 0
}

func init() {
	fs := rulesCommand.Flags()
	addOutputFormatFlag(fs, configuredRulesParams.format)
	addRuleFilesFlag(fs, &configuredRulesParams.ruleFiles)
	RootCommand.AddCommand(rulesCommand)
}
