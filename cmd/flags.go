// Copyright 2026 The Symplify Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package cmd

import (
	"github.com/spf13/pflag"

	"github.com/symplify/symplify/util"
)

// Output formats shared by the commands that print results.
const (
	formatPretty = "pretty"
	formatJSON   = "json"
)

func formatFlag() *util.EnumFlag {
	return util.NewEnumFlag(formatPretty, []string{formatPretty, formatJSON})
}

func addOutputFormatFlag(fs *pflag.FlagSet, f *util.EnumFlag) {
	fs.VarP(f, "format", "f", "set output format")
}

func addConfigFileFlag(fs *pflag.FlagSet, s *string) {
	fs.StringVarP(s, "config-file", "c", "", "set path of configuration file")
}

func addRuleFilesFlag(fs *pflag.FlagSet, v *[]string) {
	fs.StringSliceVarP(v, "rules", "r", nil, "load additional rules from a YAML file (repeatable)")
}

func addLimitFlags(fs *pflag.FlagSet, maxOps, maxIter *int) {
	fs.IntVar(maxOps, "max-operations", 0, "bound the size of explored terms (0 = use configured default)")
	fs.IntVar(maxIter, "max-iterations", 0, "bound the number of search iterations (0 = use configured default)")
}
