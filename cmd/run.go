// Copyright 2026 The Symplify Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/symplify/symplify/config"
	"github.com/symplify/symplify/logging"
	"github.com/symplify/symplify/repl"
	"github.com/symplify/symplify/rewrite"
	"github.com/symplify/symplify/search"
	"github.com/symplify/symplify/version"
)

type runParams struct {
	configFile  string
	historyPath string
	ruleFiles   []string
	maxOps      int
	maxIter     int
	watch       bool
	logLevel    string
	logFormat   string
}

var configuredRunParams = runParams{}

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Start the simplifier shell",
	Long: `Start the simplifier shell.

On a terminal an interactive shell with history and completion is started.
When input is piped, lines are read from stdin until an empty line or end of
input, and each line's simplification trace is printed.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runRun(&configuredRunParams, os.Stdin, os.Stdout)
	},
	SilenceUsage: true,
}

func runRun(params *runParams, stdin *os.File, stdout io.Writer) error {
	cfg, logger, rules, err := initRuntime(params)
	if err != nil {
		return err
	}

	searcher := search.New().
		WithRules(rules).
		WithMaxOperations(cfg.MaxOperations).
		WithMaxIterations(cfg.MaxIterations).
		WithCacheSize(cfg.CacheSize).
		WithLogger(logger)

	shell := repl.New(stdout, searcher, rules).
		WithHistoryPath(params.historyPath).
		WithBanner(fmt.Sprintf("Symplify %v (enter an expression to simplify, or help)", version.Version))

	ctx := context.Background()

	if params.watch && len(cfg.RuleFiles) > 0 {
		watcher, err := startRuleWatcher(cfg.RuleFiles, shell, logger)
		if err != nil {
			return err
		}
		defer watcher.Close()
	}

	if interactive(stdin) {
		shell.Loop(ctx)
		return nil
	}
	return shell.LoopReader(ctx, stdin)
}

func initRuntime(params *runParams) (*config.Config, logging.Logger, []*rewrite.Rule, error) {
	cfg, err := config.Load(params.configFile)
	if err != nil {
		return nil, nil, nil, err
	}
	if params.maxOps > 0 {
		cfg.MaxOperations = params.maxOps
	}
	if params.maxIter > 0 {
		cfg.MaxIterations = params.maxIter
	}
	cfg.RuleFiles = append(cfg.RuleFiles, params.ruleFiles...)
	if params.logLevel != "" {
		cfg.Logging.Level = params.logLevel
	}
	if params.logFormat != "" {
		cfg.Logging.Format = params.logFormat
	}

	logger := logging.New()
	level, err := logging.LevelFromString(cfg.Logging.Level)
	if err != nil {
		return nil, nil, nil, err
	}
	logger.SetLevel(level)
	logger.SetFormatter(logging.FormatterFor(cfg.Logging.Format))

	rules, err := loadRules(cfg.RuleFiles)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, logger, rules, nil
}

// loadRules returns the bundled catalog extended with any user rule files.
func loadRules(paths []string) ([]*rewrite.Rule, error) {
	rules := rewrite.DefaultRules()
	for _, path := range paths {
		extra, err := rewrite.LoadRulesFile(path)
		if err != nil {
			return nil, err
		}
		rules = append(rules[:len(rules):len(rules)], extra...)
	}
	return rules, nil
}

func startRuleWatcher(paths []string, shell *repl.REPL, logger logging.Logger) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, path := range paths {
		// Watch the directory so editors that replace the file are seen.
		if err := watcher.Add(filepath.Dir(path)); err != nil {
			watcher.Close()
			return nil, err
		}
	}

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				rules, err := loadRules(paths)
				if err != nil {
					logger.Error("rule reload failed: %v", err)
					continue
				}
				shell.SetRules(rules)
				logger.WithFields(map[string]any{"rules": len(rules)}).Info("rules reloaded")
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Error("rule watch error: %v", err)
			}
		}
	}()

	return watcher, nil
}

func interactive(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

func defaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".symplify_history")
}

func init() {
	fs := runCommand.Flags()
	addConfigFileFlag(fs, &configuredRunParams.configFile)
	addRuleFilesFlag(fs, &configuredRunParams.ruleFiles)
	addLimitFlags(fs, &configuredRunParams.maxOps, &configuredRunParams.maxIter)
	fs.StringVar(&configuredRunParams.historyPath, "history", defaultHistoryPath(), "set path of history file")
	fs.BoolVarP(&configuredRunParams.watch, "watch", "w", false, "watch rule files for changes and reload them")
	fs.StringVarP(&configuredRunParams.logLevel, "log-level", "l", "", "set log level (debug, info, warn, error)")
	fs.StringVar(&configuredRunParams.logFormat, "log-format", "", "set log format (text, json, json-pretty)")
	RootCommand.AddCommand(runCommand)
}
