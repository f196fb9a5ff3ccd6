// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"

	"github.com/cybrota/arbor/trees"
	"github.com/spf13/cobra"
)

func main() {
	asciiLogo := `
  █████╗ ██████╗ ██████╗  ██████╗ ██████╗
 ██╔══██╗██╔══██╗██╔══██╗██╔═══██╗██╔══██╗
 ███████║██████╔╝██████╔╝██║   ██║██████╔╝
 ██╔══██║██╔══██╗██╔══██╗██║   ██║██╔══██╗
 ██║  ██║██║  ██║██████╔╝╚██████╔╝██║  ██║
 ╚═╝  ╚═╝╚═╝  ╚═╝╚═════╝  ╚═════╝ ╚═╝  ╚═╝
Binary search trees, AVL trees and red-black trees in your terminal [Version: %s%s%s]

Copyright @ Naren Yellavula

`
	InitializeColors()
	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	config, cfgErr := LoadConfig()
	log := newLogger(config.Log.Level, nil)
	if cfgErr != nil {
		log.WithError(cfgErr).Warn("failed to load configuration, using default settings")
	}

	// resolveKind prefers the flag and falls back to the configured default
	resolveKind := func(cmd *cobra.Command) (trees.Kind, error) {
		if !cmd.Flags().Changed("kind") {
			return config.Kind(), nil
		}
		return trees.ParseKind(cmd.Flag("kind").Value.String())
	}

	var cmdRun = &cobra.Command{
		Use:   "run [ops...]",
		Short: "Apply operations to a tree and print a traversal",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Run applies an operation script and inline operations to a fresh tree, then prints its traversal`),
		Args:  cobra.MinimumNArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := resolveKind(cmd)
			if err != nil {
				return err
			}
			order := config.Order()
			if cmd.Flags().Changed("order") {
				if order, err = trees.ParseOrder(cmd.Flag("order").Value.String()); err != nil {
					return err
				}
			}
			opts := runOptions{
				Kind:   kind,
				Order:  order,
				Ops:    args,
				Colors: config.Render.Colors,
			}
			opts.ScriptPath, _ = cmd.Flags().GetString("script")
			opts.Print, _ = cmd.Flags().GetBool("print")
			opts.JSON, _ = cmd.Flags().GetBool("json")
			opts.Copy, _ = cmd.Flags().GetBool("copy")
			opts.All, _ = cmd.Flags().GetBool("all")

			_, err = runOps(cmd.OutOrStdout(), opts, log)
			return err
		},
	}
	cmdRun.Flags().String("kind", "", "tree kind: bst, avl or rbt (default from settings)")
	cmdRun.Flags().String("script", "", "file with one operation per line, '-' for stdin")
	cmdRun.Flags().String("order", "", "traversal to print: preorder, inorder, postorder or levelorder")
	cmdRun.Flags().Bool("print", false, "print the tree")
	cmdRun.Flags().Bool("json", false, "print a red-black tree as a JSON snapshot")
	cmdRun.Flags().Bool("copy", false, "copy the traversal to the clipboard")
	cmdRun.Flags().Bool("all", false, "print every traversal order")

	var cmdCheck = &cobra.Command{
		Use:   "check",
		Short: "Stress every tree kind with random operations",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Check runs random insert and delete sequences and validates every invariant after each step`),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := StressOptions{
				Rounds:   config.Stress.Rounds,
				Values:   config.Stress.Values,
				Seed:     config.Stress.Seed,
				Progress: true,
			}
			if cmd.Flags().Changed("rounds") {
				opts.Rounds, _ = cmd.Flags().GetInt("rounds")
			}
			if cmd.Flags().Changed("values") {
				opts.Values, _ = cmd.Flags().GetInt("values")
			}
			if cmd.Flags().Changed("seed") {
				opts.Seed, _ = cmd.Flags().GetInt64("seed")
			}
			if cmd.Flags().Changed("kind") {
				kind, err := resolveKind(cmd)
				if err != nil {
					return err
				}
				opts.Kinds = []trees.Kind{kind}
			}
			opts.Progress, _ = cmd.Flags().GetBool("progress")

			report, err := runStress(opts, log)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\n%s✅ %d rounds, %d operations, seed %d%s\n", Green, report.Rounds, report.Ops, report.Seed, Reset)
			for _, kind := range trees.Kinds {
				if h, ok := report.MaxHeight[kind]; ok {
					fmt.Fprintf(cmd.OutOrStdout(), "  • %-20s max height %d\n", kind.Title(), h)
				}
			}
			return nil
		},
	}
	cmdCheck.Flags().Int("rounds", 0, "number of rounds (default from settings)")
	cmdCheck.Flags().Int("values", 0, "values per round (default from settings)")
	cmdCheck.Flags().Int64("seed", 0, "random seed, 0 picks one")
	cmdCheck.Flags().String("kind", "", "only check one tree kind")
	cmdCheck.Flags().Bool("progress", true, "show a progress bar")

	var cmdExplore = &cobra.Command{
		Use:   "explore",
		Short: "Launches the interactive tree explorer",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Explore opens the Arbor UI to edit a tree and keep iterations of it`),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := resolveKind(cmd)
			if err != nil {
				return err
			}
			session, err := NewSession(kind, log)
			if err != nil {
				return err
			}
			return runExplorer(session, config, NewRenderCache(), log)
		},
	}
	cmdExplore.Flags().String("kind", "", "tree kind to start with")

	var cmdExplain = &cobra.Command{
		Use:   "explain [kind]",
		Short: "Print notes on how a tree kind works",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Explain renders notes on the rules and rebalancing of a tree kind`),
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := config.Kind()
			if len(args) == 1 {
				var err error
				if kind, err = trees.ParseKind(args[0]); err != nil {
					return err
				}
			}
			width, _ := cmd.Flags().GetInt("width")
			rendered, err := renderExplain(NewRenderCache(), kind, width)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), rendered)
			return nil
		},
	}
	cmdExplain.Flags().Int("width", 80, "word wrap width")

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print Arbor usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the arbor CLI usage guide`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show current configuration settings",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Settings prints the effective configuration and creates ~/.arbor.yaml when missing`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings()
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print Arbor version",
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:           "arbor",
		Version:       version,
		Long:          asciiLogo,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the explorer when no subcommand is provided
			return cmdExplore.RunE(cmdExplore, args)
		},
	}
	rootCmd.AddCommand(cmdRun, cmdCheck, cmdExplore, cmdExplain, cmdUsage, cmdSettings, cmdVersion)
	if err := rootCmd.Execute(); err != nil {
		entry := log.WithError(err)
		if line, ok := OpLine(err); ok {
			entry = entry.WithField("line", line)
		}
		entry.Error("arbor failed")
		os.Exit(1)
	}
}
