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
	"io"
	"log"
	"os"

	"github.com/cybrota/avltree/avl"
	"github.com/spf13/cobra"
)

const version = "0.3.0"

// loadConfigOrDefault never fails: a broken file is reported and ignored.
func loadConfigOrDefault() *Config {
	config, err := LoadConfig()
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
		return defaultConfig()
	}
	return config
}

// newSeededTree returns a tree holding the configured seed values
func newSeededTree(config *Config) *avl.Tree[int] {
	tree := avl.New[int]()
	tree.InsertAll(config.Menu.Seed...)
	return tree
}

func runSession(plain bool) error {
	config := loadConfigOrDefault()
	tree := newSeededTree(config)
	renderCache := NewRenderCache(config.CacheExpiry())

	if plain || config.Menu.Interface == InterfacePlain {
		menu := NewLineMenu(tree, renderCache, os.Stdin, os.Stdout, config.Render.ShowStats)
		return menu.Run()
	}
	return runBubbleTeaApp(tree, renderCache, config)
}

func printValues(args []string, asStrings bool) error {
	if asStrings {
		tree := avl.New[string]()
		tree.InsertAll(args...)
		return tree.Display(os.Stdout)
	}

	values, err := parseInts(args)
	if err != nil {
		return err
	}
	tree := avl.New[int]()
	tree.InsertAll(values...)
	return tree.Display(os.Stdout)
}

func main() {
	InitializeColors()

	asciiLogo := `
 /\   \    /  |       _|_  ._   _    _
/--\   \  /   |        |_  |   (/_  (/_
        \/    |____
Self-balancing binary search trees, drawn in your terminal [Version: %s%s%s]

Copyright @ Naren Yellavula

`

	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	var cmdRun = &cobra.Command{
		Use:   "run",
		Short: "Launches the interactive AVL tree menu",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Run opens the menu to insert, delete and print integers in an AVL tree`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			plain, _ := cmd.Flags().GetBool("plain")
			if err := runSession(plain); err != nil {
				log.Fatalf("Error running menu: %v", err)
			}
		},
	}
	cmdRun.Flags().Bool("plain", false, "use the line-oriented menu instead of the full-screen one")

	var cmdPrint = &cobra.Command{
		Use:   "print VALUE...",
		Short: "Print the AVL tree built from the given values",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Print inserts the values in order and draws the resulting tree`),
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			asStrings, _ := cmd.Flags().GetBool("strings")
			if err := printValues(args, asStrings); err != nil {
				log.Fatalf("Error printing tree: %v", err)
			}
		},
	}
	cmdPrint.Flags().Bool("strings", false, "treat values as strings instead of integers")

	var cmdScript = &cobra.Command{
		Use:   "script FILE",
		Short: "Run a file of tree operations",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Script runs insert, delete, print, search and height commands, one per line`),
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			verify, _ := cmd.Flags().GetBool("verify")
			if err := runScriptFile(args[0], os.Stdout, verify); err != nil {
				log.Fatalf("Error running script: %v", err)
			}
		},
	}
	cmdScript.Flags().Bool("verify", false, "check the tree invariants after every change")

	var cmdBench = &cobra.Command{
		Use:   "bench",
		Short: "Stress the tree with random inserts and deletes",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Bench checks balance, ordering and membership after every random operation`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			ops, _ := cmd.Flags().GetInt("ops")
			keys, _ := cmd.Flags().GetInt("keys")
			seed, _ := cmd.Flags().GetInt64("seed")

			config := loadConfigOrDefault()
			var progress io.Writer = os.Stderr
			if config.Quiet {
				progress = io.Discard
			}

			result, err := RunBench(BenchOptions{Ops: ops, KeySpace: keys, Seed: seed, Progress: progress})
			if err != nil {
				log.Fatalf("%sBench failed:%s %v", Error, Reset, err)
			}
			fmt.Printf("\n%s✅ %s%s\n", Green, result, Reset)
		},
	}
	cmdBench.Flags().Int("ops", 100000, "number of random operations")
	cmdBench.Flags().Int("keys", 1000, "keys are drawn from [0, keys)")
	cmdBench.Flags().Int64("seed", 1, "random seed")

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show avltree settings",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Settings shows the configuration file, creating it with defaults if missing`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			configPath, err := getConfigPath()
			if err != nil {
				log.Fatalf("Error locating home directory: %v", err)
			}
			if err := displaySettings(os.Stdout, configPath); err != nil {
				log.Fatalf("Error displaying settings: %v", err)
			}
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print avltree usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the avltree CLI usage guide`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print avltree version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "avltree",
		Version: version,
		Long:    asciiLogo,
		Run: func(cmd *cobra.Command, args []string) {
			// Default to run command when no subcommand is provided
			if err := runSession(false); err != nil {
				log.Fatalf("Error running menu: %v", err)
			}
		},
	}
	rootCmd.AddCommand(cmdRun, cmdPrint, cmdScript, cmdBench, cmdSettings, cmdUsage, cmdVersion)
	rootCmd.Execute()
}
