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
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/cybrota/querytree/ostree"
	"github.com/golang/glog"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

// runQueries executes the command stream at inputPath against a fresh tree.
func runQueries(cfg *Config, inputPath string, stdout, stderr io.Writer) error {
	input, closeInput, err := openInput(inputPath, cfg.Input.Progress, stderr)
	if err != nil {
		return err
	}
	defer closeInput()

	out := bufio.NewWriter(stdout)
	in := NewInterpreter(ostree.New(), cfg, NewPalette(stderr, cfg.Output.Color))

	runErr := in.Run(input, out, stderr)
	if err := out.Flush(); err != nil && runErr == nil {
		runErr = err
	}

	stats := in.Stats()
	glog.V(1).Infof("processed %d commands, %d failed, %d cache hits, %d filter skips",
		stats.Commands, stats.Failures, stats.CacheHits, stats.FilterSkips)
	return runErr
}

func loadConfigOrDefault(path string) *Config {
	config, err := LoadConfig(path)
	if err != nil {
		glog.Warningf("Failed to load configuration: %v. Using default settings.", err)
	}
	return config
}

func newRootCommand() *cobra.Command {
	var configPath string
	var inputPath string

	runE := func(cmd *cobra.Command, args []string) error {
		cfg := loadConfigOrDefault(configPath)
		return runQueries(cfg, inputPath, cmd.OutOrStdout(), cmd.ErrOrStderr())
	}

	var cmdRun = &cobra.Command{
		Use:   "run",
		Short: "Run a command stream from stdin or a file",
		Long:  "Run reads k/m/n commands and prints query results separated by spaces",
		Args:  cobra.NoArgs,
		RunE:  runE,
	}
	cmdRun.Flags().StringVarP(&inputPath, "input", "i", "", "read commands from this file instead of stdin")

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print querytree usage guide",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), getHelpMessage())
		},
	}

	var cmdConfig = &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration, creating the default file if needed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return displaySettings(cmd.OutOrStdout(), configPath)
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print querytree version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "querytree",
		Short:   "Order-statistics queries over an integer command stream",
		Version: version,
		Args:    cobra.NoArgs,
		// Default to the run command when no subcommand is provided
		RunE:          runE,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.Flags().StringVarP(&inputPath, "input", "i", "", "read commands from this file instead of stdin")

	defaultPath, err := getConfigPath()
	if err != nil {
		defaultPath = configFileName
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", defaultPath, "path of the configuration file")
	rootCmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	rootCmd.AddCommand(cmdRun, cmdUsage, cmdConfig, cmdVersion)
	return rootCmd
}

func main() {
	// glog writes files by default, a CLI filter logs to stderr.
	flag.Set("logtostderr", "true")
	// Flags are parsed by cobra; mark the Go flag set parsed for glog.
	flag.CommandLine.Parse(nil)

	rootCmd := newRootCommand()
	err := rootCmd.Execute()
	glog.Flush()
	if err != nil {
		fmt.Fprintln(os.Stderr, "querytree:", err)
		os.Exit(1)
	}
}
