// Copyright © 2025 The Peano authors

package cmd

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile   string
	colorFlag string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "peano",
	Short: "Peano — a natural-number expression language",
	Long: `Peano is a small expression language built on Peano-style natural
numbers, booleans, and bracketed prefix application, with two operational
semantics over one syntax: full evaluation and restricted reduction.

Getting started:
  peano run file.peano             Run a source file
  peano run -e "Add['1, '2]"       Evaluate an expression
  peano run -r -e "Bind[x, x]['1]" Reduce instead of evaluating
  peano repl                       Start an interactive REPL
  peano doc                        List the bootstrap catalog
  peano doc Recurse                Show one catalog entry

Language overview:
  Natural literals are written 'n ('0, '42) and render canonically as
  nested successors: Succ[Succ[Zero]].  Application is bracketed prefix:
  Add['1, '2].  Bind[x, body] builds a function applied as
  Bind[x, body]['4].  Recurse[k, step, base] defines structural recursion
  over a natural; inside the step, Self names the result at the
  predecessor and k the predecessor itself.  Evaluate[e] forces full
  evaluation, Reduce[e] normalizes only primitive operators.

  Primitive operators applied to operands of the wrong kind are not
  errors; they stay as inert residual terms (Add[True, '1] is a value).`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.  This is called by main.main().  It only needs to happen
// once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.peano.yaml)")
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "auto",
		`Control colored output: "auto", "always", or "never".`)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".peano" (without
		// extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".peano")
	}

	viper.SetDefault("max-depth", 0)
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}

// useColor resolves the --color flag, falling back to terminal detection in
// auto mode.
func useColor() bool {
	switch colorFlag {
	case "always":
		return true
	case "never":
		return false
	default:
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}
}
