// Copyright © 2025 The Peano authors

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/peanolang/peano/parser"
	"github.com/peanolang/peano/peano"
)

var (
	runExpression bool
	runReduce     bool
	runQuiet      bool
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run peano code",
	Long: `Run peano code supplied via the command line or files.  Each
argument is a source file unless -e is given, in which case arguments are
expressions.  Results print to stdout; -r rewrites under the restricted
reduction semantics instead of full evaluation.`,
	Run: func(cmd *cobra.Command, args []string) {
		opts := []peano.Config{peano.WithReader(parser.NewReader())}
		if n := viper.GetInt("max-depth"); n > 0 {
			opts = append(opts, peano.WithMaxDepth(n))
		}
		interp, err := peano.NewInterpreter(opts...)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		for i := range args {
			if err := runOne(interp, args[i]); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
		}
	},
}

func runOne(interp *peano.Interpreter, arg string) error {
	name, src := arg, arg
	if !runExpression {
		b, err := os.ReadFile(arg)
		if err != nil {
			return err
		}
		src = string(b)
	} else {
		name = "argument"
	}
	exprs, err := interp.ParseProgram(name, strings.NewReader(src))
	if err != nil {
		return err
	}
	for _, expr := range exprs {
		var res *peano.PVal
		if runReduce {
			res = interp.Reduce(expr)
		} else {
			res = interp.Eval(expr)
		}
		if err := peano.GoError(res); err != nil {
			return err
		}
		if !runQuiet {
			fmt.Println(res)
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVarP(&runExpression, "expression", "e", false,
		"Interpret arguments as peano expressions")
	runCmd.Flags().BoolVarP(&runReduce, "reduce", "r", false,
		"Reduce primitive subterms only instead of evaluating")
	runCmd.Flags().BoolVarP(&runQuiet, "quiet", "q", false,
		"Do not print expression values to stdout")
}
