// Copyright © 2025 The Peano authors

package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/peanolang/peano/repl"
)

var replReduce bool

// replCmd represents the repl command
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive peano REPL",
	Long: `Start an interactive read-eval-print loop.

The full bootstrap catalog is bound in the root environment.  Line editing,
in-session history, and symbol completion are supported via readline.  An
expression may span lines while a bracket is open.  Use Ctrl-D to exit.

Example REPL session:
  peano> Add['1, '2]
  Succ[Succ[Succ[Zero]]]
  peano> Bind[x, Add[x, '1]]['4]
  Succ[Succ[Succ[Succ[Succ[Zero]]]]]
  peano> Recurse[k, Succ[Self], Zero]['3]
  Succ[Succ[Succ[Zero]]]
  peano> Add[True, '1]
  Add[True, Succ[Zero]]`,
	Run: func(cmd *cobra.Command, args []string) {
		repl.RunRepl(filepath.Base(os.Args[0])+"> ", repl.WithReduce(replReduce))
	},
}

func init() {
	rootCmd.AddCommand(replCmd)

	replCmd.Flags().BoolVarP(&replReduce, "reduce", "r", false,
		"Rewrite input under restricted reduction instead of full evaluation")
}
