// Copyright © 2025 The Peano authors

package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"

	"github.com/peanolang/peano/docs"
)

// catalogDocs maps every bootstrap catalog name to its documentation.  The
// front-end may assume each of these names is bound in the root environment.
var catalogDocs = map[string]string{
	"Zero":  "The natural number zero.  Naturals render canonically as nested successors over Zero.",
	"True":  "The boolean truth value.",
	"False": "The boolean falsehood value.",
	"And":   "Boolean conjunction of two booleans.  With operands of any other kind the application stays residual.",
	"Or":    "Boolean disjunction of two booleans.  With operands of any other kind the application stays residual.",
	"Not":   "Boolean negation of one boolean.  With an operand of any other kind the application stays residual.",
	"Equal": "Structural equality of two naturals or two booleans.  For operands without value equality the application stays residual.",
	"Succ":  "The successor of one natural.",
	"Add":   "The sum of two naturals.",
	"LessThan": "Strict ordering of two naturals: LessThan['3, '5] is True, " +
		"LessThan['5, '3] and LessThan['3, '3] are False.",
	"Evaluate": "Forces full evaluation of its single operand.  Idempotent on values.",
	"Reduce":   "Rewrites its single operand under the restricted semantics: only primitive-operator subterms are normalized; bind forms, recursion, and special forms stay inert.",
	"Bind": "Bind[p1, ..., pn, body] builds a function of n parameters.  Applying it binds each parameter in a fresh child of the calling environment and evaluates the body there; free names resolve at the call site.",
	"Recurse": "Recurse[k, step, base] defines structural recursion over one natural argument n.  The base case is evaluated for n = 0; for each k from 1 to n the step is evaluated with the induction variable bound to k-1 and Self bound to the previous result.",
}

var docGuide bool

// docCmd represents the doc command
var docCmd = &cobra.Command{
	Use:   "doc [name]",
	Short: "Show documentation for catalog bindings",
	Long: `Show documentation for the bootstrap catalog bound in every root
environment.  Without arguments all entries are listed.  With --guide the
language reference is printed instead.`,
	Run: func(cmd *cobra.Command, args []string) {
		if docGuide {
			fmt.Print(docs.LangGuide)
			return
		}
		if len(args) == 0 {
			names := make([]string, 0, len(catalogDocs))
			for name := range catalogDocs {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				printDoc(name, catalogDocs[name])
			}
			return
		}
		for _, name := range args {
			doc, ok := catalogDocs[name]
			if !ok {
				fmt.Fprintf(os.Stderr, "no catalog entry: %s\n", name)
				os.Exit(1)
			}
			printDoc(name, doc)
		}
	},
}

func printDoc(name, doc string) {
	header := name
	if useColor() {
		header = "\x1b[1m" + name + "\x1b[0m"
	}
	body := indent.String(wordwrap.String(doc, 72), 2)
	fmt.Printf("%s\n%s\n", header, strings.TrimSuffix(body, "\n"))
}

func init() {
	rootCmd.AddCommand(docCmd)

	docCmd.Flags().BoolVar(&docGuide, "guide", false,
		"Print the language reference instead of catalog entries")
}
