// Copyright © 2025 The Peano authors

package repl

import (
	"sort"
	"strings"

	"github.com/peanolang/peano/peano"
)

// symbolCompleter implements readline.AutoCompleter by enumerating symbols
// bound in the interpreter environment.
type symbolCompleter struct {
	env *peano.PEnv
}

func (c *symbolCompleter) Do(line []rune, pos int) ([][]rune, int) {
	// Extract the word being typed (backwards from cursor to whitespace,
	// bracket, or comma).
	start := pos
	for start > 0 {
		ch := line[start-1]
		if ch == ' ' || ch == '\t' || ch == '[' || ch == ',' || ch == '\n' {
			break
		}
		start--
	}
	prefix := string(line[start:pos])
	if prefix == "" {
		return nil, 0
	}

	candidates := c.collectSymbols(prefix)
	if len(candidates) == 0 {
		return nil, 0
	}

	// Build completions: each entry is the suffix to append.
	result := make([][]rune, 0, len(candidates))
	for _, sym := range candidates {
		result = append(result, []rune(sym[len(prefix):]))
	}
	return result, len(prefix)
}

func (c *symbolCompleter) collectSymbols(prefix string) []string {
	seen := make(map[string]bool)
	var result []string
	for env := c.env; env != nil; env = env.Parent {
		for name := range env.Scope {
			if strings.HasPrefix(name, prefix) && !seen[name] {
				seen[name] = true
				result = append(result, name)
			}
		}
	}
	sort.Strings(result)
	return result
}
