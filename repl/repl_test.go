// Copyright © 2025 The Peano authors

package repl

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func runReplWithString(t *testing.T, input string, opts ...Option) string {
	t.Helper()
	inR, inW := io.Pipe()
	outR, outW := io.Pipe()

	go func() {
		defer inW.Close() //nolint:errcheck // test cleanup
		_, _ = io.WriteString(inW, input)
	}()

	go func() {
		opts = append([]Option{WithStdin(inR), WithStderr(outW)}, opts...)
		RunRepl("peano> ", opts...)
		inR.Close()  //nolint:errcheck,gosec // test cleanup
		outW.Close() //nolint:errcheck,gosec // test cleanup
	}()

	var output bytes.Buffer
	_, _ = io.Copy(&output, outR)
	outR.Close() //nolint:errcheck,gosec // test cleanup

	return output.String()
}

func TestRunRepl(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		opts     []Option
		expected string
	}{
		{
			name:     "addition",
			input:    "Add['1, '1]\n",
			expected: "Succ[Succ[Zero]]",
		},
		{
			name:     "constant",
			input:    "True\n",
			expected: "True",
		},
		{
			name:     "unbound symbol",
			input:    "Foo\n",
			expected: "unbound symbol: Foo",
		},
		{
			name:     "open bracket continues across lines",
			input:    "Add['1,\n'2]\n",
			expected: "Succ[Succ[Succ[Zero]]]",
		},
		{
			name:     "reduce mode leaves bind application inert",
			input:    "Bind[x, x]['1]\n",
			opts:     []Option{WithReduce(true)},
			expected: "Bind[x, x][Succ[Zero]]",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := runReplWithString(t, tc.input, tc.opts...)
			require.Contains(t, got, tc.expected)
		})
	}
}

func TestBracketDepth(t *testing.T) {
	tests := []struct {
		src   string
		depth int
	}{
		{"", 0},
		{"Add['1, '2]", 0},
		{"Add['1,", 1},
		{"f[g[", 2},
		{"f[g[x]", 1},
		{"]", -1},
	}
	for _, test := range tests {
		if d := bracketDepth([]byte(test.src)); d != test.depth {
			t.Errorf("bracketDepth(%q) = %d, want %d", test.src, d, test.depth)
		}
	}
}
