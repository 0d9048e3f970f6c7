// Copyright © 2025 The Peano authors

package main

import "github.com/peanolang/peano/cmd"

func main() {
	cmd.Execute()
}
