// Command gocollapse runs the collapse engine on the bundled problem
// domains: Sudoku boards and streaming pipe-tile fields.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
