// Command arith evaluates four-operator arithmetic. Expressions given as
// arguments are evaluated and printed; with no arguments, arith reads
// expressions from standard input one line at a time.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
