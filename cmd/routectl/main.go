// Command routectl is the operator tool for the cycle routing service:
// it evaluates the cost model for a tag set and runs routes against the database.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
