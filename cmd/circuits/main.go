// Command circuits loads a point set and answers the circuit queries.
//
//	circuits top       -i points.txt --edges 1000
//	circuits threshold -i points.txt
//	circuits solve     -i points.txt --edges 1000 --json
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
