// Command pangraph extracts assembly walks from a pangenome variation graph
// and reports the structural variants along them as JSON.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
