// Package main implements kngen, which writes the adjacency matrix of the
// complete graph K_n to grafo_<n>.txt.
//
// Usage:
//
//	kngen -n 5                 # writes ./grafo_5.txt
//	kngen --out /tmp --print   # prompts for n, echoes the matrix
//	kngen --config kngen.yaml
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
