// SPDX-License-Identifier: MIT

// Command dimgroup groups a labeled array described by a YAML document and
// prints the groups, optionally reduced to one value each.
//
//	dimgroup group temps.yaml --reduce mean
//	cat temps.yaml | dimgroup group - --output yaml
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newCLI().root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
