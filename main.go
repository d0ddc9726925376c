/*
Copyright © 2026 The quotetray authors
*/
package main

import (
	"os"

	"github.com/quotetray/quotetray/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
