//go:build !wasip1

package main

import (
	"fmt"
	"os"
)

// Native builds have no host to export into; use cmd/rebated to poke at the
// contract locally.
func main() {
	fmt.Fprintln(os.Stderr, "this binary is the wasm contract image; build with GOOS=wasip1, or use rebated for local runs")
	os.Exit(1)
}
