//go:build !wasip1

package sdk

// Native (non-wasm) build: no host to talk to. Log lines go to a swappable
// sink so tests and the local runner can capture events, and the state/env
// calls are not available; the contract reaches storage through its State
// interface instead.

var logSink func(string)

// SetLogSink routes Log output somewhere useful (test buffer, slog, stdout).
// Example payload: sdk.SetLogSink(func(s string) { fmt.Println(s) })
func SetLogSink(fn func(string)) {
	logSink = fn
}

// Log writes an event line to the configured sink, dropping it when unset.
// Example payload: sdk.Log("rt|by:hive:alice")
func Log(s string) {
	if logSink != nil {
		logSink(s)
	}
}

// Abort mirrors the wasm host abort by panicking; the dispatcher recovers it.
// Example payload: sdk.Abort("no stake")
func Abort(msg string) {
	panic(msg)
}

// Revert mirrors the wasm host revert by panicking with the symbol attached.
// Example payload: sdk.Revert("bad input", "invalid_amount")
func Revert(msg string, symbol string) {
	panic(symbol + ": " + msg)
}
