////////////////////////////////////////////////////////////////////////////////
// rebated: local single-instruction runner. Executes one instruction against
// a file-backed state snapshot so the contract can be poked at without a
// chain. State is plain JSON on disk; every run is one transaction.
////////////////////////////////////////////////////////////////////////////////

package main

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/lmittmann/tint"
	"github.com/spf13/pflag"

	"rebate_dao/contract"
	"rebate_dao/sdk"
)

func main() {
	var (
		statePath = pflag.String("state", "state.json", "path to the state snapshot")
		sender    = pflag.String("as", "hive:local", "signer identity for this transaction")
		at        = pflag.String("at", "", "block timestamp (RFC3339), defaults to now")
		verbose   = pflag.Bool("verbose", false, "log contract events")
	)
	pflag.Parse()

	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelInfo,
		TimeFormat: time.TimeOnly,
	}))

	args := pflag.Args()
	if len(args) < 1 {
		logger.Error("usage: rebated [flags] <instruction> [payload-json]")
		os.Exit(2)
	}
	instruction := args[0]
	payload := ""
	if len(args) > 1 {
		payload = args[1]
	}

	blockTime := time.Now().UTC()
	if *at != "" {
		t, err := time.Parse(time.RFC3339, *at)
		if err != nil {
			logger.Error("bad --at timestamp", "err", err)
			os.Exit(2)
		}
		blockTime = t
	}

	store := contract.NewMemState()
	if err := loadState(*statePath, store); err != nil {
		logger.Error("load state", "path", *statePath, "err", err)
		os.Exit(1)
	}

	env := contract.NewMockENV(sdk.Address(*sender))
	env.Clock = clockwork.NewFakeClockAt(blockTime)
	env.Tx = fmt.Sprintf("local-%d", blockTime.Unix())
	contract.InitState(store)
	contract.InitENV(env)

	if *verbose {
		sdk.SetLogSink(func(line string) {
			logger.Info("event", "line", line)
		})
	}

	result, err := contract.Call(instruction, payload)
	if err != nil {
		logger.Error("instruction failed", "instruction", instruction, "err", err)
		os.Exit(1)
	}

	if err := saveState(*statePath, store); err != nil {
		logger.Error("save state", "path", *statePath, "err", err)
		os.Exit(1)
	}

	logger.Info("committed",
		"instruction", instruction,
		"signer", *sender,
		"domain", string(sdk.Address(*sender).Domain()))
	fmt.Println(result)
}

// loadState reads the JSON snapshot; a missing file is an empty ledger.
// Keys and values hold raw record bytes, so both sides are base64 on disk.
func loadState(path string, store *contract.MemState) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	encoded := map[string]string{}
	if err := json.Unmarshal(data, &encoded); err != nil {
		return err
	}
	db := make(map[string]string, len(encoded))
	for k, v := range encoded {
		key, err := base64.StdEncoding.DecodeString(k)
		if err != nil {
			return fmt.Errorf("bad state key %q: %w", k, err)
		}
		val, err := base64.StdEncoding.DecodeString(v)
		if err != nil {
			return fmt.Errorf("bad state value for %q: %w", k, err)
		}
		db[string(key)] = string(val)
	}
	store.Load(db)
	return nil
}

// saveState writes the snapshot back, pretty-printed for diffing.
func saveState(path string, store *contract.MemState) error {
	encoded := map[string]string{}
	for k, v := range store.Snapshot() {
		encoded[base64.StdEncoding.EncodeToString([]byte(k))] = base64.StdEncoding.EncodeToString([]byte(v))
	}
	data, err := json.MarshalIndent(encoded, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
