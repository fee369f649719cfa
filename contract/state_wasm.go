//go:build wasip1

package contract

import "rebate_dao/sdk"

// WasmState forwards straight to the host kv; the host already scopes keys to
// this contract and discards writes of reverted transactions.
type WasmState struct{}

func (WasmState) Set(key, value string) {
	sdk.StateSetObject(key, value)
}

func (WasmState) Get(key string) *string {
	return sdk.StateGetObject(key)
}

func (WasmState) Delete(key string) {
	sdk.StateDeleteObject(key)
}
