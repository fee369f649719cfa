//go:build wasip1

////////////////////////////////////////////////////////////////////////////////
// Wasm entry points: one export per instruction, thin glue over the
// contract dispatcher. The host provides storage, env, and atomicity.
////////////////////////////////////////////////////////////////////////////////

package main

import (
	"rebate_dao/contract"
	"rebate_dao/sdk"
)

func main() {}

func init() {
	contract.InitState(contract.WasmState{})
	contract.InitENV(&contract.RealENV{})
}

// call routes an export into the dispatcher and reverts on error.
func call(name string, payload *string) *string {
	raw := ""
	if payload != nil {
		raw = *payload
	}
	result, err := contract.Call(name, raw)
	if err != nil {
		if cerr, ok := err.(*contract.ContractError); ok {
			sdk.Revert(cerr.Msg, cerr.Symbol)
		}
		sdk.Abort(err.Error())
	}
	return &result
}

//go:wasmexport initialize
func Initialize(payload *string) *string {
	return call("initialize", payload)
}

//go:wasmexport initialize_governance
func InitializeGovernance(payload *string) *string {
	return call("initialize_governance", payload)
}

//go:wasmexport update_rebate_rate
func UpdateRebateRate(payload *string) *string {
	return call("update_rebate_rate", payload)
}

//go:wasmexport record_trade
func RecordTrade(payload *string) *string {
	return call("record_trade", payload)
}

//go:wasmexport claim_rebate
func ClaimRebate(payload *string) *string {
	return call("claim_rebate", payload)
}

//go:wasmexport auto_compound
func AutoCompound(payload *string) *string {
	return call("auto_compound", payload)
}

//go:wasmexport stake_tokens
func StakeTokens(payload *string) *string {
	return call("stake_tokens", payload)
}

//go:wasmexport unstake_tokens
func UnstakeTokens(payload *string) *string {
	return call("unstake_tokens", payload)
}

//go:wasmexport create_dao_proposal
func CreateDAOProposal(payload *string) *string {
	return call("create_dao_proposal", payload)
}

//go:wasmexport vote_dao_proposal
func VoteDAOProposal(payload *string) *string {
	return call("vote_dao_proposal", payload)
}

//go:wasmexport execute_dao_proposal
func ExecuteDAOProposal(payload *string) *string {
	return call("execute_dao_proposal", payload)
}
