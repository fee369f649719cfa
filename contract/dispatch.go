package contract

import "fmt"

// -----------------------------------------------------------------------------
// Instruction Dispatch
// -----------------------------------------------------------------------------

// handlers is the instruction surface: one entry point per instruction name.
// Each handler decodes its typed payload, mutates state, and returns a JSON
// result for the caller.
var handlers = map[string]func(payload string) string{
	"initialize": func(payload string) string {
		gs := Initialize(decodeInitializeArgs(payload))
		return amountJSON("fee_discount", Amount(gs.FeeDiscount))
	},
	"initialize_governance": func(string) string {
		return governanceJSON(InitializeGovernance())
	},
	"update_rebate_rate": func(payload string) string {
		return governanceJSON(UpdateRebateRate(decodeUpdateRebateRateArgs(payload)))
	},
	"record_trade": func(payload string) string {
		return traderJSON(RecordTrade(decodeRecordTradeArgs(payload)))
	},
	"claim_rebate": func(string) string {
		return amountJSON("minted", ClaimRebate())
	},
	"auto_compound": func(string) string {
		return amountJSON("compounded", AutoCompound())
	},
	"stake_tokens": func(payload string) string {
		v := StakeTokens(decodeStakeArgs(payload))
		return amountJSON("vault_balance", v.Balance)
	},
	"unstake_tokens": func(payload string) string {
		return amountJSON("returned", UnstakeTokens(decodeStakeArgs(payload)))
	},
	"create_dao_proposal": func(payload string) string {
		p := CreateDAOProposal(decodeCreateProposalArgs(payload))
		return proposalJSON(p, nowUnix())
	},
	"vote_dao_proposal": func(payload string) string {
		p := VoteDAOProposal(decodeVoteProposalArgs(payload))
		return proposalJSON(p, nowUnix())
	},
	"execute_dao_proposal": func(payload string) string {
		p := ExecuteDAOProposal(decodeProposalIDArgs(payload))
		return proposalJSON(p, nowUnix())
	},
	// read-only views for the harness
	"get_trader": func(string) string {
		return traderJSON(loadTrader(getSenderAddress()))
	},
	"get_governance": func(string) string {
		return governanceJSON(loadGovernance())
	},
	"get_proposal": func(payload string) string {
		args := decodeProposalIDArgs(payload)
		return proposalJSON(loadProposal(args.ProposalID), nowUnix())
	},
}

// Call executes one instruction inside a write session. The handler's writes
// become visible only on success; any abort discards the whole session and
// surfaces the ContractError, matching the all-or-nothing guarantee the
// hosting runtime gives on chain.
func Call(name string, payload string) (result string, err error) {
	handler, ok := handlers[name]
	if !ok {
		return "", &ContractError{Symbol: SymUnknownInstruction, Msg: name}
	}
	if !getSenderAddress().IsValid() {
		return "", &ContractError{Symbol: SymUnauthorized, Msg: "missing signer"}
	}

	base := state
	sess := newSession(base)
	state = sess
	defer func() {
		state = base
		if r := recover(); r != nil {
			if cerr, ok := r.(*ContractError); ok {
				err = cerr
				return
			}
			// anything else panicking is a program bug, not bad input
			err = &ContractError{Symbol: SymInternal, Msg: fmt.Sprint(r)}
			return
		}
		sess.commit()
	}()

	result = handler(payload)
	return result, nil
}
