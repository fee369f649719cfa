package contract

import "rebate_dao/sdk"

////////////////////////////////////////////////////////////////////////////////
// Contract State Persistence helpers
////////////////////////////////////////////////////////////////////////////////

func saveGlobalState(gs *GlobalState) {
	stateSetIfChanged(globalStateKey(), string(EncodeGlobalState(gs)))
}

// loadGlobalState aborts when the program was never initialized.
func loadGlobalState() *GlobalState {
	ptr := getState().Get(globalStateKey())
	if ptr == nil {
		abortWith(SymNotInitialized, "global state missing")
	}
	gs, err := DecodeGlobalState([]byte(*ptr))
	if err != nil {
		abortWith(SymBadLayoutVersion, "global state: %v", err)
	}
	return gs
}

func globalStateExists() bool {
	return getState().Get(globalStateKey()) != nil
}

func saveGovernance(gov *Governance) {
	stateSetIfChanged(governanceKey(), string(EncodeGovernance(gov)))
}

func loadGovernance() *Governance {
	ptr := getState().Get(governanceKey())
	if ptr == nil {
		abortWith(SymNotInitialized, "governance missing")
	}
	gov, err := DecodeGovernance([]byte(*ptr))
	if err != nil {
		abortWith(SymBadLayoutVersion, "governance: %v", err)
	}
	return gov
}

func governanceExists() bool {
	return getState().Get(governanceKey()) != nil
}

func saveTrader(t *Trader) {
	stateSetIfChanged(traderKey(t.Owner), string(EncodeTrader(t)))
}

// loadOrCreateTrader returns the stored record or a fresh zero-value one;
// traders come into existence on their first recorded trade.
func loadOrCreateTrader(owner sdk.Address) *Trader {
	ptr := getState().Get(traderKey(owner))
	if ptr == nil {
		return &Trader{Owner: owner}
	}
	t, err := DecodeTrader([]byte(*ptr))
	if err != nil {
		abortWith(SymBadLayoutVersion, "trader: %v", err)
	}
	return t
}

// loadTrader aborts when the record does not exist yet.
func loadTrader(owner sdk.Address) *Trader {
	ptr := getState().Get(traderKey(owner))
	if ptr == nil {
		abortWith(SymNotFound, "trader %s", AddressToString(owner))
	}
	t, err := DecodeTrader([]byte(*ptr))
	if err != nil {
		abortWith(SymBadLayoutVersion, "trader: %v", err)
	}
	return t
}

func saveVault(v *StakingVault) {
	stateSetIfChanged(vaultKey(v.Owner), string(EncodeVault(v)))
}

// loadOrCreateVault returns the custody record, creating it alongside the
// first stake.
func loadOrCreateVault(owner sdk.Address) *StakingVault {
	ptr := getState().Get(vaultKey(owner))
	if ptr == nil {
		return &StakingVault{Owner: owner}
	}
	v, err := DecodeVault([]byte(*ptr))
	if err != nil {
		abortWith(SymBadLayoutVersion, "vault: %v", err)
	}
	return v
}

func saveProposal(p *DAOProposal) {
	stateSetIfChanged(proposalKey(p.ID), string(EncodeProposal(p)))
}

func loadProposal(id uint64) *DAOProposal {
	ptr := getState().Get(proposalKey(id))
	if ptr == nil {
		abortWith(SymNotFound, "proposal %d", id)
	}
	p, err := DecodeProposal([]byte(*ptr))
	if err != nil {
		abortWith(SymBadLayoutVersion, "proposal: %v", err)
	}
	return p
}

func saveVoteReceipt(vr *VoteReceipt) {
	getState().Set(voteReceiptKey(vr.ProposalID, vr.Voter), string(EncodeVoteReceipt(vr)))
}

// hasVoted checks receipt existence, which is the whole double-vote guard.
func hasVoted(proposalID uint64, voter sdk.Address) bool {
	return getState().Get(voteReceiptKey(proposalID, voter)) != nil
}
