package contract

import "rebate_dao/sdk"

// Read-only typed accessors for the harness, the runner, and tests. They
// never abort; absence is a boolean.

// TraderAccount returns the stored trader record, if any.
// Example payload: TraderAccount(AddressFromString("hive:alice"))
func TraderAccount(owner sdk.Address) (*Trader, bool) {
	ptr := getState().Get(traderKey(owner))
	if ptr == nil {
		return nil, false
	}
	t, err := DecodeTrader([]byte(*ptr))
	if err != nil {
		return nil, false
	}
	return t, true
}

// VaultAccount returns the staking vault record, if any.
func VaultAccount(owner sdk.Address) (*StakingVault, bool) {
	ptr := getState().Get(vaultKey(owner))
	if ptr == nil {
		return nil, false
	}
	v, err := DecodeVault([]byte(*ptr))
	if err != nil {
		return nil, false
	}
	return v, true
}

// GovernanceAccount returns the governance singleton, if initialized.
func GovernanceAccount() (*Governance, bool) {
	ptr := getState().Get(governanceKey())
	if ptr == nil {
		return nil, false
	}
	gov, err := DecodeGovernance([]byte(*ptr))
	if err != nil {
		return nil, false
	}
	return gov, true
}

// GlobalStateAccount returns the global config singleton, if initialized.
func GlobalStateAccount() (*GlobalState, bool) {
	ptr := getState().Get(globalStateKey())
	if ptr == nil {
		return nil, false
	}
	gs, err := DecodeGlobalState([]byte(*ptr))
	if err != nil {
		return nil, false
	}
	return gs, true
}

// ProposalAccount returns one proposal record, if any.
func ProposalAccount(id uint64) (*DAOProposal, bool) {
	ptr := getState().Get(proposalKey(id))
	if ptr == nil {
		return nil, false
	}
	p, err := DecodeProposal([]byte(*ptr))
	if err != nil {
		return nil, false
	}
	return p, true
}

// VaultAddress exposes the derived custody address for one trader.
func VaultAddress(owner sdk.Address) sdk.Address {
	return vaultAddress(owner)
}

// TreasuryAddress exposes the derived governance treasury address.
func TreasuryAddress() sdk.Address {
	return treasuryAddress()
}
