package contract

import "rebate_dao/sdk"

// -----------------------------------------------------------------------------
// Program Initialization
// -----------------------------------------------------------------------------

// Initialize establishes the GlobalState singleton and places the rebate mint
// under program authority. The caller becomes the immutable authority.
// Fails with already_initialized when the singleton exists, mirroring the
// runtime's account-creation semantics rather than re-checking later.
func Initialize(args *InitializeArgs) *GlobalState {
	if globalStateExists() {
		abortWith(SymAlreadyInitialized, "global state exists")
	}
	if args.FeeDiscount > 100 {
		abortWith(SymInvalidParameter, "fee discount %d above 100", args.FeeDiscount)
	}

	gs := &GlobalState{
		Authority:       getSenderAddress(),
		RebateMint:      sdk.AssetRebate,
		FeeDiscount:     args.FeeDiscount,
		MaxTradeAmount:  FallbackMaxTradeAmount,
		MinTradeGapSecs: FallbackMinTradeGapSecs,
	}
	saveGlobalState(gs)

	emitInitEvent(AddressToString(gs.Authority), gs.FeeDiscount)
	return gs
}

// InitializeGovernance establishes the Governance singleton with starting
// parameters copied from GlobalState. Authority-signed only.
func InitializeGovernance() *Governance {
	gs := loadGlobalState()
	requireSigner(gs.Authority)
	if governanceExists() {
		abortWith(SymAlreadyInitialized, "governance exists")
	}

	gov := &Governance{
		RebateRate:         FallbackRebateRate,
		FeeDiscount:        gs.FeeDiscount,
		MaxFeeDiscount:     FallbackMaxFeeDiscount,
		ClaimCooldownSecs:  FallbackClaimCooldownSecs,
		VotingPeriodSecs:   FallbackVotingPeriodSecs,
		LockPeriodSecs:     FallbackLockPeriodSecs,
		MaturityPeriodSecs: FallbackMaturityPeriodSecs,
		PenaltyEarlyPct:    FallbackPenaltyEarlyPct,
		PenaltyMidPct:      FallbackPenaltyMidPct,
		MultTier1:          FallbackMultTier1,
		MultTier2:          FallbackMultTier2,
		MultTier3:          FallbackMultTier3,
		ProposalSeq:        0,
	}
	saveGovernance(gov)

	emitGovernanceInitEvent(gov.RebateRate, gov.FeeDiscount)
	return gov
}

// UpdateRebateRate is the authority-signed admin path for rate changes
// outside a vote. Bounded at 100%.
func UpdateRebateRate(args *UpdateRebateRateArgs) *Governance {
	gs := loadGlobalState()
	requireSigner(gs.Authority)
	gov := loadGovernance()
	if args.NewRate > MaxRebateRate {
		abortWith(SymInvalidParameter, "rate %d above %d", args.NewRate, MaxRebateRate)
	}
	old := gov.RebateRate
	gov.RebateRate = args.NewRate
	saveGovernance(gov)

	emitRebateRateUpdated(old, gov.RebateRate)
	return gov
}

// requireSigner aborts unless the current sender is the expected identity.
func requireSigner(expected sdk.Address) {
	if getSenderAddress() != expected {
		abortWith(SymUnauthorized, "signer %s is not %s",
			AddressToString(getSenderAddress()), AddressToString(expected))
	}
}
