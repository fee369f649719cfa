package contract

// -----------------------------------------------------------------------------
// Rebate Accrual (shared by claim_rebate and auto_compound)
// -----------------------------------------------------------------------------

// rebateMultiplier steps through the governance volume tiers. Below tier1
// the multiplier is 1.
func rebateMultiplier(gov *Governance, volume Amount) int64 {
	switch {
	case volume >= gov.MultTier3:
		return 5
	case volume >= gov.MultTier2:
		return 3
	case volume >= gov.MultTier1:
		return 2
	default:
		return 1
	}
}

// accrueRebate computes the mintable amount from the trader's rolling volume,
// enforces the claim cooldown, then consumes the accumulator so the same
// volume can never be rewarded twice. Both claim paths share this; claiming
// either way starts the cooldown for both.
func accrueRebate(trader *Trader, gov *Governance, now int64) Amount {
	if trader.LastClaimAt > 0 && now-trader.LastClaimAt < gov.ClaimCooldownSecs {
		abortWith(SymNothingToClaim, "cooldown, %ds since last claim", now-trader.LastClaimAt)
	}
	// fixed-point multiply with floor division, so issuance never rounds up.
	base := mulDivFloor(trader.RollingVolume, int64(gov.RebateRate), RateScale)
	total := checkedMul(base, rebateMultiplier(gov, trader.RollingVolume))
	if total == 0 {
		abortWith(SymNothingToClaim, "volume %d accrues nothing", trader.RollingVolume)
	}
	trader.RollingVolume = 0
	trader.LastClaimAt = now
	return total
}

// ClaimRebate mints the accrued rebate to the signer's spendable token
// account. The accumulator reset inside accrueRebate is the double-claim
// defense; repeated claims without new trades hit nothing_to_claim.
func ClaimRebate() Amount {
	loadGlobalState()
	gov := loadGovernance()
	trader := loadTrader(getSenderAddress())
	now := nowUnix()

	amount := accrueRebate(trader, gov, now)
	tokenMintTo(trader.Owner, amount)
	saveTrader(trader)

	emitRebateClaimed(AddressToString(trader.Owner), amount)
	return amount
}

// AutoCompound mints the accrued rebate straight into the staking vault,
// compounding without a claim+stake round trip. Same cooldown and
// accumulator rules as ClaimRebate.
func AutoCompound() Amount {
	loadGlobalState()
	gov := loadGovernance()
	trader := loadTrader(getSenderAddress())
	now := nowUnix()

	amount := accrueRebate(trader, gov, now)

	vault := loadOrCreateVault(trader.Owner)
	tokenMintTo(vaultAddress(trader.Owner), amount)
	vault.Balance = checkedAdd(vault.Balance, amount)
	if vault.StakeStartedAt == 0 {
		vault.StakeStartedAt = now
	}
	trader.StakedAmount = vault.Balance
	saveVault(vault)
	saveTrader(trader)

	emitCompounded(AddressToString(trader.Owner), amount, vault.Balance)
	return amount
}
