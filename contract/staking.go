package contract

// -----------------------------------------------------------------------------
// Staking
// -----------------------------------------------------------------------------

// StakeTokens moves tokens from the signer's spendable account into their
// staking vault. The vault record is created alongside the first stake; the
// stake clock starts only when the vault goes from empty to funded.
func StakeTokens(args *StakeArgs) *StakingVault {
	if args.Amount <= 0 {
		abortWith(SymInvalidAmount, "stake amount %d", args.Amount)
	}
	loadGlobalState()
	owner := getSenderAddress()
	now := nowUnix()

	tokenTransfer(owner, vaultAddress(owner), args.Amount, SymInsufficientBalance)

	vault := loadOrCreateVault(owner)
	vault.Balance = checkedAdd(vault.Balance, args.Amount)
	if vault.StakeStartedAt == 0 {
		vault.StakeStartedAt = now
	}
	saveVault(vault)

	trader := loadOrCreateTrader(owner)
	trader.StakedAmount = vault.Balance
	saveTrader(trader)

	emitStaked(AddressToString(owner), args.Amount, vault.Balance)
	return vault
}

// unstakePenalty walks the curve: full tier before the lock period, reduced
// tier before maturity, free afterwards. Monotonically non-increasing in
// staked duration.
func unstakePenalty(gov *Governance, stakedFor int64, amount Amount) Amount {
	var pct uint8
	switch {
	case stakedFor < gov.LockPeriodSecs:
		pct = gov.PenaltyEarlyPct
	case stakedFor < gov.MaturityPeriodSecs:
		pct = gov.PenaltyMidPct
	default:
		return 0
	}
	return mulDivFloor(amount, int64(pct), 100)
}

// UnstakeTokens withdraws from the vault applying the dynamic penalty. The
// penalty is redirected to the governance treasury, never to the withdrawer,
// so early exits always net less than mature ones. A fully drained vault is
// kept (emptied, clock reset) rather than destroyed.
func UnstakeTokens(args *StakeArgs) Amount {
	if args.Amount <= 0 {
		abortWith(SymInvalidAmount, "unstake amount %d", args.Amount)
	}
	loadGlobalState()
	gov := loadGovernance()
	owner := getSenderAddress()
	now := nowUnix()

	vault := loadOrCreateVault(owner)
	if args.Amount > vault.Balance {
		abortWith(SymInsufficientStake, "vault holds %d, asked %d", vault.Balance, args.Amount)
	}

	penalty := unstakePenalty(gov, now-vault.StakeStartedAt, args.Amount)
	net := args.Amount - penalty

	tokenTransfer(vaultAddress(owner), owner, net, SymInsufficientStake)
	if penalty > 0 {
		tokenTransfer(vaultAddress(owner), treasuryAddress(), penalty, SymInsufficientStake)
	}

	vault.Balance -= args.Amount
	if vault.Balance == 0 {
		vault.StakeStartedAt = 0
	}
	saveVault(vault)

	trader := loadOrCreateTrader(owner)
	trader.StakedAmount = vault.Balance
	saveTrader(trader)

	emitUnstaked(AddressToString(owner), args.Amount, penalty)
	return net
}
