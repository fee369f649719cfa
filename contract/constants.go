package contract

// -----------------------------------------------------------------------------
// Record Layout
// -----------------------------------------------------------------------------

// layoutVersion is the leading byte of every persisted record so layouts can
// migrate without breaking deployed accounts.
const layoutVersion byte = 1

// -----------------------------------------------------------------------------
// Default/Fallback Values
// -----------------------------------------------------------------------------

const (
	// FallbackRebateRate is per-mille: 10 => 1% of rolling volume.
	FallbackRebateRate uint64 = 10
	// MaxRebateRate bounds admin rate updates at 100%.
	MaxRebateRate uint64 = RateScale

	FallbackMaxFeeDiscount uint8 = 50

	// FallbackWindowSecs is the rolling-volume window length (24h).
	FallbackWindowSecs int64 = 24 * 3600
	// FallbackClaimCooldownSecs throttles micro-claims (1h).
	FallbackClaimCooldownSecs int64 = 3600
	// FallbackVotingPeriodSecs is the proposal voting window (3 days).
	FallbackVotingPeriodSecs int64 = 3 * 24 * 3600

	// Penalty curve: full tier below the lock period, reduced tier below
	// maturity, free afterwards.
	FallbackLockPeriodSecs     int64 = 7 * 24 * 3600
	FallbackMaturityPeriodSecs int64 = 14 * 24 * 3600
	FallbackPenaltyEarlyPct    uint8 = 10
	FallbackPenaltyMidPct      uint8 = 5

	// Rebate multiplier tiers by rolling volume.
	FallbackMultTier1 Amount = 10_000_000
	FallbackMultTier2 Amount = 50_000_000
	FallbackMultTier3 Amount = 100_000_000

	// Sybil guards on GlobalState.
	FallbackMaxTradeAmount  Amount = 1_000_000_000
	FallbackMinTradeGapSecs int64  = 5
)

// -----------------------------------------------------------------------------
// Storage Key Prefixes
// -----------------------------------------------------------------------------

const (
	// kGlobalState holds the singleton GlobalState record.
	kGlobalState byte = 0x01
	// kGovernance holds the singleton Governance record.
	kGovernance byte = 0x02
	// kTrader houses encoded Trader records keyed by owner address.
	kTrader byte = 0x10
	// kVault houses encoded StakingVault records keyed by owner address.
	kVault byte = 0x11
	// kProposal contains encoded DAOProposal records keyed by id.
	kProposal byte = 0x20
	// kVoteReceipt marks (proposal, voter) pairs; presence means already voted.
	kVoteReceipt byte = 0x21
	// kTokenBalance stores per-address rebate token balances.
	kTokenBalance byte = 0x30
	// kTokenSupply tracks total minted supply for audit.
	kTokenSupply byte = 0x31
)

// -----------------------------------------------------------------------------
// Derivation Seeds
// -----------------------------------------------------------------------------

const (
	// SeedStakingVault derives a trader's vault token address.
	SeedStakingVault = "staking-vault"
	// SeedGovernanceTreasury derives the address penalties are credited to.
	SeedGovernanceTreasury = "governance-treasury"
	// SeedMintAuthority derives the mint authority identity.
	SeedMintAuthority = "mint-authority"
)
