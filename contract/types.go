package contract

import "rebate_dao/sdk"

// Amount is the raw integer token / notional unit used everywhere on-ledger.
// All arithmetic on it is integer-only and overflow-checked; fixed-point
// parameters (rebate rate) carry their own scale.
type Amount int64

// RateScale is the fixed-point denominator for the rebate rate: a rate of 10
// means 10/1000 = 1% of rolling volume.
const RateScale = 1000

// GlobalState is the singleton configuration record created by initialize.
// The authority is immutable after creation.
type GlobalState struct {
	Authority sdk.Address
	// RebateMint references the token mint this program controls.
	RebateMint sdk.Asset
	// FeeDiscount is the currently effective fee discount in percent (0-100).
	FeeDiscount uint8
	// MaxTradeAmount caps a single recorded trade (wash-trade guard).
	MaxTradeAmount Amount
	// MinTradeGapSecs is the minimum spacing between two trades of one identity.
	MinTradeGapSecs int64
}

// Governance holds the parameters subject to vote plus the proposal sequence.
type Governance struct {
	// RebateRate is fixed-point over RateScale: volume * rate / RateScale.
	RebateRate uint64
	// FeeDiscount mirrors the voted discount (kept equal to GlobalState).
	FeeDiscount uint8
	// MaxFeeDiscount bounds what proposals may ask for.
	MaxFeeDiscount uint8
	// ClaimCooldownSecs throttles claim_rebate / auto_compound per trader.
	ClaimCooldownSecs int64
	// VotingPeriodSecs is added to now to form a proposal deadline.
	VotingPeriodSecs int64
	// LockPeriodSecs / MaturityPeriodSecs shape the unstake penalty curve.
	LockPeriodSecs     int64
	MaturityPeriodSecs int64
	// PenaltyEarlyPct applies before the lock period ends, PenaltyMidPct
	// before maturity; after maturity the penalty is zero.
	PenaltyEarlyPct uint8
	PenaltyMidPct   uint8
	// MultTier1/2/3 are rolling-volume thresholds for the rebate multiplier.
	MultTier1 Amount
	MultTier2 Amount
	MultTier3 Amount
	// ProposalSeq is the monotonically increasing proposal id source.
	ProposalSeq uint64
}

// Trader tracks one participant's rolling volume and staking status.
// Created on the first record_trade, never destroyed.
type Trader struct {
	Owner         sdk.Address
	RollingVolume Amount
	// WindowStart marks the open rolling window; volume resets when the
	// window length has elapsed.
	WindowStart int64
	LastTradeAt int64
	LastClaimAt int64
	// StakedAmount mirrors the vault balance for cheap discount lookups.
	StakedAmount Amount
}

// StakingVault is the per-trader custody record for staked tokens.
// Emptied but not destroyed on full unstake.
type StakingVault struct {
	Owner   sdk.Address
	Balance Amount
	// StakeStartedAt is the basis for the penalty curve; zeroed when the
	// vault empties so the next stake restarts the clock.
	StakeStartedAt int64
}

// ProposalState is derived from a DAOProposal's fields and the clock; only
// the executed flag is stored.
type ProposalState uint8

const (
	ProposalOpen     ProposalState = 1
	ProposalPassed   ProposalState = 2
	ProposalRejected ProposalState = 3
	ProposalExecuted ProposalState = 4
)

// String prints the proposal state as lower-case text for events and logs.
// Example payload: ProposalPassed.String()
func (ps ProposalState) String() string {
	switch ps {
	case ProposalOpen:
		return "open"
	case ProposalPassed:
		return "passed"
	case ProposalRejected:
		return "rejected"
	case ProposalExecuted:
		return "executed"
	default:
		return "unspecified"
	}
}

// DAOProposal is one governance proposal with its tally and lifecycle flags.
type DAOProposal struct {
	ID             uint64
	Proposer       sdk.Address
	NewFeeDiscount uint8
	VotesFor       uint64
	VotesAgainst   uint64
	CreatedAt      int64
	Deadline       int64
	Executed       bool
}

// StateAt derives the lifecycle state from the stored fields and block time.
// Open until the deadline, then Passed/Rejected by simple majority, and
// Executed is terminal.
func (p *DAOProposal) StateAt(now int64) ProposalState {
	if p.Executed {
		return ProposalExecuted
	}
	if now < p.Deadline {
		return ProposalOpen
	}
	if p.VotesFor > p.VotesAgainst {
		return ProposalPassed
	}
	return ProposalRejected
}

// VoteReceipt exists once per (proposal, voter); its mere presence is the
// double-vote guard.
type VoteReceipt struct {
	ProposalID uint64
	Voter      sdk.Address
	VoteFor    bool
	VotedAt    int64
}

// Instruction argument payloads.

type InitializeArgs struct {
	FeeDiscount uint8
}

type RecordTradeArgs struct {
	Amount Amount
}

type StakeArgs struct {
	Amount Amount
}

type UpdateRebateRateArgs struct {
	NewRate uint64
}

type CreateProposalArgs struct {
	NewFeeDiscount uint8
}

type VoteProposalArgs struct {
	ProposalID uint64
	VoteFor    bool
}

type ProposalIDArgs struct {
	ProposalID uint64
}

// AddressFromString converts a human string to the platform address wrapper.
// Example payload: AddressFromString("hive:alice")
func AddressFromString(s string) sdk.Address { return sdk.Address(s) }

// AddressToString turns the wrapped type back into the underlying string.
// Example payload: AddressToString(AddressFromString("hive:bob"))
func AddressToString(a sdk.Address) string { return a.String() }
