package contract

import (
	"fmt"
	"strconv"

	"rebate_dao/sdk"
)

// emitInitEvent marks program birth with the authority for explorers.
func emitInitEvent(authority string, feeDiscount uint8) {
	sdk.Log(fmt.Sprintf(
		"in|by:%s|fd:%d",
		authority,
		feeDiscount,
	))
}

// emitGovernanceInitEvent leaves a gi ping with the starting parameters.
func emitGovernanceInitEvent(rebateRate uint64, feeDiscount uint8) {
	sdk.Log(fmt.Sprintf(
		"gi|rr:%d|fd:%d",
		rebateRate,
		feeDiscount,
	))
}

// emitTradeRecorded includes the running volume so rebate math can be
// replayed from logs only.
func emitTradeRecorded(owner string, amount Amount, rollingVolume Amount) {
	sdk.Log(fmt.Sprintf(
		"rt|by:%s|am:%d|vol:%d",
		owner,
		amount,
		rollingVolume,
	))
}

// emitRebateClaimed logs the minted amount for supply auditing.
func emitRebateClaimed(owner string, amount Amount) {
	sdk.Log(fmt.Sprintf(
		"rc|by:%s|am:%d",
		owner,
		amount,
	))
}

// emitCompounded mirrors the claim log but flags the vault destination.
func emitCompounded(owner string, amount Amount, vaultBalance Amount) {
	sdk.Log(fmt.Sprintf(
		"ac|by:%s|am:%d|vb:%d",
		owner,
		amount,
		vaultBalance,
	))
}

// emitStaked traces custody moves into the vault.
func emitStaked(owner string, amount Amount, vaultBalance Amount) {
	sdk.Log(fmt.Sprintf(
		"st|by:%s|am:%d|vb:%d",
		owner,
		amount,
		vaultBalance,
	))
}

// emitUnstaked carries the penalty so payouts and treasury credits reconcile.
func emitUnstaked(owner string, amount Amount, penalty Amount) {
	sdk.Log(fmt.Sprintf(
		"us|by:%s|am:%d|pen:%d",
		owner,
		amount,
		penalty,
	))
}

// emitProposalCreatedEvent keeps observers updated with a short pc line.
func emitProposalCreatedEvent(proposalID uint64, proposer string, newFeeDiscount uint8) {
	sdk.Log(fmt.Sprintf(
		"pc|id:%d|by:%s|fd:%d",
		proposalID,
		proposer,
		newFeeDiscount,
	))
}

// emitVoteCast includes direction so the tally can be replayed from logs.
func emitVoteCast(proposalID uint64, voter string, voteFor bool) {
	sdk.Log(fmt.Sprintf(
		"vt|id:%d|by:%s|f:%s",
		proposalID,
		voter,
		strconv.FormatBool(voteFor),
	))
}

// emitProposalExecuted is the terminal ps line for a proposal.
func emitProposalExecuted(proposalID uint64, newFeeDiscount uint8) {
	sdk.Log(fmt.Sprintf(
		"px|id:%d|fd:%d",
		proposalID,
		newFeeDiscount,
	))
}

// emitRebateRateUpdated spells out the flip so auditors can track it.
func emitRebateRateUpdated(old, new_ uint64) {
	sdk.Log(fmt.Sprintf(
		"ru|old:%d|new:%d",
		old,
		new_,
	))
}
