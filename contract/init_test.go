package contract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rebate_dao/contract"
	"rebate_dao/sdk"
)

func TestInitialize(t *testing.T) {
	tc := newTestChain(t)

	tc.mustCall(t, authority, "initialize", `{"fee_discount":10}`)

	gs, ok := contract.GlobalStateAccount()
	require.True(t, ok)
	assert.Equal(t, sdk.Address(authority), gs.Authority)
	assert.Equal(t, sdk.AssetRebate, gs.RebateMint)
	assert.Equal(t, uint8(10), gs.FeeDiscount)
	assert.Equal(t, contract.FallbackMaxTradeAmount, gs.MaxTradeAmount)
	assert.Equal(t, contract.FallbackMinTradeGapSecs, gs.MinTradeGapSecs)
}

func TestInitializeTwiceFails(t *testing.T) {
	tc := newTestChain(t)

	tc.mustCall(t, authority, "initialize", `{"fee_discount":10}`)
	tc.mustFail(t, authority, "initialize", `{"fee_discount":20}`, contract.SymAlreadyInitialized)
}

func TestInitializeRejectsDiscountAbove100(t *testing.T) {
	tc := newTestChain(t)

	tc.mustFail(t, authority, "initialize", `{"fee_discount":101}`, contract.SymInvalidParameter)

	_, ok := contract.GlobalStateAccount()
	assert.False(t, ok)
}

func TestInitializeGovernance(t *testing.T) {
	tc := newTestChain(t)
	tc.mustCall(t, authority, "initialize", `{"fee_discount":25}`)

	tc.mustCall(t, authority, "initialize_governance", "")

	gov, ok := contract.GovernanceAccount()
	require.True(t, ok)
	assert.Equal(t, contract.FallbackRebateRate, gov.RebateRate)
	// starting discount mirrors GlobalState
	assert.Equal(t, uint8(25), gov.FeeDiscount)
	assert.Equal(t, contract.FallbackMaxFeeDiscount, gov.MaxFeeDiscount)
	assert.Equal(t, contract.FallbackVotingPeriodSecs, gov.VotingPeriodSecs)
	assert.Equal(t, contract.FallbackLockPeriodSecs, gov.LockPeriodSecs)
	assert.Equal(t, contract.FallbackMaturityPeriodSecs, gov.MaturityPeriodSecs)
	assert.Equal(t, uint64(0), gov.ProposalSeq)
}

func TestInitializeGovernanceRequiresAuthority(t *testing.T) {
	tc := newTestChain(t)
	tc.mustCall(t, authority, "initialize", `{"fee_discount":10}`)

	tc.mustFail(t, alice, "initialize_governance", "", contract.SymUnauthorized)
}

func TestInitializeGovernanceBeforeInitializeFails(t *testing.T) {
	tc := newTestChain(t)

	tc.mustFail(t, authority, "initialize_governance", "", contract.SymNotInitialized)
}

func TestInitializeGovernanceTwiceFails(t *testing.T) {
	tc := newInitializedChain(t)

	tc.mustFail(t, authority, "initialize_governance", "", contract.SymAlreadyInitialized)
}

func TestUpdateRebateRate(t *testing.T) {
	tc := newInitializedChain(t)

	tc.mustCall(t, authority, "update_rebate_rate", `{"new_rate":100}`)

	gov, ok := contract.GovernanceAccount()
	require.True(t, ok)
	assert.Equal(t, uint64(100), gov.RebateRate)
}

func TestUpdateRebateRateBounds(t *testing.T) {
	tc := newInitializedChain(t)

	tc.mustFail(t, authority, "update_rebate_rate", `{"new_rate":1001}`, contract.SymInvalidParameter)
	// 100% exactly is allowed
	tc.mustCall(t, authority, "update_rebate_rate", `{"new_rate":1000}`)
}

func TestUpdateRebateRateRequiresAuthority(t *testing.T) {
	tc := newInitializedChain(t)

	tc.mustFail(t, alice, "update_rebate_rate", `{"new_rate":20}`, contract.SymUnauthorized)

	gov, _ := contract.GovernanceAccount()
	assert.Equal(t, contract.FallbackRebateRate, gov.RebateRate)
}
