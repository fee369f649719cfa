package contract_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"rebate_dao/contract"
	"rebate_dao/sdk"
)

// fundTrader mints a spendable balance the honest way: trade, then claim.
func fundTrader(t *testing.T, tc *testChain, owner string, balance int64) {
	t.Helper()
	// default rate is 10 per-mille, so trade 100x the target
	tc.recordTrade(t, owner, balance*100)
	tc.mustCall(t, owner, "claim_rebate", "")
	assert.Equal(t, contract.Amount(balance), tc.balance(owner))
	tc.advance(10 * time.Second)
}

func TestStakeTokens(t *testing.T) {
	tc := newInitializedChain(t)
	fundTrader(t, tc, alice, 1000)

	tc.mustCall(t, alice, "stake_tokens", `{"amount":600}`)

	assert.Equal(t, contract.Amount(400), tc.balance(alice))
	v := tc.vault(t, alice)
	assert.Equal(t, contract.Amount(600), v.Balance)
	assert.Equal(t, tc.env.NowUnix(), v.StakeStartedAt)
	assert.Equal(t, contract.Amount(600), tc.trader(t, alice).StakedAmount)
}

func TestStakeTokensTopUpKeepsClock(t *testing.T) {
	tc := newInitializedChain(t)
	fundTrader(t, tc, alice, 1000)

	tc.mustCall(t, alice, "stake_tokens", `{"amount":400}`)
	started := tc.vault(t, alice).StakeStartedAt

	tc.advance(48 * time.Hour)
	tc.mustCall(t, alice, "stake_tokens", `{"amount":300}`)

	v := tc.vault(t, alice)
	assert.Equal(t, contract.Amount(700), v.Balance)
	assert.Equal(t, started, v.StakeStartedAt)
}

func TestStakeTokensInsufficientBalance(t *testing.T) {
	tc := newInitializedChain(t)
	fundTrader(t, tc, alice, 100)

	tc.mustFail(t, alice, "stake_tokens", `{"amount":101}`, contract.SymInsufficientBalance)
	assert.Equal(t, contract.Amount(100), tc.balance(alice))
}

func TestStakeTokensRejectsNonPositive(t *testing.T) {
	tc := newInitializedChain(t)

	tc.mustFail(t, alice, "stake_tokens", `{"amount":0}`, contract.SymInvalidAmount)
	tc.mustFail(t, alice, "stake_tokens", `{"amount":-1}`, contract.SymInvalidAmount)
}

func TestUnstakeEarlyPenalty(t *testing.T) {
	tc := newInitializedChain(t)
	fundTrader(t, tc, alice, 1000)
	tc.mustCall(t, alice, "stake_tokens", `{"amount":1000}`)

	// immediate exit pays the full 10% tier
	tc.mustCall(t, alice, "unstake_tokens", `{"amount":1000}`)

	assert.Equal(t, contract.Amount(900), tc.balance(alice))
	treasury := string(contract.TreasuryAddress())
	assert.Equal(t, contract.Amount(100), tc.balance(treasury))

	v := tc.vault(t, alice)
	assert.Zero(t, v.Balance)
	assert.Zero(t, v.StakeStartedAt, "drained vault resets its clock")
	assert.Zero(t, tc.trader(t, alice).StakedAmount)
}

func TestUnstakeMidPenalty(t *testing.T) {
	tc := newInitializedChain(t)
	fundTrader(t, tc, alice, 1000)
	tc.mustCall(t, alice, "stake_tokens", `{"amount":1000}`)

	// past the lock period, before maturity: 5% tier
	tc.advance(8 * 24 * time.Hour)
	tc.mustCall(t, alice, "unstake_tokens", `{"amount":1000}`)

	assert.Equal(t, contract.Amount(950), tc.balance(alice))
	assert.Equal(t, contract.Amount(50), tc.balance(string(contract.TreasuryAddress())))
}

func TestUnstakeMaturePaysNoPenalty(t *testing.T) {
	tc := newInitializedChain(t)
	fundTrader(t, tc, alice, 1000)
	tc.mustCall(t, alice, "stake_tokens", `{"amount":1000}`)

	tc.advance(14 * 24 * time.Hour)
	tc.mustCall(t, alice, "unstake_tokens", `{"amount":1000}`)

	assert.Equal(t, contract.Amount(1000), tc.balance(alice))
	assert.Zero(t, tc.balance(string(contract.TreasuryAddress())))
}

func TestUnstakePartialKeepsClock(t *testing.T) {
	tc := newInitializedChain(t)
	fundTrader(t, tc, alice, 1000)
	tc.mustCall(t, alice, "stake_tokens", `{"amount":1000}`)
	started := tc.vault(t, alice).StakeStartedAt

	tc.mustCall(t, alice, "unstake_tokens", `{"amount":400}`)

	v := tc.vault(t, alice)
	assert.Equal(t, contract.Amount(600), v.Balance)
	assert.Equal(t, started, v.StakeStartedAt)
	assert.Equal(t, contract.Amount(600), tc.trader(t, alice).StakedAmount)
}

func TestUnstakeMoreThanStaked(t *testing.T) {
	tc := newInitializedChain(t)
	fundTrader(t, tc, alice, 1000)
	tc.mustCall(t, alice, "stake_tokens", `{"amount":500}`)

	tc.mustFail(t, alice, "unstake_tokens", `{"amount":501}`, contract.SymInsufficientStake)
	assert.Equal(t, contract.Amount(500), tc.vault(t, alice).Balance)
}

func TestUnstakeWithoutVault(t *testing.T) {
	tc := newInitializedChain(t)

	tc.mustFail(t, alice, "unstake_tokens", `{"amount":1}`, contract.SymInsufficientStake)
}

func TestVaultAddressIsDeterministic(t *testing.T) {
	a := contract.VaultAddress(sdk.Address(alice))
	b := contract.VaultAddress(sdk.Address(alice))
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, contract.VaultAddress(sdk.Address(bob)))
	assert.NotEqual(t, a, contract.TreasuryAddress())
}
