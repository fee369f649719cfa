package contract_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"rebate_dao/contract"
	"rebate_dao/sdk"
)

func TestRecordTradeAccumulatesWithinWindow(t *testing.T) {
	tc := newInitializedChain(t)

	tc.tradeAndAdvance(t, alice, 100)
	tc.recordTrade(t, alice, 200)

	tr := tc.trader(t, alice)
	assert.Equal(t, sdk.Address(alice), tr.Owner)
	assert.Equal(t, contract.Amount(300), tr.RollingVolume)
	assert.NotZero(t, tr.WindowStart)
}

func TestRecordTradeFirstTradeOpensWindow(t *testing.T) {
	tc := newInitializedChain(t)
	before := tc.env.NowUnix()

	tc.recordTrade(t, alice, 500)

	tr := tc.trader(t, alice)
	assert.Equal(t, before, tr.WindowStart)
	assert.Equal(t, before, tr.LastTradeAt)
	assert.Equal(t, contract.Amount(500), tr.RollingVolume)
}

func TestRecordTradeWindowExpiryResets(t *testing.T) {
	tc := newInitializedChain(t)

	tc.recordTrade(t, alice, 100)
	tc.advance(25 * time.Hour)
	tc.recordTrade(t, alice, 40)

	tr := tc.trader(t, alice)
	assert.Equal(t, contract.Amount(40), tr.RollingVolume, "expired window restarts at the new amount")
	assert.Equal(t, tc.env.NowUnix(), tr.WindowStart)
}

func TestRecordTradeExactWindowBoundaryResets(t *testing.T) {
	tc := newInitializedChain(t)

	tc.recordTrade(t, alice, 100)
	tc.advance(24 * time.Hour)
	tc.recordTrade(t, alice, 60)

	tr := tc.trader(t, alice)
	assert.Equal(t, contract.Amount(60), tr.RollingVolume)
}

func TestRecordTradeRejectsNonPositive(t *testing.T) {
	tc := newInitializedChain(t)

	tc.mustFail(t, alice, "record_trade", `{"amount":0}`, contract.SymInvalidAmount)
	tc.mustFail(t, alice, "record_trade", `{"amount":-5}`, contract.SymInvalidAmount)
}

func TestRecordTradeWashCap(t *testing.T) {
	tc := newInitializedChain(t)

	over := int64(contract.FallbackMaxTradeAmount) + 1
	tc.mustFail(t, alice, "record_trade",
		fmt.Sprintf(`{"amount":%d}`, over), contract.SymWashTrade)

	// the cap itself is fine
	tc.recordTrade(t, alice, int64(contract.FallbackMaxTradeAmount))
}

func TestRecordTradeSpacingGuard(t *testing.T) {
	tc := newInitializedChain(t)

	tc.recordTrade(t, alice, 100)
	tc.mustFail(t, alice, "record_trade", `{"amount":100}`, contract.SymTooFrequent)

	tc.advance(time.Duration(contract.FallbackMinTradeGapSecs) * time.Second)
	tc.recordTrade(t, alice, 100)

	tr := tc.trader(t, alice)
	assert.Equal(t, contract.Amount(200), tr.RollingVolume)
}

func TestRecordTradeIsolatedPerTrader(t *testing.T) {
	tc := newInitializedChain(t)

	tc.recordTrade(t, alice, 100)
	tc.recordTrade(t, bob, 700)

	assert.Equal(t, contract.Amount(100), tc.trader(t, alice).RollingVolume)
	assert.Equal(t, contract.Amount(700), tc.trader(t, bob).RollingVolume)
}

func TestRecordTradeBeforeInitializeFails(t *testing.T) {
	tc := newTestChain(t)

	tc.mustFail(t, alice, "record_trade", `{"amount":100}`, contract.SymNotInitialized)
}
