package contract_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rebate_dao/contract"
	"rebate_dao/sdk"
)

const (
	authority = "hive:authority"
	alice     = "hive:alice"
	bob       = "hive:bob"
	carol     = "hive:carol"
)

// testChain wires the contract to an in-memory store and a fake-clock env,
// playing the role the chain test harness would.
type testChain struct {
	store *contract.MemState
	env   *contract.MockENV
	logs  []string
}

func newTestChain(t *testing.T) *testChain {
	t.Helper()
	tc := &testChain{
		store: contract.NewMemState(),
		env:   contract.NewMockENV(sdk.Address(authority)),
	}
	contract.InitState(tc.store)
	contract.InitENV(tc.env)
	sdk.SetLogSink(func(line string) {
		tc.logs = append(tc.logs, line)
	})
	t.Cleanup(func() { sdk.SetLogSink(nil) })
	return tc
}

// newInitializedChain also runs initialize + initialize_governance so most
// tests can start from a live program.
func newInitializedChain(t *testing.T) *testChain {
	t.Helper()
	tc := newTestChain(t)
	tc.mustCall(t, authority, "initialize", `{"fee_discount":10}`)
	tc.mustCall(t, authority, "initialize_governance", "")
	return tc
}

// call runs one instruction as the given signer.
func (tc *testChain) call(signer, name, payload string) (string, error) {
	tc.env.Sender = sdk.Address(signer)
	tc.env.Tx = fmt.Sprintf("tx-%s-%d", name, len(tc.logs))
	return contract.Call(name, payload)
}

// mustCall asserts success and returns the JSON result.
func (tc *testChain) mustCall(t *testing.T, signer, name, payload string) string {
	t.Helper()
	result, err := tc.call(signer, name, payload)
	require.NoError(t, err, "instruction %s", name)
	return result
}

// mustFail asserts the instruction aborts with the given error symbol.
func (tc *testChain) mustFail(t *testing.T, signer, name, payload, symbol string) {
	t.Helper()
	_, err := tc.call(signer, name, payload)
	require.Error(t, err, "instruction %s should fail", name)
	cerr, ok := err.(*contract.ContractError)
	require.True(t, ok, "expected ContractError, got %T", err)
	assert.Equal(t, symbol, cerr.Symbol)
}

// advance moves block time forward.
func (tc *testChain) advance(d time.Duration) {
	tc.env.Advance(d)
}

// trader fetches the stored trader record, failing the test when absent.
func (tc *testChain) trader(t *testing.T, owner string) *contract.Trader {
	t.Helper()
	tr, ok := contract.TraderAccount(sdk.Address(owner))
	require.True(t, ok, "trader %s missing", owner)
	return tr
}

// vault fetches the stored vault record, failing the test when absent.
func (tc *testChain) vault(t *testing.T, owner string) *contract.StakingVault {
	t.Helper()
	v, ok := contract.VaultAccount(sdk.Address(owner))
	require.True(t, ok, "vault %s missing", owner)
	return v
}

// balance reads the token ledger for one address.
func (tc *testChain) balance(addr string) contract.Amount {
	return contract.TokenBalanceOf(sdk.Address(addr))
}

// recordTrade is shorthand for the common record_trade payload.
func (tc *testChain) recordTrade(t *testing.T, signer string, amount int64) {
	t.Helper()
	tc.mustCall(t, signer, "record_trade", fmt.Sprintf(`{"amount":%d}`, amount))
}

// tradeAndAdvance records a trade then skips past the spacing guard.
func (tc *testChain) tradeAndAdvance(t *testing.T, signer string, amount int64) {
	t.Helper()
	tc.recordTrade(t, signer, amount)
	tc.advance(10 * time.Second)
}
