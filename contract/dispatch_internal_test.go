package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rebate_dao/sdk"
)

// A handler panic that is not a ContractError is a program bug; the
// dispatcher must surface it as internal_error, never as a payload fault.
func TestCallMapsUnexpectedPanicToInternalError(t *testing.T) {
	InitState(NewMemState())
	InitENV(NewMockENV(sdk.Address("hive:alice")))
	handlers["explode"] = func(string) string { panic("boom") }
	defer delete(handlers, "explode")

	_, err := Call("explode", "")
	require.Error(t, err)
	cerr, ok := err.(*ContractError)
	require.True(t, ok)
	assert.Equal(t, SymInternal, cerr.Symbol)
	assert.Contains(t, cerr.Msg, "boom")
}
