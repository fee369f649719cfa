package contract

import (
	"strconv"
	"time"

	"github.com/jonboulle/clockwork"

	"rebate_dao/sdk"
)

// ENVInterface is the slice of the transaction environment handlers care
// about: who signed, which tx, and the block clock. All time comparisons use
// the coarse block timestamp, never a finer wall clock.
type ENVInterface interface {
	SenderAddress() sdk.Address
	TxID() string
	NowUnix() int64
}

var envInterface ENVInterface

// InitENV wires the environment source (host env on chain, mock in tests).
func InitENV(e ENVInterface) {
	envInterface = e
}

// getSenderAddress returns the address of the current transaction signer.
func getSenderAddress() sdk.Address {
	return envInterface.SenderAddress()
}

// nowUnix returns the block timestamp in seconds.
func nowUnix() int64 {
	return envInterface.NowUnix()
}

// parseTimestamp accepts unix seconds or iso-ish strings since the env flips
// formats sometimes.
func parseTimestamp(val string) (int64, bool) {
	if v, err := strconv.ParseInt(val, 10, 64); err == nil {
		return v, true
	}
	if t, err := time.Parse(time.RFC3339, val); err == nil {
		return t.Unix(), true
	}
	if t, err := time.ParseInLocation("2006-01-02T15:04:05", val, time.UTC); err == nil {
		return t.Unix(), true
	}
	return 0, false
}

// MockENV is the test/runner environment: a settable sender plus a clockwork
// clock so block time can be advanced across windows and deadlines.
type MockENV struct {
	Clock  clockwork.Clock
	Sender sdk.Address
	Tx     string
}

// NewMockENV starts with a fake clock pinned at a fixed date so tests are
// reproducible without sleeping.
func NewMockENV(sender sdk.Address) *MockENV {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return &MockENV{
		Clock:  clockwork.NewFakeClockAt(base),
		Sender: sender,
		Tx:     "tx-0",
	}
}

func (m *MockENV) SenderAddress() sdk.Address { return m.Sender }
func (m *MockENV) TxID() string               { return m.Tx }
func (m *MockENV) NowUnix() int64             { return m.Clock.Now().Unix() }

// Advance moves block time forward; use the fake clock or this is a no-op.
func (m *MockENV) Advance(d time.Duration) {
	if fc, ok := m.Clock.(*clockwork.FakeClock); ok {
		fc.Advance(d)
	}
}
