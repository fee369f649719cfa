//go:build wasip1

package contract

import "rebate_dao/sdk"

// RealENV reads the transaction environment from the host, caching per tx.id
// so every helper call inside one handler sees the same snapshot.
type RealENV struct {
	cached   sdk.Env
	loaded   bool
	cachedTx string
}

func (r *RealENV) current() *sdk.Env {
	var currentTx string
	if txPtr := sdk.GetEnvKey("tx.id"); txPtr != nil {
		currentTx = *txPtr
	}
	if !r.loaded || r.cachedTx != currentTx {
		r.cached = sdk.GetEnv()
		r.cachedTx = currentTx
		r.loaded = true
	}
	return &r.cached
}

func (r *RealENV) SenderAddress() sdk.Address {
	return r.current().Sender.Address
}

func (r *RealENV) TxID() string {
	return r.current().TxId
}

func (r *RealENV) NowUnix() int64 {
	if ts := r.current().Timestamp; ts != "" {
		if v, ok := parseTimestamp(ts); ok {
			return v
		}
	}
	if tsPtr := sdk.GetEnvKey("block.timestamp"); tsPtr != nil && *tsPtr != "" {
		if v, ok := parseTimestamp(*tsPtr); ok {
			return v
		}
	}
	return 0
}
