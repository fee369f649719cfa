package contract

import (
	"strconv"

	"rebate_dao/sdk"
)

// Token mint capability. The core invokes it, it does not own the transfer
// mechanics: balances live under their own key prefix and every move is
// conserved. Mint grows supply, transfer only shuffles it.

// tokenBalance reads one address's rebate token balance. A stored value that
// does not parse is corruption, not a zero balance, and aborts.
func tokenBalance(addr sdk.Address) Amount {
	ptr := getState().Get(tokenBalanceKey(addr))
	if ptr == nil {
		return 0
	}
	v, err := strconv.ParseInt(*ptr, 10, 64)
	if err != nil {
		abortWith(SymBadLayoutVersion, "token balance %s: %v", AddressToString(addr), err)
	}
	return Amount(v)
}

// setTokenBalance writes a balance back as decimal text for the host kv.
func setTokenBalance(addr sdk.Address, amount Amount) {
	getState().Set(tokenBalanceKey(addr), strconv.FormatInt(int64(amount), 10))
}

// tokenSupply reads total minted supply.
func tokenSupply() Amount {
	ptr := getState().Get(tokenSupplyKey())
	if ptr == nil {
		return 0
	}
	v, err := strconv.ParseInt(*ptr, 10, 64)
	if err != nil {
		abortWith(SymBadLayoutVersion, "token supply: %v", err)
	}
	return Amount(v)
}

// tokenMintTo mints new rebate tokens to a destination, growing supply.
func tokenMintTo(to sdk.Address, amount Amount) {
	if amount == 0 {
		return
	}
	setTokenBalance(to, checkedAdd(tokenBalance(to), amount))
	getState().Set(tokenSupplyKey(), strconv.FormatInt(int64(checkedAdd(tokenSupply(), amount)), 10))
}

// tokenTransfer moves tokens between two addresses, aborting when the source
// cannot cover the amount.
func tokenTransfer(from, to sdk.Address, amount Amount, insufficientSym string) {
	if amount == 0 {
		return
	}
	bal := tokenBalance(from)
	if bal < amount {
		abortWith(insufficientSym, "balance %d below %d", bal, amount)
	}
	setTokenBalance(from, bal-amount)
	setTokenBalance(to, checkedAdd(tokenBalance(to), amount))
}

// TokenBalanceOf exposes balances to the harness and the local runner.
// Example payload: TokenBalanceOf(AddressFromString("hive:alice"))
func TokenBalanceOf(addr sdk.Address) Amount {
	return tokenBalance(addr)
}

// TokenSupply exposes total minted supply for audit.
func TokenSupply() Amount {
	return tokenSupply()
}
