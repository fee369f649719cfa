package contract

import (
	"crypto/sha256"

	"github.com/mr-tron/base58"

	"rebate_dao/sdk"
)

// packU64LEInline sprinkles a uint64 into dst in little-endian order so our
// keys stay compact.
func packU64LEInline(x uint64, dst []byte) {
	dst[0] = byte(x)
	dst[1] = byte(x >> 8)
	dst[2] = byte(x >> 16)
	dst[3] = byte(x >> 24)
	dst[4] = byte(x >> 32)
	dst[5] = byte(x >> 40)
	dst[6] = byte(x >> 48)
	dst[7] = byte(x >> 56)
}

// packU64LE appends the encoded number to dst and returns the new slice.
func packU64LE(x uint64, dst []byte) []byte {
	return append(dst,
		byte(x),
		byte(x>>8),
		byte(x>>16),
		byte(x>>24),
		byte(x>>32),
		byte(x>>40),
		byte(x>>48),
		byte(x>>56),
	)
}

// globalStateKey addresses the exactly-one GlobalState record.
func globalStateKey() string {
	return string([]byte{kGlobalState})
}

// governanceKey addresses the exactly-one Governance record.
func governanceKey() string {
	return string([]byte{kGovernance})
}

// traderKey mixes the prefix with raw address bytes, no nested maps in host
// storage.
func traderKey(owner sdk.Address) string {
	addrStr := AddressToString(owner)
	buf := make([]byte, 0, 1+len(addrStr))
	buf = append(buf, kTrader)
	buf = append(buf, addrStr...)
	return string(buf)
}

// vaultKey mirrors traderKey under its own prefix.
func vaultKey(owner sdk.Address) string {
	addrStr := AddressToString(owner)
	buf := make([]byte, 0, 1+len(addrStr))
	buf = append(buf, kVault)
	buf = append(buf, addrStr...)
	return string(buf)
}

// proposalKey encodes the id under the proposal prefix keeping records contiguous.
func proposalKey(id uint64) string {
	var buf [9]byte
	buf[0] = kProposal
	packU64LEInline(id, buf[1:])
	return string(buf[:])
}

// voteReceiptKey marks one (proposal, voter) pair; existence means voted.
func voteReceiptKey(proposalID uint64, voter sdk.Address) string {
	addrStr := AddressToString(voter)
	buf := make([]byte, 0, 1+8+len(addrStr))
	buf = append(buf, kVoteReceipt)
	buf = packU64LE(proposalID, buf)
	buf = append(buf, addrStr...)
	return string(buf)
}

// tokenBalanceKey stores one address's rebate token balance.
func tokenBalanceKey(addr sdk.Address) string {
	addrStr := AddressToString(addr)
	buf := make([]byte, 0, 1+len(addrStr))
	buf = append(buf, kTokenBalance)
	buf = append(buf, addrStr...)
	return string(buf)
}

// tokenSupplyKey tracks total minted supply.
func tokenSupplyKey() string {
	return string([]byte{kTokenSupply})
}

// DeriveAddress builds a deterministic program-derived address from fixed
// seeds, the same derivation the external harness uses: base58 of the sha256
// over all seed parts. Vault and treasury addresses come from here so nobody
// holds a key for them.
// Example payload: DeriveAddress(SeedStakingVault, "hive:alice")
func DeriveAddress(seeds ...string) sdk.Address {
	h := sha256.New()
	for _, s := range seeds {
		h.Write([]byte(s))
		h.Write([]byte{0})
	}
	return sdk.Address("pda:" + base58.Encode(h.Sum(nil)))
}

// vaultAddress is the token-ledger address custodying one trader's stake.
func vaultAddress(owner sdk.Address) sdk.Address {
	return DeriveAddress(SeedStakingVault, AddressToString(owner))
}

// treasuryAddress collects unstake penalties for governance.
func treasuryAddress() sdk.Address {
	return DeriveAddress(SeedGovernanceTreasury)
}
