package contract

import (
	"bytes"
	"encoding/binary"
	"errors"

	"rebate_dao/sdk"
)

// Deterministic binary codec for persisted records. Every record starts with
// the layoutVersion byte so deployed accounts can migrate later; decoders
// reject versions they do not know.

type binWriter struct {
	buf bytes.Buffer
}

// newWriter spins up a fresh writer so we dont leak old bytes between encodes.
func newWriter() *binWriter {
	w := &binWriter{}
	w.buf.WriteByte(layoutVersion)
	return w
}

// bytes returns the accumulated buffer, tiny helper but keeps code tidy.
func (w *binWriter) bytes() []byte { return w.buf.Bytes() }

// writeBool squashes bools into a single byte flag for deterministic payloads.
func (w *binWriter) writeBool(v bool) {
	if v {
		w.buf.WriteByte(1)
	} else {
		w.buf.WriteByte(0)
	}
}

// writeUint64 writes big endian numbers so tooling can read them without guessing.
func (w *binWriter) writeUint64(v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	w.buf.Write(b[:])
}

// writeInt64 reuses the uint routine since casting keeps the sign bits intact.
func (w *binWriter) writeInt64(v int64) {
	w.writeUint64(uint64(v))
}

// writeVarUint uses varints to keep counts and lens compact.
func (w *binWriter) writeVarUint(v uint64) {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], v)
	w.buf.Write(tmp[:n])
}

// writeAmount keeps amount encoding consistent via a single call site.
func (w *binWriter) writeAmount(v Amount) {
	w.writeInt64(int64(v))
}

// writeString prefixes its length then dumps UTF-8 directly.
func (w *binWriter) writeString(s string) {
	w.writeVarUint(uint64(len(s)))
	w.buf.WriteString(s)
}

// writeAddress canonicalizes the address before writing.
func (w *binWriter) writeAddress(a sdk.Address) {
	w.writeString(AddressToString(a))
}

// writeAsset just dumps the ticker string, nothing fancy but consistent.
func (w *binWriter) writeAsset(a sdk.Asset) {
	w.writeString(a.String())
}

type binReader struct {
	data []byte
	pos  int
}

var errBadVersion = errors.New("unknown layout version")

// newReader wraps raw bytes and checks the layout version before anything else.
func newReader(data []byte) (*binReader, error) {
	if len(data) == 0 || data[0] != layoutVersion {
		return nil, errBadVersion
	}
	return &binReader{data: data, pos: 1}, nil
}

// readByte grabs the next byte and bumps the cursor.
func (r *binReader) readByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, errors.New("unexpected EOF")
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

// readBool restores bools stored via writeBool above.
func (r *binReader) readBool() (bool, error) {
	b, err := r.readByte()
	if err != nil {
		return false, err
	}
	return b == 1, nil
}

// readUint64 decodes big endian integers for ids and totals.
func (r *binReader) readUint64() (uint64, error) {
	if r.pos+8 > len(r.data) {
		return 0, errors.New("unexpected EOF")
	}
	val := binary.BigEndian.Uint64(r.data[r.pos : r.pos+8])
	r.pos += 8
	return val, nil
}

// readInt64 simply casts the unsigned read, matching the writer logic.
func (r *binReader) readInt64() (int64, error) {
	v, err := r.readUint64()
	if err != nil {
		return 0, err
	}
	return int64(v), nil
}

// readVarUint undoes the compact varint encoding for lengths/counts.
func (r *binReader) readVarUint() (uint64, error) {
	val, n := binary.Uvarint(r.data[r.pos:])
	if n <= 0 {
		return 0, errors.New("invalid varuint")
	}
	r.pos += n
	return val, nil
}

// readAmount rebuilds an Amount using the int64 path so scaling stays synced.
func (r *binReader) readAmount() (Amount, error) {
	val, err := r.readInt64()
	if err != nil {
		return 0, err
	}
	return Amount(val), nil
}

// readString restores length-prefixed UTF-8.
func (r *binReader) readString() (string, error) {
	n, err := r.readVarUint()
	if err != nil {
		return "", err
	}
	if r.pos+int(n) > len(r.data) {
		return "", errors.New("unexpected EOF")
	}
	s := string(r.data[r.pos : r.pos+int(n)])
	r.pos += int(n)
	return s, nil
}

// readAddress mirrors writeAddress.
func (r *binReader) readAddress() (sdk.Address, error) {
	s, err := r.readString()
	if err != nil {
		return "", err
	}
	return sdk.Address(s), nil
}

// readAsset mirrors writeAsset.
func (r *binReader) readAsset() (sdk.Asset, error) {
	s, err := r.readString()
	if err != nil {
		return "", err
	}
	return sdk.Asset(s), nil
}

// -----------------------------------------------------------------------------
// GlobalState
// -----------------------------------------------------------------------------

// EncodeGlobalState serializes the singleton config into versioned bytes.
// Example payload: EncodeGlobalState(&GlobalState{Authority: "hive:admin", FeeDiscount: 10})
func EncodeGlobalState(gs *GlobalState) []byte {
	w := newWriter()
	w.writeAddress(gs.Authority)
	w.writeAsset(gs.RebateMint)
	w.buf.WriteByte(gs.FeeDiscount)
	w.writeAmount(gs.MaxTradeAmount)
	w.writeInt64(gs.MinTradeGapSecs)
	return w.bytes()
}

// DecodeGlobalState restores a GlobalState, rejecting unknown layouts.
func DecodeGlobalState(data []byte) (*GlobalState, error) {
	r, err := newReader(data)
	if err != nil {
		return nil, err
	}
	gs := &GlobalState{}
	if gs.Authority, err = r.readAddress(); err != nil {
		return nil, err
	}
	if gs.RebateMint, err = r.readAsset(); err != nil {
		return nil, err
	}
	fd, err := r.readByte()
	if err != nil {
		return nil, err
	}
	gs.FeeDiscount = fd
	if gs.MaxTradeAmount, err = r.readAmount(); err != nil {
		return nil, err
	}
	if gs.MinTradeGapSecs, err = r.readInt64(); err != nil {
		return nil, err
	}
	return gs, nil
}

// -----------------------------------------------------------------------------
// Governance
// -----------------------------------------------------------------------------

// EncodeGovernance packs all voted parameters plus the proposal sequence.
func EncodeGovernance(gov *Governance) []byte {
	w := newWriter()
	w.writeUint64(gov.RebateRate)
	w.buf.WriteByte(gov.FeeDiscount)
	w.buf.WriteByte(gov.MaxFeeDiscount)
	w.writeInt64(gov.ClaimCooldownSecs)
	w.writeInt64(gov.VotingPeriodSecs)
	w.writeInt64(gov.LockPeriodSecs)
	w.writeInt64(gov.MaturityPeriodSecs)
	w.buf.WriteByte(gov.PenaltyEarlyPct)
	w.buf.WriteByte(gov.PenaltyMidPct)
	w.writeAmount(gov.MultTier1)
	w.writeAmount(gov.MultTier2)
	w.writeAmount(gov.MultTier3)
	w.writeUint64(gov.ProposalSeq)
	return w.bytes()
}

// DecodeGovernance restores the Governance singleton.
func DecodeGovernance(data []byte) (*Governance, error) {
	r, err := newReader(data)
	if err != nil {
		return nil, err
	}
	gov := &Governance{}
	if gov.RebateRate, err = r.readUint64(); err != nil {
		return nil, err
	}
	if gov.FeeDiscount, err = r.readByte(); err != nil {
		return nil, err
	}
	if gov.MaxFeeDiscount, err = r.readByte(); err != nil {
		return nil, err
	}
	if gov.ClaimCooldownSecs, err = r.readInt64(); err != nil {
		return nil, err
	}
	if gov.VotingPeriodSecs, err = r.readInt64(); err != nil {
		return nil, err
	}
	if gov.LockPeriodSecs, err = r.readInt64(); err != nil {
		return nil, err
	}
	if gov.MaturityPeriodSecs, err = r.readInt64(); err != nil {
		return nil, err
	}
	if gov.PenaltyEarlyPct, err = r.readByte(); err != nil {
		return nil, err
	}
	if gov.PenaltyMidPct, err = r.readByte(); err != nil {
		return nil, err
	}
	if gov.MultTier1, err = r.readAmount(); err != nil {
		return nil, err
	}
	if gov.MultTier2, err = r.readAmount(); err != nil {
		return nil, err
	}
	if gov.MultTier3, err = r.readAmount(); err != nil {
		return nil, err
	}
	if gov.ProposalSeq, err = r.readUint64(); err != nil {
		return nil, err
	}
	return gov, nil
}

// -----------------------------------------------------------------------------
// Trader
// -----------------------------------------------------------------------------

// EncodeTrader serializes a trader record for storage.
func EncodeTrader(t *Trader) []byte {
	w := newWriter()
	w.writeAddress(t.Owner)
	w.writeAmount(t.RollingVolume)
	w.writeInt64(t.WindowStart)
	w.writeInt64(t.LastTradeAt)
	w.writeInt64(t.LastClaimAt)
	w.writeAmount(t.StakedAmount)
	return w.bytes()
}

// DecodeTrader restores a trader record.
func DecodeTrader(data []byte) (*Trader, error) {
	r, err := newReader(data)
	if err != nil {
		return nil, err
	}
	t := &Trader{}
	if t.Owner, err = r.readAddress(); err != nil {
		return nil, err
	}
	if t.RollingVolume, err = r.readAmount(); err != nil {
		return nil, err
	}
	if t.WindowStart, err = r.readInt64(); err != nil {
		return nil, err
	}
	if t.LastTradeAt, err = r.readInt64(); err != nil {
		return nil, err
	}
	if t.LastClaimAt, err = r.readInt64(); err != nil {
		return nil, err
	}
	if t.StakedAmount, err = r.readAmount(); err != nil {
		return nil, err
	}
	return t, nil
}

// -----------------------------------------------------------------------------
// StakingVault
// -----------------------------------------------------------------------------

// EncodeVault serializes the custody record.
func EncodeVault(v *StakingVault) []byte {
	w := newWriter()
	w.writeAddress(v.Owner)
	w.writeAmount(v.Balance)
	w.writeInt64(v.StakeStartedAt)
	return w.bytes()
}

// DecodeVault restores the custody record.
func DecodeVault(data []byte) (*StakingVault, error) {
	r, err := newReader(data)
	if err != nil {
		return nil, err
	}
	v := &StakingVault{}
	if v.Owner, err = r.readAddress(); err != nil {
		return nil, err
	}
	if v.Balance, err = r.readAmount(); err != nil {
		return nil, err
	}
	if v.StakeStartedAt, err = r.readInt64(); err != nil {
		return nil, err
	}
	return v, nil
}

// -----------------------------------------------------------------------------
// DAOProposal
// -----------------------------------------------------------------------------

// EncodeProposal serializes a proposal with its tally and lifecycle flag.
func EncodeProposal(p *DAOProposal) []byte {
	w := newWriter()
	w.writeUint64(p.ID)
	w.writeAddress(p.Proposer)
	w.buf.WriteByte(p.NewFeeDiscount)
	w.writeUint64(p.VotesFor)
	w.writeUint64(p.VotesAgainst)
	w.writeInt64(p.CreatedAt)
	w.writeInt64(p.Deadline)
	w.writeBool(p.Executed)
	return w.bytes()
}

// DecodeProposal restores a proposal record.
func DecodeProposal(data []byte) (*DAOProposal, error) {
	r, err := newReader(data)
	if err != nil {
		return nil, err
	}
	p := &DAOProposal{}
	if p.ID, err = r.readUint64(); err != nil {
		return nil, err
	}
	if p.Proposer, err = r.readAddress(); err != nil {
		return nil, err
	}
	if p.NewFeeDiscount, err = r.readByte(); err != nil {
		return nil, err
	}
	if p.VotesFor, err = r.readUint64(); err != nil {
		return nil, err
	}
	if p.VotesAgainst, err = r.readUint64(); err != nil {
		return nil, err
	}
	if p.CreatedAt, err = r.readInt64(); err != nil {
		return nil, err
	}
	if p.Deadline, err = r.readInt64(); err != nil {
		return nil, err
	}
	if p.Executed, err = r.readBool(); err != nil {
		return nil, err
	}
	return p, nil
}

// -----------------------------------------------------------------------------
// VoteReceipt
// -----------------------------------------------------------------------------

// EncodeVoteReceipt serializes the per-voter receipt.
func EncodeVoteReceipt(vr *VoteReceipt) []byte {
	w := newWriter()
	w.writeUint64(vr.ProposalID)
	w.writeAddress(vr.Voter)
	w.writeBool(vr.VoteFor)
	w.writeInt64(vr.VotedAt)
	return w.bytes()
}

// DecodeVoteReceipt restores the per-voter receipt.
func DecodeVoteReceipt(data []byte) (*VoteReceipt, error) {
	r, err := newReader(data)
	if err != nil {
		return nil, err
	}
	vr := &VoteReceipt{}
	if vr.ProposalID, err = r.readUint64(); err != nil {
		return nil, err
	}
	if vr.Voter, err = r.readAddress(); err != nil {
		return nil, err
	}
	if vr.VoteFor, err = r.readBool(); err != nil {
		return nil, err
	}
	if vr.VotedAt, err = r.readInt64(); err != nil {
		return nil, err
	}
	return vr, nil
}
