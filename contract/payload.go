package contract

import (
	"github.com/CosmWasm/tinyjson/jlexer"
	"github.com/CosmWasm/tinyjson/jwriter"
)

// Instruction payloads arrive as small JSON objects. They are walked with
// tinyjson's lexer directly, no reflection, which is what the wasm target
// wants. Unknown fields are skipped so payloads can grow.

// decodeInitializeArgs unpacks {"fee_discount":N}.
func decodeInitializeArgs(raw string) *InitializeArgs {
	l := jlexer.Lexer{Data: []byte(raw)}
	args := &InitializeArgs{}
	l.Delim('{')
	for !l.IsDelim('}') {
		key := l.UnsafeFieldName(false)
		l.WantColon()
		switch key {
		case "fee_discount":
			args.FeeDiscount = l.Uint8()
		default:
			l.SkipRecursive()
		}
		l.WantComma()
	}
	l.Delim('}')
	l.Consumed()
	abortOnError(l.Error(), "initialize args")
	return args
}

// decodeRecordTradeArgs unpacks {"amount":N}.
func decodeRecordTradeArgs(raw string) *RecordTradeArgs {
	l := jlexer.Lexer{Data: []byte(raw)}
	args := &RecordTradeArgs{}
	l.Delim('{')
	for !l.IsDelim('}') {
		key := l.UnsafeFieldName(false)
		l.WantColon()
		switch key {
		case "amount":
			args.Amount = Amount(l.Int64())
		default:
			l.SkipRecursive()
		}
		l.WantComma()
	}
	l.Delim('}')
	l.Consumed()
	abortOnError(l.Error(), "record_trade args")
	return args
}

// decodeStakeArgs unpacks {"amount":N} for stake/unstake.
func decodeStakeArgs(raw string) *StakeArgs {
	l := jlexer.Lexer{Data: []byte(raw)}
	args := &StakeArgs{}
	l.Delim('{')
	for !l.IsDelim('}') {
		key := l.UnsafeFieldName(false)
		l.WantColon()
		switch key {
		case "amount":
			args.Amount = Amount(l.Int64())
		default:
			l.SkipRecursive()
		}
		l.WantComma()
	}
	l.Delim('}')
	l.Consumed()
	abortOnError(l.Error(), "stake args")
	return args
}

// decodeUpdateRebateRateArgs unpacks {"new_rate":N}.
func decodeUpdateRebateRateArgs(raw string) *UpdateRebateRateArgs {
	l := jlexer.Lexer{Data: []byte(raw)}
	args := &UpdateRebateRateArgs{}
	l.Delim('{')
	for !l.IsDelim('}') {
		key := l.UnsafeFieldName(false)
		l.WantColon()
		switch key {
		case "new_rate":
			args.NewRate = l.Uint64()
		default:
			l.SkipRecursive()
		}
		l.WantComma()
	}
	l.Delim('}')
	l.Consumed()
	abortOnError(l.Error(), "update_rebate_rate args")
	return args
}

// decodeCreateProposalArgs unpacks {"new_fee_discount":N}.
func decodeCreateProposalArgs(raw string) *CreateProposalArgs {
	l := jlexer.Lexer{Data: []byte(raw)}
	args := &CreateProposalArgs{}
	l.Delim('{')
	for !l.IsDelim('}') {
		key := l.UnsafeFieldName(false)
		l.WantColon()
		switch key {
		case "new_fee_discount":
			args.NewFeeDiscount = l.Uint8()
		default:
			l.SkipRecursive()
		}
		l.WantComma()
	}
	l.Delim('}')
	l.Consumed()
	abortOnError(l.Error(), "create_dao_proposal args")
	return args
}

// decodeVoteProposalArgs unpacks {"proposal_id":N,"vote_for":B}.
func decodeVoteProposalArgs(raw string) *VoteProposalArgs {
	l := jlexer.Lexer{Data: []byte(raw)}
	args := &VoteProposalArgs{}
	l.Delim('{')
	for !l.IsDelim('}') {
		key := l.UnsafeFieldName(false)
		l.WantColon()
		switch key {
		case "proposal_id":
			args.ProposalID = l.Uint64()
		case "vote_for":
			args.VoteFor = l.Bool()
		default:
			l.SkipRecursive()
		}
		l.WantComma()
	}
	l.Delim('}')
	l.Consumed()
	abortOnError(l.Error(), "vote_dao_proposal args")
	return args
}

// decodeProposalIDArgs unpacks {"proposal_id":N}.
func decodeProposalIDArgs(raw string) *ProposalIDArgs {
	l := jlexer.Lexer{Data: []byte(raw)}
	args := &ProposalIDArgs{}
	l.Delim('{')
	for !l.IsDelim('}') {
		key := l.UnsafeFieldName(false)
		l.WantColon()
		switch key {
		case "proposal_id":
			args.ProposalID = l.Uint64()
		default:
			l.SkipRecursive()
		}
		l.WantComma()
	}
	l.Delim('}')
	l.Consumed()
	abortOnError(l.Error(), "execute_dao_proposal args")
	return args
}

// -----------------------------------------------------------------------------
// JSON views (for the harness and the local runner)
// -----------------------------------------------------------------------------

// traderJSON renders a trader record.
func traderJSON(t *Trader) string {
	w := jwriter.Writer{}
	w.RawString(`{"owner":`)
	w.String(AddressToString(t.Owner))
	w.RawString(`,"rolling_volume":`)
	w.Int64(int64(t.RollingVolume))
	w.RawString(`,"window_start":`)
	w.Int64(t.WindowStart)
	w.RawString(`,"last_trade_at":`)
	w.Int64(t.LastTradeAt)
	w.RawString(`,"last_claim_at":`)
	w.Int64(t.LastClaimAt)
	w.RawString(`,"staked_amount":`)
	w.Int64(int64(t.StakedAmount))
	w.RawByte('}')
	return buildJSON(&w)
}

// proposalJSON renders a proposal with its derived state at block time.
func proposalJSON(p *DAOProposal, now int64) string {
	w := jwriter.Writer{}
	w.RawString(`{"id":`)
	w.Uint64(p.ID)
	w.RawString(`,"proposer":`)
	w.String(AddressToString(p.Proposer))
	w.RawString(`,"new_fee_discount":`)
	w.Uint8(p.NewFeeDiscount)
	w.RawString(`,"votes_for":`)
	w.Uint64(p.VotesFor)
	w.RawString(`,"votes_against":`)
	w.Uint64(p.VotesAgainst)
	w.RawString(`,"created_at":`)
	w.Int64(p.CreatedAt)
	w.RawString(`,"deadline":`)
	w.Int64(p.Deadline)
	w.RawString(`,"state":`)
	w.String(p.StateAt(now).String())
	w.RawByte('}')
	return buildJSON(&w)
}

// governanceJSON renders the current voted parameters.
func governanceJSON(gov *Governance) string {
	w := jwriter.Writer{}
	w.RawString(`{"rebate_rate":`)
	w.Uint64(gov.RebateRate)
	w.RawString(`,"fee_discount":`)
	w.Uint8(gov.FeeDiscount)
	w.RawString(`,"max_fee_discount":`)
	w.Uint8(gov.MaxFeeDiscount)
	w.RawString(`,"proposal_seq":`)
	w.Uint64(gov.ProposalSeq)
	w.RawByte('}')
	return buildJSON(&w)
}

// amountJSON wraps a single minted/returned amount.
func amountJSON(field string, amount Amount) string {
	w := jwriter.Writer{}
	w.RawString(`{"`)
	w.RawString(field)
	w.RawString(`":`)
	w.Int64(int64(amount))
	w.RawByte('}')
	return buildJSON(&w)
}

// buildJSON finalizes a jwriter buffer into a string.
func buildJSON(w *jwriter.Writer) string {
	b, err := w.BuildBytes()
	abortOnError(err, "encode response")
	return string(b)
}
