package contract

// -----------------------------------------------------------------------------
// Governance
// -----------------------------------------------------------------------------

// CreateDAOProposal opens a vote on a new fee discount. Proposal ids come
// from the monotonic sequence on Governance; the deadline is now plus the
// configured voting period.
func CreateDAOProposal(args *CreateProposalArgs) *DAOProposal {
	loadGlobalState()
	gov := loadGovernance()
	if args.NewFeeDiscount > gov.MaxFeeDiscount {
		abortWith(SymInvalidParameter, "discount %d above max %d",
			args.NewFeeDiscount, gov.MaxFeeDiscount)
	}
	now := nowUnix()

	gov.ProposalSeq++
	saveGovernance(gov)

	p := &DAOProposal{
		ID:             gov.ProposalSeq,
		Proposer:       getSenderAddress(),
		NewFeeDiscount: args.NewFeeDiscount,
		CreatedAt:      now,
		Deadline:       now + gov.VotingPeriodSecs,
	}
	saveProposal(p)

	emitProposalCreatedEvent(p.ID, AddressToString(p.Proposer), p.NewFeeDiscount)
	return p
}

// VoteDAOProposal casts one vote per identity per proposal. The vote
// receipt's existence is the double-vote guard; tallies only ever increase.
func VoteDAOProposal(args *VoteProposalArgs) *DAOProposal {
	loadGlobalState()
	p := loadProposal(args.ProposalID)
	now := nowUnix()
	voter := getSenderAddress()

	if now >= p.Deadline {
		abortWith(SymProposalClosed, "deadline passed for proposal %d", p.ID)
	}
	if hasVoted(p.ID, voter) {
		abortWith(SymAlreadyVoted, "%s already voted on %d", AddressToString(voter), p.ID)
	}

	if args.VoteFor {
		p.VotesFor++
	} else {
		p.VotesAgainst++
	}
	saveProposal(p)
	saveVoteReceipt(&VoteReceipt{
		ProposalID: p.ID,
		Voter:      voter,
		VoteFor:    args.VoteFor,
		VotedAt:    now,
	})

	emitVoteCast(p.ID, AddressToString(voter), args.VoteFor)
	return p
}

// ExecuteDAOProposal finalizes a passed proposal: the voted discount is
// written to Governance and mirrored to GlobalState, and the executed flag
// makes the state terminal so a passed vote cannot be replayed. Any signer
// may execute.
func ExecuteDAOProposal(args *ProposalIDArgs) *DAOProposal {
	gs := loadGlobalState()
	gov := loadGovernance()
	p := loadProposal(args.ProposalID)
	now := nowUnix()

	if p.Executed {
		abortWith(SymAlreadyExecuted, "proposal %d already executed", p.ID)
	}
	if now < p.Deadline {
		abortWith(SymVotingStillOpen, "proposal %d open until %d", p.ID, p.Deadline)
	}
	if p.VotesFor <= p.VotesAgainst {
		abortWith(SymProposalRejected, "proposal %d: %d for, %d against",
			p.ID, p.VotesFor, p.VotesAgainst)
	}

	gov.FeeDiscount = p.NewFeeDiscount
	gs.FeeDiscount = p.NewFeeDiscount
	p.Executed = true
	saveGovernance(gov)
	saveGlobalState(gs)
	saveProposal(p)

	emitProposalExecuted(p.ID, p.NewFeeDiscount)
	return p
}
