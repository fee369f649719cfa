package contract

import "fmt"

// ContractError carries the stable symbol the caller sees on a failed
// transaction. Handlers raise it via abortWith and the dispatcher recovers
// it, dropping every write of the attempt.
type ContractError struct {
	Symbol string
	Msg    string
}

func (e *ContractError) Error() string {
	if e.Msg == "" {
		return e.Symbol
	}
	return e.Symbol + ": " + e.Msg
}

// Error symbols (the instruction-level taxonomy).
const (
	SymInvalidAmount       = "invalid_amount"
	SymInsufficientBalance = "insufficient_balance"
	SymInsufficientStake   = "insufficient_stake"
	SymNothingToClaim      = "nothing_to_claim"
	SymAlreadyInitialized  = "already_initialized"
	SymNotInitialized      = "not_initialized"
	SymInvalidParameter    = "invalid_parameter"
	SymAlreadyVoted        = "already_voted"
	SymProposalClosed      = "proposal_closed"
	SymVotingStillOpen     = "voting_still_open"
	SymAlreadyExecuted     = "already_executed"
	SymProposalRejected    = "proposal_rejected"
	SymUnauthorized        = "unauthorized"
	SymWashTrade           = "wash_trade"
	SymTooFrequent         = "too_frequent"
	SymOverflow            = "overflow"
	SymUnknownInstruction  = "unknown_instruction"
	SymBadPayload          = "bad_payload"
	SymInternal            = "internal_error"
	SymBadLayoutVersion    = "bad_layout_version"
	SymNotFound            = "not_found"
)

// abortWith stops the current handler; all session writes are discarded.
func abortWith(symbol, format string, args ...interface{}) {
	panic(&ContractError{Symbol: symbol, Msg: fmt.Sprintf(format, args...)})
}

// abortOnError wraps decode/storage errors into a bad_payload abort.
func abortOnError(err error, context string) {
	if err != nil {
		abortWith(SymBadPayload, "%s: %v", context, err)
	}
}
