package contract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rebate_dao/contract"
	"rebate_dao/sdk"
)

func TestTraderRoundTrip(t *testing.T) {
	in := &contract.Trader{
		Owner:         sdk.Address("hive:alice"),
		RollingVolume: 123456789,
		WindowStart:   1_700_000_000,
		LastTradeAt:   1_700_000_060,
		LastClaimAt:   0,
		StakedAmount:  42,
	}
	out, err := contract.DecodeTrader(contract.EncodeTrader(in))
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestProposalRoundTrip(t *testing.T) {
	in := &contract.DAOProposal{
		ID:             7,
		Proposer:       sdk.Address("hive:carol"),
		NewFeeDiscount: 35,
		VotesFor:       12,
		VotesAgainst:   3,
		CreatedAt:      1_700_000_000,
		Deadline:       1_700_259_200,
		Executed:       true,
	}
	out, err := contract.DecodeProposal(contract.EncodeProposal(in))
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestGovernanceRoundTrip(t *testing.T) {
	in := &contract.Governance{
		RebateRate:         250,
		FeeDiscount:        20,
		MaxFeeDiscount:     50,
		ClaimCooldownSecs:  3600,
		VotingPeriodSecs:   259200,
		LockPeriodSecs:     604800,
		MaturityPeriodSecs: 1209600,
		PenaltyEarlyPct:    10,
		PenaltyMidPct:      5,
		MultTier1:          10_000_000,
		MultTier2:          50_000_000,
		MultTier3:          100_000_000,
		ProposalSeq:        9,
	}
	out, err := contract.DecodeGovernance(contract.EncodeGovernance(in))
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestVaultRoundTrip(t *testing.T) {
	in := &contract.StakingVault{
		Owner:          sdk.Address("hive:bob"),
		Balance:        999,
		StakeStartedAt: 1_700_000_000,
	}
	out, err := contract.DecodeVault(contract.EncodeVault(in))
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestDecodeRejectsUnknownLayoutVersion(t *testing.T) {
	data := contract.EncodeTrader(&contract.Trader{Owner: sdk.Address("hive:alice")})
	data[0] = 99

	_, err := contract.DecodeTrader(data)
	assert.Error(t, err)
}

func TestDecodeRejectsEmptyAndTruncated(t *testing.T) {
	_, err := contract.DecodeTrader(nil)
	assert.Error(t, err)

	full := contract.EncodeTrader(&contract.Trader{
		Owner:         sdk.Address("hive:alice"),
		RollingVolume: 100,
	})
	_, err = contract.DecodeTrader(full[:len(full)/2])
	assert.Error(t, err)
}

func TestEncodingIsDeterministic(t *testing.T) {
	p := &contract.DAOProposal{
		ID:       3,
		Proposer: sdk.Address("hive:alice"),
		Deadline: 1_700_000_000,
	}
	assert.Equal(t, contract.EncodeProposal(p), contract.EncodeProposal(p))
}
