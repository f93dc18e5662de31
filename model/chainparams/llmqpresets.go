package chainparams

import (
	"github.com/Zero-Dynamics/Alterdot/model/consensus"
)

// DKG parameter presets per quorum type, shared by the network tables.
// See DIP0006 for the meaning of the individual knobs.
var (
	llmq5060 = consensus.LLMQParams{
		Type:                     consensus.LLMQ5060,
		Name:                     "llmq_50_60",
		Size:                     50,
		MinSize:                  40,
		Threshold:                30,
		DKGInterval:              24, // one DKG per hour
		DKGPhaseBlocks:           2,
		DKGMiningWindowStart:     10, // dkgPhaseBlocks * 5 = after finalization
		DKGMiningWindowEnd:       18,
		DKGBadVotesThreshold:     40,
		SigningActiveQuorumCount: 24, // a full day worth of LLMQs
		KeepOldConnections:       25,
	}

	llmq40060 = consensus.LLMQParams{
		Type:                     consensus.LLMQ40060,
		Name:                     "llmq_400_60",
		Size:                     400,
		MinSize:                  300,
		Threshold:                240,
		DKGInterval:              24 * 12, // one DKG every 12 hours
		DKGPhaseBlocks:           4,
		DKGMiningWindowStart:     20, // dkgPhaseBlocks * 5 = after finalization
		DKGMiningWindowEnd:       28,
		DKGBadVotesThreshold:     300,
		SigningActiveQuorumCount: 4, // two days worth of LLMQs
		KeepOldConnections:       5,
	}

	// used for deployment and min-proto-version signaling
	llmq40085 = consensus.LLMQParams{
		Type:                     consensus.LLMQ40085,
		Name:                     "llmq_400_85",
		Size:                     400,
		MinSize:                  350,
		Threshold:                340,
		DKGInterval:              24 * 24, // one DKG every 24 hours
		DKGPhaseBlocks:           4,
		DKGMiningWindowStart:     20, // dkgPhaseBlocks * 5 = after finalization
		DKGMiningWindowEnd:       48, // give it a larger mining window to make sure it is mined
		DKGBadVotesThreshold:     300,
		SigningActiveQuorumCount: 4, // four days worth of LLMQs
		KeepOldConnections:       5,
	}

	llmq1060 = consensus.LLMQParams{
		Type:                     consensus.LLMQ1060,
		Name:                     "llmq_10_60",
		Size:                     10,
		MinSize:                  8,
		Threshold:                6,
		DKGInterval:              60, // one DKG every 2 hours
		DKGPhaseBlocks:           2,
		DKGMiningWindowStart:     10,
		DKGMiningWindowEnd:       18,
		DKGBadVotesThreshold:     8,
		SigningActiveQuorumCount: 2,
		KeepOldConnections:       3,
	}

	llmq3080 = consensus.LLMQParams{
		Type:                     consensus.LLMQ3080,
		Name:                     "llmq_30_80",
		Size:                     30,
		MinSize:                  27,
		Threshold:                24,
		DKGInterval:              480, // one DKG every 16 hours
		DKGPhaseBlocks:           2,
		DKGMiningWindowStart:     10,
		DKGMiningWindowEnd:       18,
		DKGBadVotesThreshold:     24,
		SigningActiveQuorumCount: 4,
		KeepOldConnections:       5,
	}

	// for testing only
	llmq560 = consensus.LLMQParams{
		Type:                     consensus.LLMQ560,
		Name:                     "llmq_5_60",
		Size:                     5,
		MinSize:                  4,
		Threshold:                3,
		DKGInterval:              24, // one DKG per hour
		DKGPhaseBlocks:           2,
		DKGMiningWindowStart:     10,
		DKGMiningWindowEnd:       18,
		DKGBadVotesThreshold:     7,
		SigningActiveQuorumCount: 2,
		KeepOldConnections:       3,
	}
)
