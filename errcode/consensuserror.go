package errcode

import "fmt"

// ConsensusErr codes describe a parameter table that fails a structural
// invariant. They are fatal at load time: a table carrying one of these is
// never registered and the engine is never constructed from it.
type ConsensusErr int

const (
	ErrorBadGenesisHash ConsensusErr = ConsensusErrorBase + iota
	ErrorBadConfirmationWindow
	ErrorDeploymentBitOutOfRange
	ErrorDeploymentBitCollision
	ErrorDeploymentThresholdTooLarge
	ErrorLLMQBadSize
	ErrorLLMQBadMinSize
	ErrorLLMQBadThreshold
	ErrorLLMQBadDKGInterval
	ErrorLLMQBadMiningWindow
	ErrorLLMQBadConnectionCount
	ErrorLLMQUnknownChainLockType
	ErrorLLMQUnknownInstantSendType
	ErrorLLMQUnknownActiveSetType
)

var consensusErrString = map[ConsensusErr]string{
	ErrorBadGenesisHash:              "The genesis block hash is not set",
	ErrorBadConfirmationWindow:       "The miner confirmation window is too small",
	ErrorDeploymentBitOutOfRange:     "The deployment version bit is outside 0..28",
	ErrorDeploymentBitCollision:      "Two concurrently live deployments share a version bit",
	ErrorDeploymentThresholdTooLarge: "The deployment threshold exceeds its window size",
	ErrorLLMQBadSize:                 "The quorum size is not positive",
	ErrorLLMQBadMinSize:              "The quorum minimum size must be at least the threshold and below the size",
	ErrorLLMQBadThreshold:            "The quorum signing threshold is outside size/2+1..size",
	ErrorLLMQBadDKGInterval:          "The DKG interval or phase length is not positive",
	ErrorLLMQBadMiningWindow:         "The DKG mining window is inconsistent with the phase length",
	ErrorLLMQBadConnectionCount:      "keepOldConnections must exceed signingActiveQuorumCount",
	ErrorLLMQUnknownChainLockType:    "The chain lock quorum type is not in the quorum map",
	ErrorLLMQUnknownInstantSendType:  "The instant send quorum type is not in the quorum map",
	ErrorLLMQUnknownActiveSetType:    "An active quorum set member is not in the quorum map",
}

func (ce ConsensusErr) String() string {
	if s, ok := consensusErrString[ce]; ok {
		return s
	}
	return fmt.Sprintf("Unknown code (%d)", ce)
}
