package consensus

type LLMQType uint8

const (
	LLMQNone LLMQType = 0xff

	// Dash LLMQs
	LLMQ5060  LLMQType = 1 // 50 members, 30 (60%) threshold, one per hour
	LLMQ40060 LLMQType = 2 // 400 members, 240 (60%) threshold, one every 12 hours
	LLMQ40085 LLMQType = 3 // 400 members, 340 (85%) threshold, one every 24 hours

	// Alterdot LLMQs
	LLMQ1060 LLMQType = 4 // 10 members, 6 (60%) threshold, one every 2 hours
	LLMQ3080 LLMQType = 6 // 30 members, 24 (80%) threshold, one every 16 hours

	// for testing only
	LLMQ560 LLMQType = 100 // 5 members, 3 (60%) threshold, one every 2 hours
)

// LLMQParams configures a LLMQ and its DKG.
// See https://github.com/dashpay/dips/blob/master/dip-0006.md for more details.
type LLMQParams struct {
	Type LLMQType

	// not consensus critical, only used in logging, RPC and UI
	Name string

	// Size is the size of the quorum, e.g. 50 or 400.
	Size int

	// MinSize is the minimum number of valid members after the DKG. If less
	// members are determined valid, no commitment can be created. Should be
	// higher than the threshold to allow some room for failing nodes,
	// otherwise the quorum might end up not being able to ever create a
	// recovered signature if more nodes fail after the DKG.
	MinSize int

	// Threshold is the threshold required to recover a final signature.
	// Should be at least 50%+1 of the quorum size. This value also controls
	// the size of the public key verification vector and has a large
	// influence on the performance of recovery. The number of total
	// malicious masternodes required to negatively influence signing
	// sessions highly correlates to the threshold percentage.
	Threshold int

	// DKGInterval is the interval in number of blocks for DKGs and the
	// creation of LLMQs. If set to 24 for example, a DKG will start every 24
	// blocks, which is approximately once every hour.
	DKGInterval int

	// DKGPhaseBlocks is the number of blocks per phase in a DKG session.
	// There are 6 phases plus the mining phase that need to be processed per
	// DKG. Set this so that each phase has enough time to propagate all
	// required messages to all members before the next phase starts.
	DKGPhaseBlocks int

	// DKGMiningWindowStart is the starting block inside the DKG interval for
	// when mining of commitments starts, inclusive. Should be at least
	// 5 * DKGPhaseBlocks so that it starts right after the finalization phase.
	DKGMiningWindowStart int

	// DKGMiningWindowEnd is the ending block inside the DKG interval for when
	// mining of commitments ends, inclusive. Miners need enough time to
	// receive the commitment and mine it, while not wasting too much space
	// with null commitments in case a DKG session failed.
	DKGMiningWindowEnd int

	// DKGBadVotesThreshold is the number of bad votes in the complaint phase
	// after which a member is considered bad by all other members. This
	// protects against late-comers who send their contribution on the brink
	// of phase transition, which would otherwise result in inconsistent views
	// of the valid members set.
	DKGBadVotesThreshold int

	// SigningActiveQuorumCount is the number of quorums to consider "active"
	// for signing sessions.
	SigningActiveQuorumCount int

	// KeepOldConnections is used for inter-quorum communication: the number
	// of quorums for which we should keep old connections. Should be at
	// least one more than the active quorum set.
	KeepOldConnections int
}
