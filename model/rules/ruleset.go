package rules

import (
	"github.com/Zero-Dynamics/Alterdot/errcode"
	"github.com/Zero-Dynamics/Alterdot/log"
	"github.com/Zero-Dynamics/Alterdot/model/blockindex"
	"github.com/Zero-Dynamics/Alterdot/model/consensus"
	"github.com/Zero-Dynamics/Alterdot/model/llmq"
	"github.com/Zero-Dynamics/Alterdot/model/versionbits"
	"github.com/Zero-Dynamics/Alterdot/net/protocol"
)

// RuleSet is the full picture of the consensus rules in force for the block
// being built or validated on top of a given tip. It is a plain value, safe
// to copy and to hand across goroutines; resolving it never mutates the
// parameter table.
type RuleSet struct {
	// Height of the block the rules apply to, i.e. tip height + 1.
	Height int32

	PowTargetSpacing             int64
	MasternodeCollateral         int64
	DifficultyAdjustmentInterval int64

	DeploymentStates [consensus.MaxDeployments]versionbits.ThresholdState
	DeploymentSince  [consensus.MaxDeployments]int32

	ActiveLLMQTypes []consensus.LLMQType

	MinPeerProtoVersion uint32

	DIP0001Active   bool
	DIP0003Enforced bool
	DIP0008Enforced bool

	// CoreMode is set while the network runs in the reduced lite/core mode,
	// from HardForkSeven until HardForkEight.
	CoreMode bool

	// ExpectedBlockVersion is the nVersion a miner would put on the next
	// block, with signaling bits for every STARTED and LOCKED_IN deployment.
	ExpectedBlockVersion int32
}

// Active reports whether the given deployment has reached ACTIVE for this
// rule set.
func (rs *RuleSet) Active(pos consensus.DeploymentPos) bool {
	return rs.DeploymentStates[pos] == versionbits.ThresholdActive
}

// ResolvedRules resolves every height and state dependent consensus value in
// one place, against the chain ending at indexPrev. A nil indexPrev stands
// for an empty chain, resolving the rules of the genesis block.
//
// Resolution is deterministic: the same tip, table and cache always yield
// the same rule set.
func ResolvedRules(params *consensus.Param, indexPrev *blockindex.BlockIndex,
	vbc *versionbits.VersionBitsCache) *RuleSet {
	if params == nil {
		panic(errcode.New(errcode.ErrorNilParamTable))
	}

	height := int32(0)
	if indexPrev != nil {
		height = indexPrev.Height + 1
	}

	rs := &RuleSet{
		Height:                       height,
		PowTargetSpacing:             params.PowTargetSpacing(height),
		MasternodeCollateral:         params.MasternodeCollateral(height),
		DifficultyAdjustmentInterval: params.DifficultyAdjustmentInterval(height),
		ActiveLLMQTypes:              llmq.ActiveTypesFor(params, height),
		MinPeerProtoVersion:          protocol.MinPeerVersionAt(height, params.LLMQSwitchHeight),
		DIP0001Active:                height >= params.DIP0001Height,
		DIP0003Enforced:              height >= params.DIP0003EnforcementHeight,
		DIP0008Enforced:              height >= params.DIP0008EnforcementHeight,
		CoreMode:                     height >= params.HardForkSeven && height < params.HardForkEight,
		ExpectedBlockVersion:         versionbits.ComputeBlockVersion(indexPrev, params, vbc),
	}

	for pos := consensus.DeploymentPos(0); pos < consensus.MaxDeployments; pos++ {
		rs.DeploymentStates[pos] = vbc.State(indexPrev, params, pos)
		rs.DeploymentSince[pos] = vbc.StateSinceHeight(indexPrev, params, pos)
	}

	log.Debug("resolved rules at height %d: spacing=%d collateral=%d quorums=%v",
		height, rs.PowTargetSpacing, rs.MasternodeCollateral, rs.ActiveLLMQTypes)

	return rs
}
