package consensus

import (
	"fmt"

	"github.com/Zero-Dynamics/Alterdot/errcode"
)

const (
	// version bits occupy positions 0..28, the top three mark the scheme
	maxVersionBit = 28

	// mining may only start once the five pre-finalization phases are over
	dkgMiningPhaseFactor = 5
)

// CheckParams verifies the structural invariants of a parameter table. A
// table failing any of them must never be registered: resolution functions
// assume a checked table and do not revalidate.
func CheckParams(p *Param) error {
	if p.GenesisHash == nil || p.GenesisHash.IsNull() {
		return errcode.New(errcode.ErrorBadGenesisHash)
	}
	if p.MinerConfirmationWindow < 2 {
		return errcode.New(errcode.ErrorBadConfirmationWindow)
	}

	if err := checkDeployments(p); err != nil {
		return err
	}
	return checkLLMQs(p)
}

func checkDeployments(p *Param) error {
	for pos := DeploymentPos(0); pos < MaxDeployments; pos++ {
		dep := &p.Deployments[pos]
		if dep.Bit < 0 || dep.Bit > maxVersionBit {
			return errcode.NewError(errcode.ErrorDeploymentBitOutOfRange,
				fmt.Sprintf("deployment %d bit %d", pos, dep.Bit))
		}
		if dep.WindowSize < 0 || dep.Threshold < 0 {
			return errcode.NewError(errcode.ErrorDeploymentThresholdTooLarge,
				fmt.Sprintf("deployment %d has a negative window or threshold", pos))
		}
		if int64(p.ThresholdFor(pos)) > int64(p.WindowSizeFor(pos)) {
			return errcode.NewError(errcode.ErrorDeploymentThresholdTooLarge,
				fmt.Sprintf("deployment %d threshold %d window %d",
					pos, p.ThresholdFor(pos), p.WindowSizeFor(pos)))
		}
	}

	// Two deployments may reuse a bit only if their signaling periods cannot
	// overlap. Always-active deployments never signal.
	for a := DeploymentPos(0); a < MaxDeployments; a++ {
		for b := a + 1; b < MaxDeployments; b++ {
			da, db := &p.Deployments[a], &p.Deployments[b]
			if da.Bit != db.Bit {
				continue
			}
			if da.StartTime == StartTimeAlwaysActive || db.StartTime == StartTimeAlwaysActive {
				continue
			}
			if da.StartTime < db.Timeout && db.StartTime < da.Timeout {
				return errcode.NewError(errcode.ErrorDeploymentBitCollision,
					fmt.Sprintf("deployments %d and %d share bit %d", a, b, da.Bit))
			}
		}
	}
	return nil
}

func checkLLMQs(p *Param) error {
	for llmqType, llmq := range p.LLMQs {
		if llmq.Type != llmqType || llmq.Size <= 0 {
			return errcode.NewError(errcode.ErrorLLMQBadSize, llmq.Name)
		}
		if llmq.Threshold <= llmq.Size/2 || llmq.Threshold > llmq.Size {
			return errcode.NewError(errcode.ErrorLLMQBadThreshold, llmq.Name)
		}
		if llmq.MinSize < llmq.Threshold || llmq.MinSize >= llmq.Size {
			return errcode.NewError(errcode.ErrorLLMQBadMinSize, llmq.Name)
		}
		if llmq.DKGInterval <= 0 || llmq.DKGPhaseBlocks <= 0 {
			return errcode.NewError(errcode.ErrorLLMQBadDKGInterval, llmq.Name)
		}
		if llmq.DKGMiningWindowEnd < llmq.DKGMiningWindowStart ||
			llmq.DKGMiningWindowStart < dkgMiningPhaseFactor*llmq.DKGPhaseBlocks ||
			llmq.DKGMiningWindowEnd >= llmq.DKGInterval {
			return errcode.NewError(errcode.ErrorLLMQBadMiningWindow, llmq.Name)
		}
		if llmq.KeepOldConnections < llmq.SigningActiveQuorumCount+1 {
			return errcode.NewError(errcode.ErrorLLMQBadConnectionCount, llmq.Name)
		}
	}

	if _, ok := p.LLMQs[p.LLMQChainLocks]; !ok {
		return errcode.New(errcode.ErrorLLMQUnknownChainLockType)
	}
	if p.LLMQForInstantSend != LLMQNone {
		if _, ok := p.LLMQs[p.LLMQForInstantSend]; !ok {
			return errcode.New(errcode.ErrorLLMQUnknownInstantSendType)
		}
	}
	for _, set := range [][]LLMQType{p.LLMQActiveTypesPreSwitch, p.LLMQActiveTypesPostSwitch} {
		for _, llmqType := range set {
			if _, ok := p.LLMQs[llmqType]; !ok {
				return errcode.New(errcode.ErrorLLMQUnknownActiveSetType)
			}
		}
	}
	return nil
}
