package consensus

import (
	"math/big"

	"github.com/Zero-Dynamics/Alterdot/util"
)

type DeploymentPos int

const (
	DeploymentTestDummy DeploymentPos = iota
	// DeploymentCSV deployment of BIP68, BIP112, and BIP113.
	DeploymentCSV
	// DeploymentDIP0001 deployment of DIP0001 and lower transaction fees.
	DeploymentDIP0001
	// DeploymentBIP147 deployment of BIP147 (NULLDUMMY).
	DeploymentBIP147
	// DeploymentDIP0003 deployment of DIP0002 and DIP0003 (txv3 and deterministic MN lists).
	DeploymentDIP0003
	// DeploymentDIP0008 deployment of ChainLock enforcement.
	DeploymentDIP0008
	// MaxDeployments NOTE: also add new deployments to DeploymentInfo in
	// versionbits.go
	MaxDeployments
)

// StartTimeAlwaysActive makes a deployment unconditionally active from the
// genesis window onward, skipping the signaling life cycle.
const StartTimeAlwaysActive int64 = -1

type BIP9Deployment struct {
	// Bit position to select the particular bit in nVersion.
	Bit int
	// Start MedianTime for version bits miner confirmation. Can be a date in
	// the past.
	StartTime int64
	// Timeout/expiry MedianTime for the deployment attempt.
	Timeout int64
	// WindowSize is the number of past blocks (including the block under
	// consideration) to be taken into account for locking in a fork.
	// Zero means the table's MinerConfirmationWindow.
	WindowSize int64
	// Threshold is the number of blocks, in the range of 1..WindowSize, which
	// must signal for a fork in order to lock it in.
	// Zero means the table's RuleChangeActivationThreshold.
	Threshold int64
}

type Param struct {
	GenesisHash       *util.Hash
	DevNetGenesisHash *util.Hash

	// Hard fork heights. Each is an independent switch; no ordering among
	// them is assumed anywhere, they are configuration data per network.
	HardForkOne   int32
	HardForkTwo   int32
	HardForkThree int32
	HardForkFour  int32
	HardForkFive  int32
	// HardForkSix switches block spacing and masternode collateral.
	HardForkSix int32
	// HardForkSeven enters lite/core network mode.
	HardForkSeven int32
	// HardForkEight exits core mode: reactivation of masternodes and BIP147.
	HardForkEight int32

	// TempDevFundIncreaseEnd is the height at which the temporary dev fund
	// increase ends.
	TempDevFundIncreaseEnd int32

	SubsidyHalvingInterval  int32
	MasternodePaymentsStart int32

	InstantSendConfirmationsRequired int
	InstantSendKeepLock              int32
	InstantSendSigsRequired          int
	InstantSendSigsTotal             int

	BudgetPaymentsStartBlock   int32
	BudgetPaymentsCycleBlocks  int32
	BudgetPaymentsWindowBlocks int32

	SuperblockStartBlock int32
	SuperblockStartHash  util.Hash
	SuperblockCycle      int32

	// GovernanceMinQuorum is the minimum absolute vote count to trigger an action.
	GovernanceMinQuorum      int
	GovernanceFilterElements int

	OldMasternodeCollateral        int64
	NewMasternodeCollateral        int64
	MasternodeMinimumConfirmations int32

	// DIP0001Height is the block height at which DIP0001 becomes active.
	DIP0001Height int32

	IntPhaseTotalBlocks int32
	// BlocksPerYear is the expected block count per year.
	BlocksPerYear int32

	// In Dash certain features were activated in two steps: first the network
	// signaling which provides the context or enablement, then the spork
	// activation which provides the enforcement. Major activations keep that
	// model here as paired Height/EnforcementHeight fields.

	DIP0003Height            int32
	DIP0003EnforcementHeight int32
	DIP0003EnforcementHash   util.Hash

	// LLMQSwitchHeight is the height at which the used set of LLMQs changes.
	LLMQSwitchHeight int32

	DIP0006EnforcementHeight int32
	DIP0006EnforcementHash   util.Hash

	DIP0008Height            int32
	DIP0008EnforcementHeight int32
	DIP0008EnforcementHash   util.Hash

	// RuleChangeActivationThreshold is the minimum blocks signaling within a
	// window of MinerConfirmationWindow blocks to lock in a rule change.
	// Default BIP9Deployment.Threshold for deployments that do not set one.
	// Examples: 1916 for 95%, 1512 for testchains.
	RuleChangeActivationThreshold uint32
	// MinerConfirmationWindow is the default BIP9Deployment.WindowSize for
	// deployments that do not set one.
	MinerConfirmationWindow uint32

	Deployments [MaxDeployments]BIP9Deployment

	// Proof of work parameters
	PowLimit                     *big.Int
	FPowAllowMinDifficultyBlocks bool
	FPowNoRetargeting            bool
	PowTargetTimespan            int64
	OldPowTargetSpacing          int64
	NewPowTargetSpacing          int64

	// The best chain should have at least this much work.
	MinimumChainWork util.Hash

	// By default assume that the signatures in ancestors of this block are valid.
	DefaultAssumeValid util.Hash

	// These parameters are only used on devnet and can be configured from the
	// outside.
	MinimumDifficultyBlocks int32
	HighSubsidyBlocks       int32
	HighSubsidyFactor       int32

	LLMQs                     map[LLMQType]LLMQParams
	LLMQChainLocks            LLMQType
	LLMQForInstantSend        LLMQType
	LLMQActiveTypesPreSwitch  []LLMQType
	LLMQActiveTypesPostSwitch []LLMQType
}

// PowTargetSpacing returns the era value of the block spacing for the given
// height. The spacing switched at HardForkSix.
func (p *Param) PowTargetSpacing(height int32) int64 {
	if height > p.HardForkSix {
		return p.NewPowTargetSpacing
	}
	return p.OldPowTargetSpacing
}

// MasternodeCollateral returns the era value of the masternode collateral for
// the given height. The collateral switched at HardForkSix.
func (p *Param) MasternodeCollateral(height int32) int64 {
	if height > p.HardForkSix {
		return p.NewMasternodeCollateral
	}
	return p.OldMasternodeCollateral
}

func (p *Param) DifficultyAdjustmentInterval(height int32) int64 {
	return p.PowTargetTimespan / p.PowTargetSpacing(height)
}

// WindowSizeFor resolves the deployment's confirmation window, falling back
// to the table default when the deployment does not set one.
func (p *Param) WindowSizeFor(pos DeploymentPos) int {
	if w := p.Deployments[pos].WindowSize; w > 0 {
		return int(w)
	}
	return int(p.MinerConfirmationWindow)
}

// ThresholdFor resolves the deployment's activation threshold, falling back
// to the table default when the deployment does not set one.
func (p *Param) ThresholdFor(pos DeploymentPos) int {
	if t := p.Deployments[pos].Threshold; t > 0 {
		return int(t)
	}
	return int(p.RuleChangeActivationThreshold)
}
