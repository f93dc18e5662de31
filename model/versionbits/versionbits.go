package versionbits

import (
	"math"
	"sync"

	"github.com/Zero-Dynamics/Alterdot/errcode"
	"github.com/Zero-Dynamics/Alterdot/model/blockindex"
	"github.com/Zero-Dynamics/Alterdot/model/consensus"
)

const (
	// VersionBitsLastOldBlockVersion what block version to use for new blocks (pre versionBits)
	VersionBitsLastOldBlockVersion = 4
	// VersionBitsTopBits what bits to set in version for versionBits blocks
	VersionBitsTopBits = 0x20000000
	// VersionBitsTopMask what bitMask determines whether versionBits is in use
	VersionBitsTopMask int64 = 0xE0000000
	// VersionBitsNumBits total bits available for versionBits
	VersionBitsNumBits = 29
)

type ThresholdState int

const (
	ThresholdDefined ThresholdState = iota
	ThresholdStarted
	ThresholdLockedIn
	ThresholdActive
	ThresholdFailed
)

type BIP9DeploymentInfo struct {
	Name     string
	GbtForce bool
}

// DeploymentInfo is indexed by consensus.DeploymentPos.
var DeploymentInfo = []BIP9DeploymentInfo{
	{Name: "testdummy", GbtForce: true},
	{Name: "csv", GbtForce: true},
	{Name: "dip0001", GbtForce: true},
	{Name: "bip147", GbtForce: true},
	{Name: "dip0003", GbtForce: true},
	{Name: "dip0008", GbtForce: true},
}

type ThresholdConditionCache map[*blockindex.BlockIndex]ThresholdState

type AbstractThresholdConditionChecker interface {
	Condition(index *blockindex.BlockIndex, params *consensus.Param) bool
	BeginTime(params *consensus.Param) int64
	EndTime(params *consensus.Param) int64
	Period(params *consensus.Param) int32
	Threshold(params *consensus.Param) int32
}

// VersionBitsCache memoizes per-window states for every deployment. Writes
// are idempotent because recomputation is deterministic, so concurrent
// re-derivation at worst repeats work.
type VersionBitsCache struct {
	sync.Mutex
	cache [consensus.MaxDeployments]ThresholdConditionCache
}

func NewVersionBitsCache() *VersionBitsCache {
	var cache [consensus.MaxDeployments]ThresholdConditionCache
	for i := 0; i < int(consensus.MaxDeployments); i++ {
		cache[i] = make(ThresholdConditionCache)
	}
	return &VersionBitsCache{cache: cache}
}

func (vbc *VersionBitsCache) Clear() {
	vbc.Lock()
	defer vbc.Unlock()
	for i := 0; i < int(consensus.MaxDeployments); i++ {
		vbc.cache[i] = make(ThresholdConditionCache)
	}
}

// State computes the deployment's state for the block following indexPrev,
// under the cache lock.
func (vbc *VersionBitsCache) State(indexPrev *blockindex.BlockIndex, params *consensus.Param, pos consensus.DeploymentPos) ThresholdState {
	vbc.Lock()
	defer vbc.Unlock()
	return VersionBitsState(indexPrev, params, pos, vbc.cache[pos])
}

// StateSinceHeight computes the first height at which the deployment's
// current state applies, under the cache lock.
func (vbc *VersionBitsCache) StateSinceHeight(indexPrev *blockindex.BlockIndex, params *consensus.Param, pos consensus.DeploymentPos) int32 {
	vbc.Lock()
	defer vbc.Unlock()
	return VersionBitsStateSinceHeight(indexPrev, params, pos, vbc.cache[pos])
}

func VersionBitsState(indexPrev *blockindex.BlockIndex, params *consensus.Param, pos consensus.DeploymentPos, cache ThresholdConditionCache) ThresholdState {
	vc := &VersionBitsConditionChecker{id: pos}
	return GetStateFor(vc, indexPrev, params, cache)
}

func VersionBitsStateSinceHeight(indexPrev *blockindex.BlockIndex, params *consensus.Param, pos consensus.DeploymentPos, cache ThresholdConditionCache) int32 {
	vc := &VersionBitsConditionChecker{id: pos}
	return GetStateSinceHeightFor(vc, indexPrev, params, cache)
}

func VersionBitsMask(params *consensus.Param, pos consensus.DeploymentPos) uint32 {
	vc := VersionBitsConditionChecker{id: pos}
	return uint32(vc.Mask(params))
}

type VersionBitsConditionChecker struct {
	id consensus.DeploymentPos
}

func (vc *VersionBitsConditionChecker) BeginTime(params *consensus.Param) int64 {
	return params.Deployments[vc.id].StartTime
}

func (vc *VersionBitsConditionChecker) EndTime(params *consensus.Param) int64 {
	return params.Deployments[vc.id].Timeout
}

func (vc *VersionBitsConditionChecker) Period(params *consensus.Param) int32 {
	return int32(params.WindowSizeFor(vc.id))
}

func (vc *VersionBitsConditionChecker) Threshold(params *consensus.Param) int32 {
	return int32(params.ThresholdFor(vc.id))
}

func (vc *VersionBitsConditionChecker) Condition(index *blockindex.BlockIndex, params *consensus.Param) bool {
	return ((int64(index.Version) & VersionBitsTopMask) == VersionBitsTopBits) &&
		(index.Version&vc.Mask(params)) != 0
}

func (vc *VersionBitsConditionChecker) Mask(params *consensus.Param) int32 {
	return int32(1) << uint(params.Deployments[vc.id].Bit)
}

// GetStateFor computes the state the deployment is in for the block following
// indexPrev. A block's state is always the same as that of the first block of
// its window, so the walk below works on window boundaries only.
func GetStateFor(vc AbstractThresholdConditionChecker, indexPrev *blockindex.BlockIndex,
	params *consensus.Param, cache ThresholdConditionCache) ThresholdState {

	nPeriod := vc.Period(params)
	nThreshold := vc.Threshold(params)
	nTimeStart := vc.BeginTime(params)
	nTimeTimeout := vc.EndTime(params)

	if nTimeStart == consensus.StartTimeAlwaysActive {
		return ThresholdActive
	}

	// Move indexPrev to the last block of the previous window, i.e. a height
	// that is a multiple of nPeriod minus one.
	if indexPrev != nil {
		indexPrev = indexPrev.GetAncestor(indexPrev.Height - (indexPrev.Height+1)%nPeriod)
	}

	// Walk backwards in steps of nPeriod to find an indexPrev whose
	// information is known.
	toCompute := make([]*blockindex.BlockIndex, 0)
	for {
		if _, ok := cache[indexPrev]; !ok {
			if indexPrev == nil {
				// The genesis block is by definition defined.
				cache[indexPrev] = ThresholdDefined
				break
			}
			if indexPrev.GetMedianTimePast() < nTimeStart {
				// Optimization: don't recompute down further, as we know every
				// earlier block will be before the start time
				cache[indexPrev] = ThresholdDefined
				break
			}
			toCompute = append(toCompute, indexPrev)
			indexPrev = indexPrev.GetAncestor(indexPrev.Height - nPeriod)
		} else {
			break
		}
	}

	// At this point, cache[indexPrev] is known
	state, ok := cache[indexPrev]
	if !ok {
		panic(errcode.New(errcode.ErrorMissingCacheEntry))
	}

	// Now walk forward and compute the state of descendants of indexPrev
	for n := 0; n < len(toCompute); n++ {
		stateNext := state
		indexPrev = toCompute[len(toCompute)-1]
		toCompute = toCompute[:len(toCompute)-1]

		switch state {
		case ThresholdDefined:
			if indexPrev.GetMedianTimePast() >= nTimeTimeout {
				stateNext = ThresholdFailed
			} else if indexPrev.GetMedianTimePast() >= nTimeStart {
				stateNext = ThresholdStarted
			}
		case ThresholdStarted:
			if indexPrev.GetMedianTimePast() >= nTimeTimeout {
				stateNext = ThresholdFailed
				break
			}
			// We need to count
			indexCount := indexPrev
			count := int32(0)
			for i := int32(0); i < nPeriod; i++ {
				if vc.Condition(indexCount, params) {
					count++
				}
				indexCount = indexCount.Prev
			}
			if count >= nThreshold {
				stateNext = ThresholdLockedIn
			}
		case ThresholdLockedIn:
			// Always progresses into ACTIVE.
			stateNext = ThresholdActive
		case ThresholdFailed, ThresholdActive:
			// Nothing happens, these are terminal states.
		}
		state = stateNext
		cache[indexPrev] = state
	}
	return state
}

// GetStateSinceHeightFor computes the first height for which the deployment's
// current state applies.
func GetStateSinceHeightFor(vc AbstractThresholdConditionChecker, indexPrev *blockindex.BlockIndex,
	params *consensus.Param, cache ThresholdConditionCache) int32 {

	if vc.BeginTime(params) == consensus.StartTimeAlwaysActive {
		return 0
	}

	initialState := GetStateFor(vc, indexPrev, params, cache)
	// BIP 9 about state DEFINED: "The genesis block is by definition in this
	// state for each deployment."
	if initialState == ThresholdDefined {
		return 0
	}

	nPeriod := vc.Period(params)
	// A block's state is always the same as that of the first of its period,
	// so it is computed based on an indexPrev whose height equals a multiple
	// of nPeriod minus one. Right now indexPrev points to the block prior to
	// the block that we are computing for: if we are computing for the last
	// block of a period, indexPrev points to the second to last block of the
	// period, and if we are computing for the first block of a period,
	// indexPrev points to the last block of the previous period. The parent
	// of the genesis block is represented by nil.
	indexPrev = indexPrev.GetAncestor(indexPrev.Height - (indexPrev.Height+1)%nPeriod)
	previousPeriodParent := indexPrev.GetAncestor(indexPrev.Height - nPeriod)
	for previousPeriodParent != nil && GetStateFor(vc, previousPeriodParent, params, cache) == initialState {
		indexPrev = previousPeriodParent
		previousPeriodParent = indexPrev.GetAncestor(indexPrev.Height - nPeriod)
	}

	// Adjust the result because right now we point to the parent block.
	return indexPrev.Height + 1
}

type WarningBitsConditionChecker struct {
	bit int
	vbc *VersionBitsCache
}

func NewWarningBitsConChecker(bitIn int, vbc *VersionBitsCache) *WarningBitsConditionChecker {
	return &WarningBitsConditionChecker{bit: bitIn, vbc: vbc}
}

func (w *WarningBitsConditionChecker) BeginTime(params *consensus.Param) int64 {
	return 0
}

func (w *WarningBitsConditionChecker) EndTime(params *consensus.Param) int64 {
	return math.MaxInt64
}

func (w *WarningBitsConditionChecker) Period(params *consensus.Param) int32 {
	return int32(params.MinerConfirmationWindow)
}

func (w *WarningBitsConditionChecker) Threshold(params *consensus.Param) int32 {
	return int32(params.RuleChangeActivationThreshold)
}

// Condition flags a set signaling bit that does not belong to any deployment
// this node knows about.
func (w *WarningBitsConditionChecker) Condition(index *blockindex.BlockIndex, params *consensus.Param) bool {
	return int64(index.Version)&VersionBitsTopMask == VersionBitsTopBits &&
		(index.Version>>uint(w.bit))&1 != 0 &&
		(ComputeBlockVersion(index.Prev, params, w.vbc)>>uint(w.bit))&1 == 0
}

// ComputeBlockVersion assembles the version field a miner should use on top
// of indexPrev: the top bits plus every deployment bit currently worth
// signaling for.
func ComputeBlockVersion(indexPrev *blockindex.BlockIndex, params *consensus.Param, vbc *VersionBitsCache) int32 {
	version := int32(VersionBitsTopBits)

	for i := 0; i < int(consensus.MaxDeployments); i++ {
		state := vbc.State(indexPrev, params, consensus.DeploymentPos(i))
		if state == ThresholdLockedIn || state == ThresholdStarted {
			version |= int32(VersionBitsMask(params, consensus.DeploymentPos(i)))
		}
	}

	return version
}
