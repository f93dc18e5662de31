package versionbits

import (
	"math"
	"math/rand"
	"testing"

	"github.com/magiconair/properties/assert"

	"github.com/Zero-Dynamics/Alterdot/model/blockindex"
	"github.com/Zero-Dynamics/Alterdot/model/consensus"
)

var paramsDummy = consensus.Param{}

func testTime(height int32) int64 {
	return 1415926536 + int64(600*height)
}

// ConditionChecker drives the generic state machine with its own window,
// threshold and times, bypassing the parameter table the way a deployment
// with unusual settings would.
type ConditionChecker struct {
	cache     ThresholdConditionCache
	period    int32
	threshold int32
	begin     int64
	end       int64
}

var randomNum = rand.Uint32()

func (tc *ConditionChecker) BeginTime(params *consensus.Param) int64 {
	return tc.begin
}

func (tc *ConditionChecker) EndTime(params *consensus.Param) int64 {
	return tc.end
}

func (tc *ConditionChecker) Period(params *consensus.Param) int32 {
	return tc.period
}

func (tc *ConditionChecker) Threshold(params *consensus.Param) int32 {
	return tc.threshold
}

func (tc *ConditionChecker) Condition(index *blockindex.BlockIndex, params *consensus.Param) bool {
	return index.Version&0x100 != 0
}

func (tc *ConditionChecker) GetStateFor(indexPrev *blockindex.BlockIndex) ThresholdState {
	return GetStateFor(tc, indexPrev, &paramsDummy, tc.cache)
}

func (tc *ConditionChecker) GetStateSinceHeightFor(indexPrev *blockindex.BlockIndex) int32 {
	return GetStateSinceHeightFor(tc, indexPrev, &paramsDummy, tc.cache)
}

const checkers = 6

// VersionBitsTester mines a fake chain and holds several independent
// checkers for the same bit. The first one performs all checks, the second
// only 50%, the third only 25%, etc. This tests whether lack of cached
// information leads to the same results.
type VersionBitsTester struct {
	// Test counter (to identify failures)
	num int
	// A fake blockchain
	block []*blockindex.BlockIndex

	checker [checkers]ConditionChecker
}

func newVersionBitsTester(period, threshold int32, begin, end int64) *VersionBitsTester {
	vt := VersionBitsTester{
		block: make([]*blockindex.BlockIndex, 0),
	}
	for i := 0; i < checkers; i++ {
		vt.checker[i] = ConditionChecker{
			cache:     make(ThresholdConditionCache),
			period:    period,
			threshold: threshold,
			begin:     begin,
			end:       end,
		}
	}
	return &vt
}

func (vt *VersionBitsTester) Tip() *blockindex.BlockIndex {
	if len(vt.block) == 0 {
		return nil
	}
	return vt.block[len(vt.block)-1]
}

func (vt *VersionBitsTester) Reset() *VersionBitsTester {
	vt.block = make([]*blockindex.BlockIndex, 0)
	for i := 0; i < checkers; i++ {
		vt.checker[i].cache = make(ThresholdConditionCache)
	}
	return vt
}

// Mine extends the fake chain until it holds height blocks, all carrying the
// given time and version.
func (vt *VersionBitsTester) Mine(height int32, nTime int64, nVersion int32) *VersionBitsTester {
	for int32(len(vt.block)) < height {
		vt.block = append(vt.block, blockindex.NewBlockIndex(vt.Tip(), nVersion, uint32(nTime)))
	}
	return vt
}

func (vt *VersionBitsTester) checkState(t *testing.T, want ThresholdState, name string) *VersionBitsTester {
	t.Helper()
	for i := 0; i < checkers; i++ {
		if (randomNum & ((1 << uint(i)) - 1)) != 0 {
			continue
		}
		got := vt.checker[i].GetStateFor(vt.Tip())
		if got != want {
			t.Errorf("Test %d for %s, actual state : %d", vt.num, name, got)
		}
	}
	vt.num++
	return vt
}

func (vt *VersionBitsTester) TestDefined(t *testing.T) *VersionBitsTester {
	return vt.checkState(t, ThresholdDefined, "DEFINED")
}

func (vt *VersionBitsTester) TestStarted(t *testing.T) *VersionBitsTester {
	return vt.checkState(t, ThresholdStarted, "STARTED")
}

func (vt *VersionBitsTester) TestLockedIn(t *testing.T) *VersionBitsTester {
	return vt.checkState(t, ThresholdLockedIn, "LOCKED_IN")
}

func (vt *VersionBitsTester) TestActive(t *testing.T) *VersionBitsTester {
	return vt.checkState(t, ThresholdActive, "ACTIVE")
}

func (vt *VersionBitsTester) TestFailed(t *testing.T) *VersionBitsTester {
	return vt.checkState(t, ThresholdFailed, "FAILED")
}

func (vt *VersionBitsTester) TestStateSinceHeight(t *testing.T, height int32) *VersionBitsTester {
	t.Helper()
	for i := 0; i < checkers; i++ {
		if (randomNum & ((1 << uint(i)) - 1)) != 0 {
			continue
		}
		got := vt.checker[i].GetStateSinceHeightFor(vt.Tip())
		if got != height {
			t.Errorf("Test %d for StateSinceHeight, actual %d, expect %d", vt.num, got, height)
		}
	}
	vt.num++
	return vt
}

func TestVersionBitsDefinedToFailed(t *testing.T) {
	// timeout reached without the start time ever being hit in time
	vt := newVersionBitsTester(1000, 900, testTime(10000), testTime(20000))
	vt.TestDefined(t).TestStateSinceHeight(t, 0).
		Mine(1, testTime(1), 0x100).TestDefined(t).TestStateSinceHeight(t, 0).
		Mine(11, testTime(11), 0x100).TestDefined(t).TestStateSinceHeight(t, 0).
		Mine(989, testTime(989), 0x100).TestDefined(t).TestStateSinceHeight(t, 0).
		Mine(999, testTime(20000), 0x100).TestDefined(t).TestStateSinceHeight(t, 0).
		Mine(1000, testTime(20000), 0x100).TestFailed(t).TestStateSinceHeight(t, 1000).
		Mine(1999, testTime(30001), 0x100).TestFailed(t).TestStateSinceHeight(t, 1000).
		Mine(2000, testTime(30002), 0x100).TestFailed(t).TestStateSinceHeight(t, 1000)
}

func TestVersionBitsStartedToFailedAtTimeout(t *testing.T) {
	// the timeout is checked before the tally, so heavy signaling in the
	// final window does not save the deployment
	vt := newVersionBitsTester(1000, 900, testTime(10000), testTime(20000))
	vt.TestDefined(t).
		Mine(1, testTime(1), 0).TestDefined(t).TestStateSinceHeight(t, 0).
		// One second more and it would be DEFINED -> STARTED
		Mine(1000, testTime(10000)-1, 0x100).TestDefined(t).TestStateSinceHeight(t, 0).
		// So that happens the next period
		Mine(2000, testTime(10000), 0x100).TestStarted(t).TestStateSinceHeight(t, 2000).
		// 51 old blocks
		Mine(2051, testTime(10010), 0).TestStarted(t).TestStateSinceHeight(t, 2000).
		// 899 new blocks
		Mine(2950, testTime(10020), 0x100).TestStarted(t).TestStateSinceHeight(t, 2000).
		// 50 old blocks, so 899 out of the past 1000 signaled: timeout
		Mine(3000, testTime(20000), 0).TestFailed(t).TestStateSinceHeight(t, 3000).
		Mine(4000, testTime(20010), 0x100).TestFailed(t).TestStateSinceHeight(t, 3000)
}

func TestVersionBitsLockInAndActivate(t *testing.T) {
	vt := newVersionBitsTester(1000, 900, testTime(10000), testTime(20000))
	vt.TestDefined(t).
		Mine(1, testTime(1), 0).TestDefined(t).TestStateSinceHeight(t, 0).
		Mine(1000, testTime(10000)-1, 0x101).TestDefined(t).TestStateSinceHeight(t, 0).
		Mine(2000, testTime(10000), 0x101).TestStarted(t).TestStateSinceHeight(t, 2000).
		// 50 non-signaling blocks
		Mine(2050, testTime(10010), 0x200).TestStarted(t).TestStateSinceHeight(t, 2000).
		// 900 signaling blocks
		Mine(2950, testTime(10020), 0x100).TestStarted(t).TestStateSinceHeight(t, 2000).
		// the window's median time stays one second short of the timeout
		Mine(2999, testTime(19999), 0x200).TestStarted(t).TestStateSinceHeight(t, 2000).
		Mine(3000, testTime(29999), 0x200).TestLockedIn(t).TestStateSinceHeight(t, 3000).
		// a LOCKED_IN window yields ACTIVE exactly one window later, with
		// zero further signaling
		Mine(3999, testTime(30001), 0).TestLockedIn(t).TestStateSinceHeight(t, 3000).
		Mine(4000, testTime(30002), 0).TestActive(t).TestStateSinceHeight(t, 4000).
		Mine(14333, testTime(30003), 0).TestActive(t).TestStateSinceHeight(t, 4000).
		Mine(24000, testTime(40000), 0).TestActive(t).TestStateSinceHeight(t, 4000)
}

func TestVersionBitsExactThresholdBoundary(t *testing.T) {
	// window 100, threshold 80: exactly 80 signaling blocks lock in
	vt := newVersionBitsTester(100, 80, testTime(10000), testTime(20000))
	vt.Mine(100, testTime(10000), 0).TestStarted(t).
		Mine(180, testTime(10020), 0x100).
		Mine(200, testTime(10040), 0).TestLockedIn(t).TestStateSinceHeight(t, 200).
		Mine(300, testTime(10050), 0).TestActive(t).TestStateSinceHeight(t, 300)

	// 79 of 100 stays STARTED
	vt = newVersionBitsTester(100, 80, testTime(10000), testTime(20000))
	vt.Mine(100, testTime(10000), 0).TestStarted(t).
		Mine(179, testTime(10020), 0x100).
		Mine(200, testTime(10040), 0).TestStarted(t).TestStateSinceHeight(t, 100)
}

func TestVersionBitsUnreachableThreshold(t *testing.T) {
	// threshold of window+1 can never lock in: the walk still terminates and
	// the deployment fails at its timeout
	vt := newVersionBitsTester(100, 101, testTime(10000), testTime(20000))
	vt.Mine(100, testTime(10000), 0x100).TestStarted(t).
		Mine(1000, testTime(10001), 0x100).TestStarted(t).
		Mine(1100, testTime(20000), 0x100).TestFailed(t)
}

func TestVersionBitsFarFutureStartStaysDefined(t *testing.T) {
	vt := newVersionBitsTester(1000, 900, math.MaxInt64-1, math.MaxInt64)
	vt.Mine(10000, testTime(30000), 0x100).TestDefined(t).TestStateSinceHeight(t, 0)
}

func TestVersionBitsTerminalStatesAreStable(t *testing.T) {
	vt := newVersionBitsTester(1000, 900, testTime(10000), testTime(20000))
	vt.Mine(1000, testTime(1), 0).TestDefined(t).
		Mine(2000, testTime(10000), 0x100).TestStarted(t).
		Mine(3000, testTime(10001), 0x100).TestLockedIn(t).
		Mine(4000, testTime(10002), 0).TestActive(t)

	// repeated queries keep producing the same answer
	for n := 0; n < 10; n++ {
		vt.TestActive(t).TestStateSinceHeight(t, 4000)
	}
}

func TestVersionBitsAlwaysActiveSentinel(t *testing.T) {
	params := &consensus.Param{
		RuleChangeActivationThreshold: 108,
		MinerConfirmationWindow:       144,
	}
	params.Deployments[consensus.DeploymentTestDummy] = consensus.BIP9Deployment{
		Bit:       28,
		StartTime: consensus.StartTimeAlwaysActive,
	}

	cache := make(ThresholdConditionCache)
	assert.Equal(t, ThresholdActive, VersionBitsState(nil, params, consensus.DeploymentTestDummy, cache))
	assert.Equal(t, int32(0), VersionBitsStateSinceHeight(nil, params, consensus.DeploymentTestDummy, cache))
}

func TestComputeBlockVersion(t *testing.T) {
	params := &consensus.Param{
		RuleChangeActivationThreshold: 108,
		MinerConfirmationWindow:       144,
	}
	for pos := consensus.DeploymentPos(0); pos < consensus.MaxDeployments; pos++ {
		params.Deployments[pos] = consensus.BIP9Deployment{Bit: int(pos), Timeout: 1}
	}
	params.Deployments[consensus.DeploymentCSV] = consensus.BIP9Deployment{
		Bit:       1,
		StartTime: testTime(0),
		Timeout:   math.MaxInt64,
	}

	vbc := NewVersionBitsCache()

	// with no chain at all, every deployment is DEFINED and nothing signals
	assert.Equal(t, int32(VersionBitsTopBits), ComputeBlockVersion(nil, params, vbc))

	// once CSV is STARTED its bit shows up in the computed version
	var tip *blockindex.BlockIndex
	for i := 0; i < 144; i++ {
		tip = blockindex.NewBlockIndex(tip, 0, uint32(testTime(1)))
	}
	assert.Equal(t, int32(VersionBitsTopBits|0x2), ComputeBlockVersion(tip, params, vbc))
}

func TestVersionBitsMask(t *testing.T) {
	params := &consensus.Param{}
	params.Deployments[consensus.DeploymentCSV].Bit = 0
	params.Deployments[consensus.DeploymentDIP0008].Bit = 4
	assert.Equal(t, uint32(1), VersionBitsMask(params, consensus.DeploymentCSV))
	assert.Equal(t, uint32(16), VersionBitsMask(params, consensus.DeploymentDIP0008))
}

func TestWarningBitsChecker(t *testing.T) {
	params := &consensus.Param{
		RuleChangeActivationThreshold: 108,
		MinerConfirmationWindow:       144,
	}
	for pos := consensus.DeploymentPos(0); pos < consensus.MaxDeployments; pos++ {
		params.Deployments[pos] = consensus.BIP9Deployment{Bit: int(pos), Timeout: 1}
	}

	vbc := NewVersionBitsCache()
	w := NewWarningBitsConChecker(20, vbc)

	// bit 20 belongs to no known deployment: signaling it is suspicious
	tip := blockindex.NewBlockIndex(nil, int32(VersionBitsTopBits|1<<20), uint32(testTime(1)))
	assert.Equal(t, true, w.Condition(tip, params))

	quiet := blockindex.NewBlockIndex(nil, int32(VersionBitsTopBits), uint32(testTime(1)))
	assert.Equal(t, false, w.Condition(quiet, params))
}
