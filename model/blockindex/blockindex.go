package blockindex

import (
	"fmt"
	"sort"
)

// BlockIndex is one entry of the signaling history the block storage
// collaborator hands to the resolution engine: the block's version bit
// vector, its timestamp and a link to its predecessor. The chain is a tree
// shaped structure starting with the genesis block at the root; a BlockIndex
// may have multiple successors, but at most one of them is part of the
// currently active branch.
type BlockIndex struct {
	// Version is the block's version field carrying the signaling bits.
	Version int32
	// Time is the block's timestamp.
	Time uint32
	// pointer to the index of the predecessor of this block
	Prev *BlockIndex
	// pointer to the index of some further predecessor of this block
	Skip *BlockIndex
	// Height of the entry in the chain. The genesis block has height 0.
	Height int32
}

const medianTimeSpan = 11

func (bIndex *BlockIndex) GetBlockTime() uint32 {
	return bIndex.Time
}

// GetMedianTimePast returns the median timestamp of the last medianTimeSpan
// blocks ending at this one.
func (bIndex *BlockIndex) GetMedianTimePast() int64 {
	median := make([]int64, 0, medianTimeSpan)
	index := bIndex
	numNodes := 0
	for i := 0; i < medianTimeSpan && index != nil; i++ {
		median = append(median, int64(index.GetBlockTime()))
		index = index.Prev
		numNodes++
	}
	median = median[:numNodes]
	sort.Slice(median, func(i, j int) bool {
		return median[i] < median[j]
	})

	return median[numNodes/2]
}

// BuildSkip sets the skip pointer once Prev and Height are in place.
func (bIndex *BlockIndex) BuildSkip() {
	if bIndex.Prev != nil {
		bIndex.Skip = bIndex.Prev.GetAncestor(getSkipHeight(bIndex.Height))
	}
}

// Turn the lowest '1' bit in the binary representation of a number into a '0'.
func invertLowestOne(n int32) int32 {
	return n & (n - 1)
}

// getSkipHeight computes what height to jump back to with the Skip pointer.
func getSkipHeight(height int32) int32 {
	if height < 2 {
		return 0
	}

	// Any number strictly lower than height is acceptable, but the following
	// expression performs well in simulations (max 110 steps to go back up
	// to 2**18 blocks).
	if (height & 1) > 0 {
		return invertLowestOne(invertLowestOne(height-1)) + 1
	}
	return invertLowestOne(height)
}

// GetAncestor efficiently finds an ancestor of this block.
func (bIndex *BlockIndex) GetAncestor(height int32) *BlockIndex {
	if height > bIndex.Height || height < 0 {
		return nil
	}
	indexWalk := bIndex
	heightWalk := bIndex.Height
	for heightWalk > height {
		heightSkip := getSkipHeight(heightWalk)
		heightSkipPrev := getSkipHeight(heightWalk - 1)
		if indexWalk.Skip != nil && (heightSkip == height ||
			(heightSkip > height && !(heightSkipPrev < heightSkip-2 && heightSkipPrev >= height))) {
			// Only follow skip if prev->skip isn't better than skip->prev.
			indexWalk = indexWalk.Skip
			heightWalk = heightSkip
		} else {
			if indexWalk.Prev == nil {
				panic("The blockIndex pointer should not be nil")
			}
			indexWalk = indexWalk.Prev
			heightWalk--
		}
	}

	return indexWalk
}

func (bIndex *BlockIndex) ToString() string {
	return fmt.Sprintf("BlockIndex(pprev=%p, height=%d, version=%08x, time=%d)",
		bIndex.Prev, bIndex.Height, bIndex.Version, bIndex.Time)
}

// NewBlockIndex extends the chain ending at prev with a block carrying the
// given version and timestamp. prev may be nil for the genesis entry.
func NewBlockIndex(prev *BlockIndex, version int32, time uint32) *BlockIndex {
	blockIndex := &BlockIndex{
		Version: version,
		Time:    time,
		Prev:    prev,
	}
	if prev != nil {
		blockIndex.Height = prev.Height + 1
	}
	blockIndex.BuildSkip()

	return blockIndex
}
