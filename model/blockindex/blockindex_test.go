package blockindex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func buildChain(length int, time func(height int32) uint32) *BlockIndex {
	var tip *BlockIndex
	for i := 0; i < length; i++ {
		var h int32
		if tip != nil {
			h = tip.Height + 1
		}
		tip = NewBlockIndex(tip, 0, time(h))
	}
	return tip
}

func TestGetAncestor(t *testing.T) {
	tip := buildChain(100000, func(h int32) uint32 { return uint32(h) })
	assert.Equal(t, int32(99999), tip.Height)

	for _, h := range []int32{0, 1, 2, 777, 65536, 99998, 99999} {
		ancestor := tip.GetAncestor(h)
		if assert.NotNil(t, ancestor, "height %d", h) {
			assert.Equal(t, h, ancestor.Height)
		}
	}

	assert.Nil(t, tip.GetAncestor(100000))
	assert.Nil(t, tip.GetAncestor(-1))
}

func TestGetMedianTimePast(t *testing.T) {
	tip := buildChain(30, func(h int32) uint32 { return 1000 + uint32(h)*600 })

	// 11 entries ending at the tip: heights 19..29, median at height 24
	assert.Equal(t, int64(1000+24*600), tip.GetMedianTimePast())

	// short chains take the median of what exists
	genesis := buildChain(1, func(h int32) uint32 { return 4242 })
	assert.Equal(t, int64(4242), genesis.GetMedianTimePast())
}

func TestGetMedianTimePastUnsortedTimes(t *testing.T) {
	// block times are not monotone; the median must sort them
	times := []uint32{50, 10, 90, 20, 80, 30, 70, 40, 60, 55, 45}
	var tip *BlockIndex
	for _, tm := range times {
		tip = NewBlockIndex(tip, 0, tm)
	}
	assert.Equal(t, int64(50), tip.GetMedianTimePast())
}
