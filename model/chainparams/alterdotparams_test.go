package chainparams

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Zero-Dynamics/Alterdot/model/consensus"
)

func TestAllRegisteredNetsPassCheckParams(t *testing.T) {
	assert.GreaterOrEqual(t, len(RegisteredNets), 4)
	for _, params := range RegisteredNets {
		assert.NoError(t, consensus.CheckParams(&params.Param), params.Name)
	}
}

func TestRegisterRejectsDuplicateMagic(t *testing.T) {
	dup := MainNetParams
	assert.Error(t, Register(&dup))
}

func TestRegisterRejectsInvalidTable(t *testing.T) {
	bad := MainNetParams
	bad.Name = "broken"
	bad.NetMagic = 0xdeadbeef
	bad.GenesisHash = nil
	assert.Error(t, Register(&bad))
	_, ok := RegisteredNets[bad.NetMagic]
	assert.False(t, ok)
}

func TestByName(t *testing.T) {
	params, ok := ByName("main")
	assert.True(t, ok)
	assert.Equal(t, &MainNetParams, params)

	_, ok = ByName("no-such-net")
	assert.False(t, ok)
}

func TestMainNetEraValues(t *testing.T) {
	p := &MainNetParams.Param
	assert.Equal(t, int64(150), p.PowTargetSpacing(p.HardForkSix))
	assert.Equal(t, int64(120), p.PowTargetSpacing(p.HardForkSix+1))
	assert.Equal(t, int64(1000), p.MasternodeCollateral(p.HardForkSix))
	assert.Equal(t, int64(5000), p.MasternodeCollateral(p.HardForkSix+1))
}

func TestNewDevNetParams(t *testing.T) {
	minDiff := int32(64)
	highSubsidy := int32(200)
	params, err := NewDevNetParams("devnet-ouroboros", 0x7d4350a1, DevNetOverrides{
		MinimumDifficultyBlocks: &minDiff,
		HighSubsidyBlocks:       &highSubsidy,
	})
	assert.NoError(t, err)
	assert.Equal(t, int32(64), params.MinimumDifficultyBlocks)
	assert.Equal(t, int32(200), params.HighSubsidyBlocks)
	// untouched override keeps the template value
	assert.Equal(t, DevNetParams.HighSubsidyFactor, params.HighSubsidyFactor)

	// the specialized table must not alias the template's quorum map
	params.LLMQs[consensus.LLMQ40085] = llmq40085
	_, ok := DevNetParams.LLMQs[consensus.LLMQ40085]
	assert.False(t, ok)

	// re-registering the same devnet magic fails
	_, err = NewDevNetParams("devnet-ouroboros", 0x7d4350a1, DevNetOverrides{})
	assert.Error(t, err)
}

func TestDevNetTemplateKeepsDevnetGenesis(t *testing.T) {
	assert.True(t, DevNetParams.DevNetGenesisHash.IsEqual(&DevNetGenesisHash))
	assert.True(t, DevNetParams.GenesisHash.IsEqual(&DevNetGenesisHash))
}
