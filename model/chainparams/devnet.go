package chainparams

import (
	"github.com/pkg/errors"

	"github.com/Zero-Dynamics/Alterdot/model/consensus"
)

// DevNetOverrides carries the few numeric parameters a devnet profile may
// configure from the outside; a nil field keeps the template value.
type DevNetOverrides struct {
	MinimumDifficultyBlocks *int32
	HighSubsidyBlocks       *int32
	HighSubsidyFactor       *int32
}

// NewDevNetParams specializes the DevNetParams template for a named devnet.
// The returned table is validated and registered; it does not alias the
// template's mutable members.
func NewDevNetParams(name string, magic uint32, overrides DevNetOverrides) (*AlterdotParams, error) {
	params := DevNetParams
	params.Name = name
	params.NetMagic = magic

	llmqs := make(map[consensus.LLMQType]consensus.LLMQParams, len(DevNetParams.LLMQs))
	for llmqType, llmq := range DevNetParams.LLMQs {
		llmqs[llmqType] = llmq
	}
	params.LLMQs = llmqs
	params.LLMQActiveTypesPreSwitch = append([]consensus.LLMQType(nil), DevNetParams.LLMQActiveTypesPreSwitch...)
	params.LLMQActiveTypesPostSwitch = append([]consensus.LLMQType(nil), DevNetParams.LLMQActiveTypesPostSwitch...)

	if overrides.MinimumDifficultyBlocks != nil {
		params.MinimumDifficultyBlocks = *overrides.MinimumDifficultyBlocks
	}
	if overrides.HighSubsidyBlocks != nil {
		params.HighSubsidyBlocks = *overrides.HighSubsidyBlocks
	}
	if overrides.HighSubsidyFactor != nil {
		params.HighSubsidyFactor = *overrides.HighSubsidyFactor
	}

	if err := Register(&params); err != nil {
		return nil, errors.Wrap(err, "devnet")
	}
	return &params, nil
}
