package llmq

import (
	"github.com/Zero-Dynamics/Alterdot/errcode"
	"github.com/Zero-Dynamics/Alterdot/model/consensus"
)

// ParamsFor looks up the DKG parameters of one quorum type. The type set is
// closed: asking for the none sentinel or an undefined type is a programming
// error and panics with a contract errcode.
func ParamsFor(params *consensus.Param, llmqType consensus.LLMQType) consensus.LLMQParams {
	if params == nil {
		panic(errcode.New(errcode.ErrorNilParamTable))
	}
	if llmqType == consensus.LLMQNone {
		panic(errcode.New(errcode.ErrorNoneQuorumType))
	}
	llmq, ok := params.LLMQs[llmqType]
	if !ok {
		panic(errcode.New(errcode.ErrorUnknownQuorumType))
	}
	return llmq
}

// ActiveTypesFor returns the set of quorum types usable at the given height:
// the pre-switch set below LLMQSwitchHeight, the post-switch set at and
// above it. The two sets are static table data, not derived.
func ActiveTypesFor(params *consensus.Param, height int32) []consensus.LLMQType {
	if params == nil {
		panic(errcode.New(errcode.ErrorNilParamTable))
	}
	if height < 0 {
		panic(errcode.New(errcode.ErrorNegativeHeight))
	}
	var set []consensus.LLMQType
	if height < params.LLMQSwitchHeight {
		set = params.LLMQActiveTypesPreSwitch
	} else {
		set = params.LLMQActiveTypesPostSwitch
	}
	return append([]consensus.LLMQType(nil), set...)
}

// ChainLockQuorum returns the quorum type designated for chain locks.
// Callers apply height gating (DIP0008 deployment state) before using it.
func ChainLockQuorum(params *consensus.Param) consensus.LLMQParams {
	if params == nil {
		panic(errcode.New(errcode.ErrorNilParamTable))
	}
	return ParamsFor(params, params.LLMQChainLocks)
}

// InstantSendQuorum returns the quorum type designated for instant send,
// or false when the table designates none.
func InstantSendQuorum(params *consensus.Param) (consensus.LLMQParams, bool) {
	if params == nil {
		panic(errcode.New(errcode.ErrorNilParamTable))
	}
	if params.LLMQForInstantSend == consensus.LLMQNone {
		return consensus.LLMQParams{}, false
	}
	return ParamsFor(params, params.LLMQForInstantSend), true
}

// HasInstantSendQuorum reports whether the table designates an instant send
// quorum at all.
func HasInstantSendQuorum(params *consensus.Param) bool {
	_, ok := InstantSendQuorum(params)
	return ok
}
