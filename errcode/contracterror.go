package errcode

import "fmt"

// ContractErr codes mark calls the engine's contract forbids: programming
// errors, not run-time conditions. They are raised as panic values so the
// caller can assert on them rather than handle them.
type ContractErr int

const (
	ErrorUnknownQuorumType ContractErr = ContractErrorBase + iota
	ErrorNoneQuorumType
	ErrorNegativeHeight
	ErrorNilParamTable
	ErrorMissingCacheEntry
)

var contractErrString = map[ContractErr]string{
	ErrorUnknownQuorumType: "Lookup of a quorum type the table does not define",
	ErrorNoneQuorumType:    "Lookup of the LLMQ none sentinel",
	ErrorNegativeHeight:    "Resolution queried with a negative height",
	ErrorNilParamTable:     "Resolution queried without a parameter table",
	ErrorMissingCacheEntry: "The threshold cache lost an entry it must contain",
}

func (ce ContractErr) String() string {
	if s, ok := contractErrString[ce]; ok {
		return s
	}
	return fmt.Sprintf("Unknown code (%d)", ce)
}
