package errcode

import "fmt"

type ConfErr int

const (
	ErrorUnknownNetwork ConfErr = ConfErrorBase + iota
	ErrorDuplicateNetworkSelection
	ErrorBadDevNetProfile
)

var confErrString = map[ConfErr]string{
	ErrorUnknownNetwork:            "The selected network profile is not registered",
	ErrorDuplicateNetworkSelection: "More than one network flag was given",
	ErrorBadDevNetProfile:          "The devnet profile file is malformed",
}

func (ce ConfErr) String() string {
	if s, ok := confErrString[ce]; ok {
		return s
	}
	return fmt.Sprintf("Unknown code (%d)", ce)
}
