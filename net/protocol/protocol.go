package protocol

// network protocol versioning

const (
	ProtocolVersion uint32 = 70020

	// InitProtoVersion is the initial proto version, to be increased after
	// version/verack negotiation.
	InitProtoVersion uint32 = 209

	// GetheadersVersion is the version in which 'getheaders' was introduced.
	GetheadersVersion uint32 = 70000

	// MinPeerProtoVersion disconnect from peers older than this proto version.
	MinPeerProtoVersion uint32 = 70019

	// MinPeerProtoVersionQuorumSwitch disconnect from peers older than this
	// proto version once the LLMQ set has switched. If the network doesn't
	// reject older versions after the hard fork, verifying and rejecting
	// incoming messages from forks might cause lag.
	MinPeerProtoVersionQuorumSwitch uint32 = 70020

	// AddrTimeVersion nTime field added to CAddress, starting with this
	// version; if possible, avoid requesting addresses from nodes older than
	// this.
	AddrTimeVersion uint32 = 31402

	// BIP0031Version BIP 0031, pong message, is enabled for all versions
	// AFTER this one.
	BIP0031Version uint32 = 60000

	// MempoolGDVersion "mempool" command, enhanced "getdata" behavior starts
	// with this version.
	MempoolGDVersion uint32 = 60002

	// NoBloomVersion "filter*" commands are disabled without NODE_BLOOM after
	// and including this version.
	NoBloomVersion uint32 = 70000

	// SendHeadersVersion "sendheaders" command and announcing blocks with
	// headers starts with this version.
	SendHeadersVersion uint32 = 70000

	// DIP0001ProtocolVersion DIP0001 was activated in this version.
	DIP0001ProtocolVersion uint32 = 70208

	// ShortIDsBlocksVersion short-id-based block download starts with this
	// version.
	ShortIDsBlocksVersion uint32 = 70014

	// DMNProtoVersion introduction of DIP3/deterministic masternodes.
	DMNProtoVersion uint32 = 70013

	// LLMQsProtoVersion introduction of LLMQs.
	LLMQsProtoVersion uint32 = 70015

	// SendDSQueueProtoVersion introduction of SENDDSQUEUE.
	SendDSQueueProtoVersion uint32 = 70015
)

// The predicates below compare a peer's advertised version against the
// constant table; none of them is height gated.

// RejectsBloomFilters reports whether the peer drops filter* commands unless
// the bloom service bit is set.
func RejectsBloomFilters(version uint32) bool {
	return version >= NoBloomVersion
}

func SupportsGetheaders(version uint32) bool {
	return version >= GetheadersVersion
}

func SupportsSendHeaders(version uint32) bool {
	return version >= SendHeadersVersion
}

func SupportsShortIDBlocks(version uint32) bool {
	return version >= ShortIDsBlocksVersion
}

// SupportsPong reports whether the peer speaks BIP31 pong; enabled for all
// versions strictly after BIP0031Version.
func SupportsPong(version uint32) bool {
	return version > BIP0031Version
}

func SupportsMempoolGetData(version uint32) bool {
	return version >= MempoolGDVersion
}

func SupportsAddrTime(version uint32) bool {
	return version >= AddrTimeVersion
}

func SupportsDIP0001(version uint32) bool {
	return version >= DIP0001ProtocolVersion
}

func SupportsDeterministicMNs(version uint32) bool {
	return version >= DMNProtoVersion
}

func SupportsLLMQs(version uint32) bool {
	return version >= LLMQsProtoVersion
}

func SupportsDSQueue(version uint32) bool {
	return version >= SendDSQueueProtoVersion
}

// MinPeerVersionAt returns the minimum protocol version peers must advertise
// while the chain is at the given height. The requirement tightens once the
// quorum set switch kicks in.
func MinPeerVersionAt(height, llmqSwitchHeight int32) uint32 {
	if height >= llmqSwitchHeight {
		return MinPeerProtoVersionQuorumSwitch
	}
	return MinPeerProtoVersion
}
