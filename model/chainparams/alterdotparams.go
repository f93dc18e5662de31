package chainparams

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/Zero-Dynamics/Alterdot/model/consensus"
	"github.com/Zero-Dynamics/Alterdot/util"
)

var ActiveNetParams = &MainNetParams

var (
	bigOne = big.NewInt(1)
	// 2^236 -1
	mainPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 236), bigOne)
	// 2^239 -1
	testNetPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 239), bigOne)
	// 2^255 -1
	regressingPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 255), bigOne)
)

// DNSSeed identifies a DNS seed.
type DNSSeed struct {
	// Host defines the hostname of the seed.
	Host string

	// HasFiltering defines whether the seed supports filtering
	// by service flags
	HasFiltering bool
}

// AlterdotParams bundles the consensus parameter table with the node-facing
// identity of one network profile.
type AlterdotParams struct {
	consensus.Param
	Name        string
	NetMagic    uint32
	DefaultPort string
	DNSSeeds    []DNSSeed
}

var MainNetParams = AlterdotParams{
	Param: consensus.Param{
		GenesisHash: &GenesisBlockHash,

		HardForkOne:   17000,
		HardForkTwo:   35000,
		HardForkThree: 64000,
		HardForkFour:  88000,
		HardForkFive:  142000,
		HardForkSix:   170000,
		// lite/core network mode
		HardForkSeven: 246000,
		// exit core mode, reactivation of masternodes and BIP147
		HardForkEight: 298000,

		TempDevFundIncreaseEnd: 210000,

		SubsidyHalvingInterval:  210240,
		MasternodePaymentsStart: 50000,

		InstantSendConfirmationsRequired: 6,
		InstantSendKeepLock:              24,
		InstantSendSigsRequired:          6,
		InstantSendSigsTotal:             10,

		BudgetPaymentsStartBlock:   100000,
		BudgetPaymentsCycleBlocks:  16616, // weird number, but a block every 2.5 minutes and 365.25 days a year
		BudgetPaymentsWindowBlocks: 100,

		SuperblockStartBlock: 150000,
		SuperblockStartHash:  *util.HashFromString("0000000000004d3b0bc0a909b1ab2ff361b9f605fdbe8bfa54d4f4e35f4bdbb2"),
		SuperblockCycle:      16616,

		GovernanceMinQuorum:      10,
		GovernanceFilterElements: 20000,

		OldMasternodeCollateral:        1000,
		NewMasternodeCollateral:        5000,
		MasternodeMinimumConfirmations: 15,

		DIP0001Height: 200000,

		IntPhaseTotalBlocks: 50000,
		BlocksPerYear:       262800, // at the 2 minute spacing

		DIP0003Height:            250000,
		DIP0003EnforcementHeight: 251500,
		DIP0003EnforcementHash:   *util.HashFromString("000000000000002b0cbf8e3af81e9e4e40cd7b7c8fbbe8bdfc1b7f9bf9f0c1ea"),

		LLMQSwitchHeight: 246000,

		DIP0006EnforcementHeight: 253000,
		DIP0006EnforcementHash:   *util.HashFromString("00000000000000175f09b9d9a94c6e551a89f0d8b9f27418ea066f38d4bfb557"),

		DIP0008Height:            260000,
		DIP0008EnforcementHeight: 262000,
		DIP0008EnforcementHash:   *util.HashFromString("000000000000001a3bd6a388a16bd9e4fd9a32a7e4ef0c1e3b0b51cdb73f5e49"),

		// 95% of 2016
		RuleChangeActivationThreshold: 1916,
		// nPowTargetTimespan / nPowTargetSpacing
		MinerConfirmationWindow: 2016,
		Deployments: [consensus.MaxDeployments]consensus.BIP9Deployment{
			consensus.DeploymentTestDummy: {
				Bit:       28,
				StartTime: 1199145601, // January 1, 2008
				Timeout:   1230767999, // December 31, 2008
			},
			consensus.DeploymentCSV: {
				Bit:       0,
				StartTime: 1486252800, // Feb 5th, 2017
				Timeout:   1549328400, // Feb 5th, 2019
			},
			consensus.DeploymentDIP0001: {
				Bit:        1,
				StartTime:  1508025600, // Oct 15th, 2017
				Timeout:    1539561600, // Oct 15th, 2018
				WindowSize: 4032,
				Threshold:  3226, // 80% of 4032
			},
			consensus.DeploymentBIP147: {
				Bit:        2,
				StartTime:  1524477600, // Apr 23rd, 2018
				Timeout:    1556013600, // Apr 23rd, 2019
				WindowSize: 4032,
				Threshold:  3226, // 80% of 4032
			},
			consensus.DeploymentDIP0003: {
				Bit:        3,
				StartTime:  1546300800, // Jan 1st, 2019
				Timeout:    1577836800, // Jan 1st, 2020
				WindowSize: 4032,
				Threshold:  3226, // 80% of 4032
			},
			consensus.DeploymentDIP0008: {
				Bit:        4,
				StartTime:  1557878400, // May 15th, 2019
				Timeout:    1589500800, // May 15th, 2020
				WindowSize: 4032,
				Threshold:  3226, // 80% of 4032
			},
		},

		PowLimit:                     mainPowLimit,
		FPowAllowMinDifficultyBlocks: false,
		FPowNoRetargeting:            false,
		PowTargetTimespan:            24 * 60 * 60, // one day
		OldPowTargetSpacing:          150,          // 2.5 minutes
		NewPowTargetSpacing:          120,          // 2 minutes

		// The best chain should have at least this much work.
		MinimumChainWork: *util.HashFromString("000000000000000000000000000000000000000000000000002cf554e16ecb8a"),

		// By default assume that the signatures in ancestors of this block are
		// valid.
		DefaultAssumeValid: *util.HashFromString("00000000000000d8ef1838b3075537cbcd3bdbb02aa568d1f82a25d491a9e471"),

		MinimumDifficultyBlocks: 0,
		HighSubsidyBlocks:       0,
		HighSubsidyFactor:       1,

		LLMQs: map[consensus.LLMQType]consensus.LLMQParams{
			consensus.LLMQ5060:  llmq5060,
			consensus.LLMQ40060: llmq40060,
			consensus.LLMQ40085: llmq40085,
			consensus.LLMQ1060:  llmq1060,
			consensus.LLMQ3080:  llmq3080,
		},
		LLMQChainLocks:     consensus.LLMQ3080,
		LLMQForInstantSend: consensus.LLMQ1060,
		LLMQActiveTypesPreSwitch: []consensus.LLMQType{
			consensus.LLMQ5060, consensus.LLMQ40060, consensus.LLMQ40085,
		},
		LLMQActiveTypesPostSwitch: []consensus.LLMQType{
			consensus.LLMQ1060, consensus.LLMQ3080,
		},
	},

	Name:        "main",
	NetMagic:    0xadd0a6b1,
	DefaultPort: "31000",
	DNSSeeds: []DNSSeed{
		{Host: "dnsseed.alterdot.network", HasFiltering: true},
		{Host: "dnsseed.zero-dynamics.dev", HasFiltering: false},
	},
}

var TestNetParams = AlterdotParams{
	Param: consensus.Param{
		GenesisHash: &TestNetGenesisHash,

		HardForkOne:   100,
		HardForkTwo:   200,
		HardForkThree: 300,
		HardForkFour:  400,
		HardForkFive:  500,
		HardForkSix:   600,
		HardForkSeven: 4000,
		HardForkEight: 4500,

		TempDevFundIncreaseEnd: 4600,

		SubsidyHalvingInterval:  210240,
		MasternodePaymentsStart: 500,

		InstantSendConfirmationsRequired: 2,
		InstantSendKeepLock:              6,
		InstantSendSigsRequired:          2,
		InstantSendSigsTotal:             4,

		BudgetPaymentsStartBlock:   4100,
		BudgetPaymentsCycleBlocks:  50,
		BudgetPaymentsWindowBlocks: 10,

		SuperblockStartBlock: 4200,
		SuperblockStartHash:  util.HashZero,
		SuperblockCycle:      24,

		GovernanceMinQuorum:      1,
		GovernanceFilterElements: 500,

		OldMasternodeCollateral:        1000,
		NewMasternodeCollateral:        5000,
		MasternodeMinimumConfirmations: 1,

		DIP0001Height: 5500,

		IntPhaseTotalBlocks: 1000,
		BlocksPerYear:       262800,

		DIP0003Height:            7000,
		DIP0003EnforcementHeight: 7300,
		DIP0003EnforcementHash:   util.HashZero,

		LLMQSwitchHeight: 4000,

		DIP0006EnforcementHeight: 7500,
		DIP0006EnforcementHash:   util.HashZero,

		DIP0008Height:            7800,
		DIP0008EnforcementHeight: 8000,
		DIP0008EnforcementHash:   util.HashZero,

		// 75% of 2016
		RuleChangeActivationThreshold: 1512,
		MinerConfirmationWindow:       2016,
		Deployments: [consensus.MaxDeployments]consensus.BIP9Deployment{
			consensus.DeploymentTestDummy: {
				Bit:       28,
				StartTime: 1199145601, // January 1, 2008
				Timeout:   1230767999, // December 31, 2008
			},
			consensus.DeploymentCSV: {
				Bit:       0,
				StartTime: 1506556800, // September 28th, 2017
				Timeout:   1538092800, // September 28th, 2018
			},
			consensus.DeploymentDIP0001: {
				Bit:        1,
				StartTime:  1505692800, // Sep 18th, 2017
				Timeout:    1537228800, // Sep 18th, 2018
				WindowSize: 100,
				Threshold:  50, // 50% of 100
			},
			consensus.DeploymentBIP147: {
				Bit:        2,
				StartTime:  1517792400, // Feb 5th, 2018
				Timeout:    1549328400, // Feb 5th, 2019
				WindowSize: 100,
				Threshold:  50,
			},
			consensus.DeploymentDIP0003: {
				Bit:        3,
				StartTime:  1535752800, // Sep 1st, 2018
				Timeout:    1567288800, // Sep 1st, 2019
				WindowSize: 100,
				Threshold:  50,
			},
			consensus.DeploymentDIP0008: {
				Bit:        4,
				StartTime:  1553126400, // Mar 21st, 2019
				Timeout:    1584748800, // Mar 21st, 2020
				WindowSize: 100,
				Threshold:  50,
			},
		},

		PowLimit:                     testNetPowLimit,
		FPowAllowMinDifficultyBlocks: true,
		FPowNoRetargeting:            false,
		PowTargetTimespan:            24 * 60 * 60,
		OldPowTargetSpacing:          150,
		NewPowTargetSpacing:          120,

		MinimumChainWork:   *util.HashFromString("0000000000000000000000000000000000000000000000000000003be69c34bd"),
		DefaultAssumeValid: *util.HashFromString("0000024a0d42d08a5b000c9775de6c73a14e4d790a2d71ac0d70e0b2e3e96f28"),

		MinimumDifficultyBlocks: 0,
		HighSubsidyBlocks:       0,
		HighSubsidyFactor:       1,

		LLMQs: map[consensus.LLMQType]consensus.LLMQParams{
			consensus.LLMQ5060: llmq5060,
			consensus.LLMQ1060: llmq1060,
			consensus.LLMQ3080: llmq3080,
			consensus.LLMQ560:  llmq560,
		},
		LLMQChainLocks:     consensus.LLMQ1060,
		LLMQForInstantSend: consensus.LLMQ560,
		LLMQActiveTypesPreSwitch: []consensus.LLMQType{
			consensus.LLMQ5060,
		},
		LLMQActiveTypesPostSwitch: []consensus.LLMQType{
			consensus.LLMQ1060, consensus.LLMQ3080,
		},
	},

	Name:        "test",
	NetMagic:    0xadd0a6c2,
	DefaultPort: "31400",
	DNSSeeds: []DNSSeed{
		{Host: "testnet-seed.alterdot.network", HasFiltering: true},
	},
}

// DevNetParams is the template the conf loader specializes per devnet; the
// devnet-only overrides (MinimumDifficultyBlocks, HighSubsidyBlocks,
// HighSubsidyFactor) are applied by NewDevNetParams.
var DevNetParams = AlterdotParams{
	Param: func() consensus.Param {
		p := TestNetParams.Param
		p.GenesisHash = &DevNetGenesisHash
		p.DevNetGenesisHash = &DevNetGenesisHash
		p.MinimumDifficultyBlocks = 4032
		p.HighSubsidyBlocks = 4000
		p.HighSubsidyFactor = 10
		p.LLMQChainLocks = consensus.LLMQ560
		p.LLMQForInstantSend = consensus.LLMQ560
		p.LLMQActiveTypesPreSwitch = []consensus.LLMQType{consensus.LLMQ560}
		p.LLMQActiveTypesPostSwitch = []consensus.LLMQType{consensus.LLMQ560, consensus.LLMQ1060}
		return p
	}(),

	Name:        "dev",
	NetMagic:    0xadd0a6d3,
	DefaultPort: "31800",
	DNSSeeds:    []DNSSeed{},
}

var RegressionNetParams = AlterdotParams{
	Param: consensus.Param{
		GenesisHash: &RegTestGenesisHash,

		HardForkOne:   100,
		HardForkTwo:   110,
		HardForkThree: 120,
		HardForkFour:  130,
		HardForkFive:  140,
		HardForkSix:   150,
		HardForkSeven: 300,
		HardForkEight: 400,

		TempDevFundIncreaseEnd: 500,

		SubsidyHalvingInterval:  150,
		MasternodePaymentsStart: 240,

		InstantSendConfirmationsRequired: 2,
		InstantSendKeepLock:              6,
		InstantSendSigsRequired:          2,
		InstantSendSigsTotal:             4,

		BudgetPaymentsStartBlock:   1000,
		BudgetPaymentsCycleBlocks:  50,
		BudgetPaymentsWindowBlocks: 10,

		SuperblockStartBlock: 1500,
		SuperblockStartHash:  util.HashZero,
		SuperblockCycle:      10,

		GovernanceMinQuorum:      1,
		GovernanceFilterElements: 100,

		OldMasternodeCollateral:        1000,
		NewMasternodeCollateral:        5000,
		MasternodeMinimumConfirmations: 1,

		DIP0001Height: 2000,

		IntPhaseTotalBlocks: 100,
		BlocksPerYear:       262800,

		DIP0003Height:            432,
		DIP0003EnforcementHeight: 500,
		DIP0003EnforcementHash:   util.HashZero,

		LLMQSwitchHeight: 300,

		DIP0006EnforcementHeight: 600,
		DIP0006EnforcementHash:   util.HashZero,

		DIP0008Height:            432,
		DIP0008EnforcementHeight: 500,
		DIP0008EnforcementHash:   util.HashZero,

		// 75% of 144
		RuleChangeActivationThreshold: 108,
		// Faster than normal for regtest (144 instead of 2016)
		MinerConfirmationWindow: 144,
		Deployments: [consensus.MaxDeployments]consensus.BIP9Deployment{
			consensus.DeploymentTestDummy: {
				Bit:       28,
				StartTime: 0,
				Timeout:   999999999999,
			},
			consensus.DeploymentCSV: {
				Bit:       0,
				StartTime: 0,
				Timeout:   999999999999,
			},
			consensus.DeploymentDIP0001: {
				Bit:       1,
				StartTime: consensus.StartTimeAlwaysActive,
			},
			consensus.DeploymentBIP147: {
				Bit:       2,
				StartTime: consensus.StartTimeAlwaysActive,
			},
			consensus.DeploymentDIP0003: {
				Bit:       3,
				StartTime: consensus.StartTimeAlwaysActive,
			},
			consensus.DeploymentDIP0008: {
				Bit:       4,
				StartTime: consensus.StartTimeAlwaysActive,
			},
		},

		PowLimit:                     regressingPowLimit,
		FPowAllowMinDifficultyBlocks: true,
		FPowNoRetargeting:            true,
		PowTargetTimespan:            24 * 60 * 60,
		OldPowTargetSpacing:          150,
		NewPowTargetSpacing:          120,

		MinimumChainWork:   *util.HashFromString("00"),
		DefaultAssumeValid: *util.HashFromString("00"),

		MinimumDifficultyBlocks: 0,
		HighSubsidyBlocks:       0,
		HighSubsidyFactor:       1,

		LLMQs: map[consensus.LLMQType]consensus.LLMQParams{
			consensus.LLMQ560: llmq560,
		},
		LLMQChainLocks:            consensus.LLMQ560,
		LLMQForInstantSend:        consensus.LLMQNone,
		LLMQActiveTypesPreSwitch:  []consensus.LLMQType{consensus.LLMQ560},
		LLMQActiveTypesPostSwitch: []consensus.LLMQType{consensus.LLMQ560},
	},

	Name:        "regtest",
	NetMagic:    0xadd0a6e4,
	DefaultPort: "31600",
	DNSSeeds:    []DNSSeed{},
}

var RegisteredNets = make(map[uint32]*AlterdotParams)

func init() {
	mustRegister(&MainNetParams)
	mustRegister(&TestNetParams)
	mustRegister(&DevNetParams)
	mustRegister(&RegressionNetParams)
}

// Register validates the table and makes it selectable by magic. A table
// failing CheckParams is never registered.
func Register(params *AlterdotParams) error {
	if _, ok := RegisteredNets[params.NetMagic]; ok {
		return errors.Errorf("duplicate alterdot network %s", params.Name)
	}
	if err := consensus.CheckParams(&params.Param); err != nil {
		return errors.Wrapf(err, "network %s", params.Name)
	}
	RegisteredNets[params.NetMagic] = params
	return nil
}

func mustRegister(params *AlterdotParams) {
	if err := Register(params); err != nil {
		panic("failed to register network: " + err.Error())
	}
}

// ByName returns the registered network profile carrying the given name.
func ByName(name string) (*AlterdotParams, bool) {
	for _, params := range RegisteredNets {
		if params.Name == name {
			return params, true
		}
	}
	return nil, false
}

// IsHardForkEightEnabled checks whether core mode has been exited and
// masternode functionality reactivated on the active network.
func IsHardForkEightEnabled(height int32) bool {
	return height > ActiveNetParams.HardForkEight
}
