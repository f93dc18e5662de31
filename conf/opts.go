package conf

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
)

type Opts struct {
	DataDir  string `long:"datadir" description:"specified program data dir"`
	ConfFile string `long:"conf" description:"path to a yaml configuration file"`

	TestNet bool   `long:"testnet" description:"use the test network"`
	RegTest bool   `long:"regtest" description:"use the regression test network"`
	DevNet  string `long:"devnet" description:"use the development network with the given name"`

	DevNetProfile string `long:"devnetprofile" description:"path to a yaml devnet profile; its name overrides --devnet"`

	// devnet only knobs, ignored on the public networks
	MinimumDifficultyBlocks int32 `long:"minimumdifficultyblocks" default:"-1" description:"devnet: how many blocks accept minimum difficulty"`
	HighSubsidyBlocks       int32 `long:"highsubsidyblocks" default:"-1" description:"devnet: how many blocks pay a raised subsidy"`
	HighSubsidyFactor       int32 `long:"highsubsidyfactor" default:"-1" description:"devnet: the raised subsidy multiplier"`

	LogLevel   string   `long:"loglevel" description:"logging level {emergency, alert, critical, error, warn, notice, info, debug}"`
	LogModules []string `long:"logmodule" description:"only write logs for the given modules"`
}

func InitArgs(args []string) (*Opts, error) {
	opts := new(Opts)
	_, err := flags.ParseArgs(opts, args)
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		return nil, err
	}

	return opts, nil
}

func (opts *Opts) String() string {
	return fmt.Sprintf("datadir:%s testnet:%v regtest:%v devnet:%s",
		opts.DataDir, opts.TestNet, opts.RegTest, opts.DevNet)
}
