package conf

import (
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/Zero-Dynamics/Alterdot/errcode"
	"github.com/Zero-Dynamics/Alterdot/log"
	"github.com/Zero-Dynamics/Alterdot/model/chainparams"
)

const defaultLogLevel = "info"

// Config is the fully resolved program configuration: the parsed command
// line merged with the optional config file, plus the selected and validated
// parameter table.
type Config struct {
	Opts

	NetParams *chainparams.AlterdotParams
}

// InitConfig parses the command line, merges the config file if one was
// given and selects the network. The selected table also becomes
// chainparams.ActiveNetParams.
func InitConfig(args []string) (*Config, error) {
	opts, err := InitArgs(args)
	if err != nil {
		return nil, err
	}

	if opts.ConfFile != "" {
		if err := mergeConfigFile(opts); err != nil {
			return nil, err
		}
	}
	if opts.LogLevel == "" {
		opts.LogLevel = defaultLogLevel
	}

	params, err := selectNetwork(opts)
	if err != nil {
		return nil, err
	}
	chainparams.ActiveNetParams = params

	log.Info("configured for network %s: %s", params.Name, opts.String())

	return &Config{Opts: *opts, NetParams: params}, nil
}

// mergeConfigFile fills options the command line left unset from the yaml
// config file. Flags always win over file values.
func mergeConfigFile(opts *Opts) error {
	v := viper.New()
	v.SetConfigFile(opts.ConfFile)
	if err := v.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "reading config file %s", opts.ConfFile)
	}

	if opts.DataDir == "" {
		opts.DataDir = v.GetString("datadir")
	}
	if !opts.TestNet {
		opts.TestNet = v.GetBool("testnet")
	}
	if !opts.RegTest {
		opts.RegTest = v.GetBool("regtest")
	}
	if opts.DevNet == "" {
		opts.DevNet = v.GetString("devnet")
	}
	if opts.DevNetProfile == "" {
		opts.DevNetProfile = v.GetString("devnetprofile")
	}
	if opts.LogLevel == "" {
		opts.LogLevel = v.GetString("loglevel")
	}
	if len(opts.LogModules) == 0 {
		opts.LogModules = v.GetStringSlice("logmodule")
	}

	// a file may also name the network directly
	if name := v.GetString("network"); name != "" {
		switch name {
		case chainparams.MainNetParams.Name:
			// the default, nothing to flip
		case chainparams.TestNetParams.Name:
			opts.TestNet = true
		case chainparams.RegressionNetParams.Name:
			opts.RegTest = true
		default:
			if _, ok := chainparams.ByName(name); !ok {
				return errcode.New(errcode.ErrorUnknownNetwork)
			}
			opts.DevNet = name
		}
	}

	return nil
}

func selectNetwork(opts *Opts) (*chainparams.AlterdotParams, error) {
	selected := 0
	if opts.TestNet {
		selected++
	}
	if opts.RegTest {
		selected++
	}
	if opts.DevNet != "" || opts.DevNetProfile != "" {
		selected++
	}
	if selected > 1 {
		return nil, errcode.New(errcode.ErrorDuplicateNetworkSelection)
	}

	switch {
	case opts.TestNet:
		return &chainparams.TestNetParams, nil
	case opts.RegTest:
		return &chainparams.RegressionNetParams, nil
	case opts.DevNet != "" || opts.DevNetProfile != "":
		return devNetFromOpts(opts)
	default:
		return &chainparams.MainNetParams, nil
	}
}

// devNetFromOpts resolves the devnet table, either from a yaml profile or
// from the command line alone. A devnet registered earlier in this process
// under the same name is reused.
func devNetFromOpts(opts *Opts) (*chainparams.AlterdotParams, error) {
	var profile *DevNetProfile
	if opts.DevNetProfile != "" {
		loaded, err := LoadDevNetProfile(opts.DevNetProfile)
		if err != nil {
			return nil, err
		}
		profile = loaded
	} else {
		profile = &DevNetProfile{Name: opts.DevNet}
		if opts.MinimumDifficultyBlocks >= 0 {
			profile.MinimumDifficultyBlocks = &opts.MinimumDifficultyBlocks
		}
		if opts.HighSubsidyBlocks >= 0 {
			profile.HighSubsidyBlocks = &opts.HighSubsidyBlocks
		}
		if opts.HighSubsidyFactor >= 0 {
			profile.HighSubsidyFactor = &opts.HighSubsidyFactor
		}
	}

	if params, ok := chainparams.ByName(profile.Name); ok {
		return params, nil
	}

	return profile.Params()
}
