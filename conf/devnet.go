package conf

import (
	"crypto/sha256"
	"encoding/binary"
	"io/ioutil"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/Zero-Dynamics/Alterdot/errcode"
	"github.com/Zero-Dynamics/Alterdot/model/chainparams"
)

// DevNetProfile describes a named devnet in a yaml file that can be shared
// between the nodes joining it. Absent override fields keep the devnet
// template values.
type DevNetProfile struct {
	Name  string `yaml:"name"`
	Magic uint32 `yaml:"magic,omitempty"`

	MinimumDifficultyBlocks *int32 `yaml:"minimumDifficultyBlocks,omitempty"`
	HighSubsidyBlocks       *int32 `yaml:"highSubsidyBlocks,omitempty"`
	HighSubsidyFactor       *int32 `yaml:"highSubsidyFactor,omitempty"`
}

func LoadDevNetProfile(path string) (*DevNetProfile, error) {
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading devnet profile %s", path)
	}

	profile := new(DevNetProfile)
	if err := yaml.UnmarshalStrict(raw, profile); err != nil {
		return nil, errors.Wrapf(err, "parsing devnet profile %s", path)
	}
	if profile.Name == "" {
		return nil, errcode.New(errcode.ErrorBadDevNetProfile)
	}

	return profile, nil
}

func (profile *DevNetProfile) Save(path string) error {
	raw, err := yaml.Marshal(profile)
	if err != nil {
		return errors.Wrapf(err, "encoding devnet profile %s", profile.Name)
	}
	return errors.Wrapf(ioutil.WriteFile(path, raw, 0644),
		"writing devnet profile to %s", path)
}

// NetMagic returns the profile's explicit message start, or one derived from
// the devnet name so that differently named devnets never talk to each other.
func (profile *DevNetProfile) NetMagic() uint32 {
	if profile.Magic != 0 {
		return profile.Magic
	}
	return DeriveDevNetMagic(profile.Name)
}

// DeriveDevNetMagic hashes the devnet name into a message start value.
func DeriveDevNetMagic(name string) uint32 {
	first := sha256.Sum256([]byte("devnet-" + name))
	second := sha256.Sum256(first[:])
	return binary.LittleEndian.Uint32(second[:4])
}

func (profile *DevNetProfile) Overrides() chainparams.DevNetOverrides {
	return chainparams.DevNetOverrides{
		MinimumDifficultyBlocks: profile.MinimumDifficultyBlocks,
		HighSubsidyBlocks:       profile.HighSubsidyBlocks,
		HighSubsidyFactor:       profile.HighSubsidyFactor,
	}
}

// Params builds, validates and registers the parameter table this profile
// describes.
func (profile *DevNetProfile) Params() (*chainparams.AlterdotParams, error) {
	if profile.Name == "" {
		return nil, errcode.New(errcode.ErrorBadDevNetProfile)
	}
	return chainparams.NewDevNetParams(profile.Name, profile.NetMagic(), profile.Overrides())
}
