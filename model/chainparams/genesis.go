package chainparams

import (
	"github.com/Zero-Dynamics/Alterdot/util"
)

// little endian
var (
	GenesisBlockHash       = *util.HashFromString("00000bafbc94add76cb75e2ec92894837288a481e5c005f6563d91623bf8bc2c")
	TestNetGenesisHash     = *util.HashFromString("00000d94c9029c4b6bb1d007c345344cd24d0094e4f29b25632c97430f239d88")
	DevNetGenesisHash      = *util.HashFromString("0000029f010186ae9c29a85308b0cdbf50cb97b7ebd5a4a2cac11c8973e36cd0")
	RegTestGenesisHash     = *util.HashFromString("28e24cbfe16a21d9decaa5a6bd0eff0bcfae27498364a22a8710b11cfbf38cc4")
)
