package enum

import "strings"

type Region string

const (
	RegionUSD Region = "usd"
	RegionCAD Region = "cad"
	RegionAUD Region = "aud"
)

// Regions is the order in which regional accounts are probed.
var Regions = []Region{RegionUSD, RegionCAD, RegionAUD}

func (r Region) String() string {
	return string(r)
}

func (r Region) Upper() string {
	return strings.ToUpper(string(r))
}

func (r Region) IsValid() bool {
	switch r {
	case RegionUSD, RegionCAD, RegionAUD:
		return true
	}
	return false
}
