package colour

import (
	"fmt"
	"strings"
)

// Published primaries. Only literal data lives at package level; the
// derived colourspaces are built by the factories below when asked for.
var (
	PrimariesACESAP0 = PrimariesFromMatrix([3][2]float64{
		{0.73470, 0.26530},
		{0.00000, 1.00000},
		{0.00010, -0.07700},
	})

	PrimariesBT709 = PrimariesFromMatrix([3][2]float64{
		{0.640, 0.330},
		{0.300, 0.600},
		{0.150, 0.060},
	})

	PrimariesBT470525 = PrimariesFromMatrix([3][2]float64{
		{0.67, 0.33},
		{0.21, 0.71},
		{0.14, 0.08},
	})

	PrimariesBT470625 = PrimariesFromMatrix([3][2]float64{
		{0.64, 0.33},
		{0.29, 0.60},
		{0.15, 0.06},
	})

	// SMPTE 240M and SMPTE RP 145 (SMPTE-C) share primaries.
	PrimariesSMPTE240M = PrimariesFromMatrix([3][2]float64{
		{0.630, 0.340},
		{0.310, 0.595},
		{0.155, 0.070},
	})
)

const (
	NameACES20651 = "ACES2065-1"
	NameBT709     = "ITU-R BT.709"
	NameSRGB      = "sRGB"
	NameBT470525  = "ITU-R BT.470 - 525"
	NameBT470625  = "ITU-R BT.470 - 625"
	NameNTSC      = "NTSC"
	NameSMPTE240M = "SMPTE 240M"
	NameSMPTEC    = "SMPTE-C"
)

func ACES20651() (RGBColourspace, error) {
	return NewRGBColourspace(NameACES20651, PrimariesACESAP0, IlluminantACES, "ACES", "linear")
}

func BT709() (RGBColourspace, error) {
	return NewRGBColourspace(NameBT709, PrimariesBT709, IlluminantD65, "D65", "ITU-R BT.709")
}

func SRGB() (RGBColourspace, error) {
	return NewRGBColourspace(NameSRGB, PrimariesBT709, IlluminantD65, "D65", "sRGB")
}

func BT470525() (RGBColourspace, error) {
	return NewRGBColourspace(NameBT470525, PrimariesBT470525, IlluminantC, "C", "gamma 2.8")
}

func BT470625() (RGBColourspace, error) {
	return NewRGBColourspace(NameBT470625, PrimariesBT470625, IlluminantD65, "D65", "gamma 2.8")
}

// NTSC is ITU-R BT.470 System M (525 lines) under its own name.
func NTSC() (RGBColourspace, error) {
	cs, err := BT470525()
	if err != nil {
		return RGBColourspace{}, err
	}
	cs.Name = NameNTSC
	return cs, nil
}

func SMPTE240M() (RGBColourspace, error) {
	return NewRGBColourspace(NameSMPTE240M, PrimariesSMPTE240M, IlluminantD65, "D65", "SMPTE 240M")
}

func SMPTEC() (RGBColourspace, error) {
	return NewRGBColourspace(NameSMPTEC, PrimariesSMPTE240M, IlluminantD65, "D65", "gamma 2.2")
}

var datasetFactories = []struct {
	name    string
	factory func() (RGBColourspace, error)
}{
	{NameACES20651, ACES20651},
	{NameBT709, BT709},
	{NameSRGB, SRGB},
	{NameBT470525, BT470525},
	{NameBT470625, BT470625},
	{NameNTSC, NTSC},
	{NameSMPTE240M, SMPTE240M},
	{NameSMPTEC, SMPTEC},
}

func DatasetNames() []string {
	names := make([]string, 0, len(datasetFactories))
	for _, d := range datasetFactories {
		names = append(names, d.name)
	}
	return names
}

// Datasets builds every built-in colourspace, in DatasetNames order.
func Datasets() ([]RGBColourspace, error) {
	res := make([]RGBColourspace, 0, len(datasetFactories))
	for _, d := range datasetFactories {
		cs, err := d.factory()
		if err != nil {
			return nil, err
		}
		res = append(res, cs)
	}
	return res, nil
}

// Lookup builds the built-in colourspace with the given name, ignoring case.
func Lookup(name string) (RGBColourspace, error) {
	for _, d := range datasetFactories {
		if strings.EqualFold(d.name, strings.TrimSpace(name)) {
			return d.factory()
		}
	}
	return RGBColourspace{}, fmt.Errorf("%w %q", ErrUnknownColourspace, name)
}
