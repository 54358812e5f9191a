package colour

import (
	"fmt"

	"github.com/kpfaulkner/colour-go/options"
	"github.com/kpfaulkner/colour-go/util"
	log "github.com/sirupsen/logrus"
)

// RGBColourspace describes an RGB colourspace. It is a value type; copies
// share nothing.
type RGBColourspace struct {
	Name       string
	Primaries  CIEPrimaries
	Whitepoint CIEXY
	Illuminant string

	RGBToXYZ Matrix3x3
	XYZToRGB Matrix3x3

	// TransferFunction names the encoding curve, e.g. "SMPTE 240M". The
	// curve itself lives elsewhere.
	TransferFunction string
}

// NewRGBColourspace derives both conversion matrices from the primaries
// and white point.
func NewRGBColourspace(name string, primaries CIEPrimaries, whitepoint CIEXY, illuminant string, transferFunction string) (RGBColourspace, error) {
	rgbToXYZ, err := NormalisedPrimaryMatrix(primaries, whitepoint)
	if err != nil {
		return RGBColourspace{}, fmt.Errorf("colourspace %s: %w", name, err)
	}
	xyzToRGB, err := InverseMatrix(rgbToXYZ)
	if err != nil {
		return RGBColourspace{}, fmt.Errorf("colourspace %s: %w", name, err)
	}
	log.Debugf("derived colourspace %s: RGB to XYZ %v", name, rgbToXYZ)

	return RGBColourspace{
		Name:             name,
		Primaries:        primaries,
		Whitepoint:       whitepoint,
		Illuminant:       illuminant,
		RGBToXYZ:         rgbToXYZ,
		XYZToRGB:         xyzToRGB,
		TransferFunction: transferFunction,
	}, nil
}

// FromDefinition builds a colourspace from a loaded definition, resolving
// an illuminant name to its chromaticity.
func FromDefinition(def options.ColourspaceDefinition) (RGBColourspace, error) {
	if err := def.Validate(); err != nil {
		return RGBColourspace{}, err
	}

	var whitepoint CIEXY
	if def.Illuminant != "" {
		xy, ok := Illuminant(def.Illuminant)
		if !ok {
			return RGBColourspace{}, fmt.Errorf("colourspace %s: %w %q", def.Name, ErrUnknownIlluminant, def.Illuminant)
		}
		whitepoint = xy
	} else {
		whitepoint = NewCIEXY(def.Whitepoint[0], def.Whitepoint[1])
	}

	return NewRGBColourspace(def.Name, PrimariesFromMatrix(def.PrimariesMatrix()), whitepoint, def.Illuminant, def.Transfer)
}

// ToXYZ converts linear RGB to CIE XYZ.
func (cs RGBColourspace) ToXYZ(rgb Vector3) Vector3 {
	return util.MatrixVectorMultiply(cs.RGBToXYZ, rgb)
}

// FromXYZ converts CIE XYZ to linear RGB. Out of gamut values are not
// clipped.
func (cs RGBColourspace) FromXYZ(xyz Vector3) Vector3 {
	return util.MatrixVectorMultiply(cs.XYZToRGB, xyz)
}

func (cs RGBColourspace) Luminance(rgb Vector3) float64 {
	return cs.ToXYZ(rgb)[1]
}

func (cs RGBColourspace) LuminanceEquation(opts *options.EquationOptions) string {
	return FormatLuminanceEquation(cs.RGBToXYZ[1], opts)
}

func (cs RGBColourspace) String() string {
	return cs.Name
}
