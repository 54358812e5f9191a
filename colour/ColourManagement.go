package colour

import (
	"fmt"
	"strings"

	"github.com/kpfaulkner/colour-go/util"
)

type ChromaticAdaptationTransform int

const (
	Bradford ChromaticAdaptationTransform = iota
	VonKries
	XYZScaling
)

var (
	BRADFORD = Matrix3x3{
		{0.8951, 0.2664, -0.1614},
		{-0.7502, 1.7135, 0.0367},
		{0.0389, -0.0685, 1.0296},
	}

	VON_KRIES = Matrix3x3{
		{0.40024, 0.7076, -0.08081},
		{-0.2263, 1.16532, 0.0457},
		{0.0, 0.0, 0.91822},
	}
)

func (cat ChromaticAdaptationTransform) String() string {
	switch cat {
	case Bradford:
		return "bradford"
	case VonKries:
		return "vonkries"
	case XYZScaling:
		return "xyzscaling"
	}
	return fmt.Sprintf("ChromaticAdaptationTransform(%d)", int(cat))
}

func ParseChromaticAdaptationTransform(s string) (ChromaticAdaptationTransform, error) {
	switch strings.ToLower(strings.NewReplacer(" ", "", "-", "", "_", "").Replace(s)) {
	case "bradford", "":
		return Bradford, nil
	case "vonkries":
		return VonKries, nil
	case "xyzscaling":
		return XYZScaling, nil
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownAdaptation, s)
}

func (cat ChromaticAdaptationTransform) matrix() (Matrix3x3, error) {
	switch cat {
	case Bradford:
		return BRADFORD, nil
	case VonKries:
		return VON_KRIES, nil
	case XYZScaling:
		return util.MatrixIdentity[float64](), nil
	}
	return Matrix3x3{}, fmt.Errorf("%w %v", ErrUnknownAdaptation, cat)
}

// AdaptWhitePoint returns the XYZ to XYZ matrix moving colours seen under
// currentWP to their appearance under targetWP.
func AdaptWhitePoint(targetWP CIEXY, currentWP CIEXY, cat ChromaticAdaptationTransform) (Matrix3x3, error) {
	m, err := cat.matrix()
	if err != nil {
		return Matrix3x3{}, err
	}
	inverse, err := util.InvertMatrix3x3(m)
	if err != nil {
		return Matrix3x3{}, err
	}

	w1, err := XYToXYZ(currentWP)
	if err != nil {
		return Matrix3x3{}, fmt.Errorf("%w %v: %w", ErrInvalidWhitePoint, currentWP, err)
	}
	w2, err := XYToXYZ(targetWP)
	if err != nil {
		return Matrix3x3{}, fmt.Errorf("%w %v: %w", ErrInvalidWhitePoint, targetWP, err)
	}

	lms1 := util.MatrixVectorMultiply(m, w1)
	lms2 := util.MatrixVectorMultiply(m, w2)
	var ratio Vector3
	for i := 0; i < 3; i++ {
		if lms1[i] == 0 {
			return Matrix3x3{}, fmt.Errorf("%w %v: zero cone response", ErrInvalidWhitePoint, currentWP)
		}
		ratio[i] = lms2[i] / lms1[i]
	}

	return util.MatrixMultiply(inverse, util.DiagonalMatrix(ratio), m), nil
}

// ConversionMatrix returns the linear RGB to linear RGB matrix from one
// colourspace to another, adapting white points with cat when they differ.
func ConversionMatrix(from RGBColourspace, to RGBColourspace, cat ChromaticAdaptationTransform) (Matrix3x3, error) {
	if from.Primaries.Matches(to.Primaries) && from.Whitepoint.Matches(to.Whitepoint) {
		return util.MatrixIdentity[float64](), nil
	}

	adapt := util.MatrixIdentity[float64]()
	if !from.Whitepoint.Matches(to.Whitepoint) {
		var err error
		if adapt, err = AdaptWhitePoint(to.Whitepoint, from.Whitepoint, cat); err != nil {
			return Matrix3x3{}, err
		}
	}

	return util.MatrixMultiply(to.XYZToRGB, adapt, from.RGBToXYZ), nil
}
