package colour

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/kpfaulkner/colour-go/options"
	"github.com/kpfaulkner/colour-go/util"
)

var channelNames = [3]string{"R", "G", "B"}

// NormalisedPrimaryMatrix derives the matrix taking linear RGB in the
// colourspace defined by primaries and whitePoint to CIE XYZ. RGB (1, 1, 1)
// maps to the white point with Y = 1.
//
// Collinear or otherwise degenerate primaries fail with an error wrapping
// util.ErrSingularMatrix; a white point with y == 0 fails with
// ErrInvalidWhitePoint.
func NormalisedPrimaryMatrix(primaries CIEPrimaries, whitePoint CIEXY) (Matrix3x3, error) {
	w, err := XYToXYZ(whitePoint)
	if err != nil {
		return Matrix3x3{}, fmt.Errorf("%w %v: %w", ErrInvalidWhitePoint, whitePoint, err)
	}

	var xyz Matrix3x3
	for i, p := range primaries.asArray() {
		xyz[i] = Vector3{p.X, p.Y, XYToZ(p)}
	}

	// columns are now the primaries
	primariesMatrix := util.TransposeMatrix(xyz)
	scale, err := util.SolveVector3(primariesMatrix, w)
	if err != nil {
		return Matrix3x3{}, fmt.Errorf("primaries %v: %w", primaries, err)
	}

	return util.MatrixMatrixMultiply(primariesMatrix, util.DiagonalMatrix(scale)), nil
}

// InverseMatrix returns the XYZ to RGB matrix for an RGB to XYZ matrix.
func InverseMatrix(npm Matrix3x3) (Matrix3x3, error) {
	inverse, err := util.InvertMatrix3x3(npm)
	if err != nil {
		return Matrix3x3{}, fmt.Errorf("inverting %v: %w", npm, err)
	}
	return inverse, nil
}

// PrimariesWhitepoint recovers the primaries and white point an NPM was
// derived from.
func PrimariesWhitepoint(npm Matrix3x3) (CIEPrimaries, CIEXY, error) {
	if _, err := util.InvertMatrix3x3(npm); err != nil {
		return CIEPrimaries{}, CIEXY{}, fmt.Errorf("primaries of %v: %w", npm, err)
	}

	columns := util.TransposeMatrix(npm)
	primaries := NewCIEPrimaries(
		XYZToXY(columns[0]),
		XYZToXY(columns[1]),
		XYZToXY(columns[2]))
	white := XYZToXY(util.MatrixVectorMultiply(npm, Vector3{1, 1, 1}))
	return primaries, white, nil
}

// RGBLuminance returns the luminance Y of linear rgb in the colourspace
// defined by primaries and whitePoint.
func RGBLuminance(rgb Vector3, primaries CIEPrimaries, whitePoint CIEXY) (float64, error) {
	npm, err := NormalisedPrimaryMatrix(primaries, whitePoint)
	if err != nil {
		return 0, err
	}
	return npm[1][0]*rgb[0] + npm[1][1]*rgb[1] + npm[1][2]*rgb[2], nil
}

// LuminanceEquation renders the luminance row of the NPM as
// "Y = c_R(R) + c_G(G) + c_B(B)", using the shortest float formatting.
func LuminanceEquation(primaries CIEPrimaries, whitePoint CIEXY) (string, error) {
	return LuminanceEquationWithOptions(primaries, whitePoint, nil)
}

func LuminanceEquationWithOptions(primaries CIEPrimaries, whitePoint CIEXY, opts *options.EquationOptions) (string, error) {
	npm, err := NormalisedPrimaryMatrix(primaries, whitePoint)
	if err != nil {
		return "", err
	}
	return FormatLuminanceEquation(npm[1], opts), nil
}

// FormatLuminanceEquation prints the first coefficient with its sign and
// joins the rest with " + " or " - " followed by their magnitude.
func FormatLuminanceEquation(coefficients Vector3, opts *options.EquationOptions) string {
	opt := options.NewEquationOptions(opts)

	var sb strings.Builder
	sb.WriteString("Y = ")
	for i, c := range coefficients {
		if c == 0 {
			// drop the sign of negative zero
			c = 0
		}
		if i > 0 {
			sb.WriteString(util.IfThenElse(c < 0, " - ", " + "))
			c = math.Abs(c)
		}
		sb.WriteString(strconv.FormatFloat(c, opt.Notation, opt.Precision(), 64))
		sb.WriteString("(")
		sb.WriteString(channelNames[i])
		sb.WriteString(")")
	}
	return sb.String()
}
