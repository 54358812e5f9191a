package colour

import (
	"fmt"
	"math"

	"github.com/kpfaulkner/colour-go/util"
)

type Vector3 = util.Vector3[float64]

// Matrix3x3 is row-major; an RGB to XYZ matrix has one column per primary.
type Matrix3x3 = util.Matrix3[float64]

// CIEXY is a CIE 1931 chromaticity coordinate.
type CIEXY struct {
	X float64
	Y float64
}

func NewCIEXY(x float64, y float64) CIEXY {
	return CIEXY{X: x, Y: y}
}

// Matches reports exact equality.
func (cxy CIEXY) Matches(other CIEXY) bool {
	return cxy.X == other.X && cxy.Y == other.Y
}

func (cxy CIEXY) String() string {
	return fmt.Sprintf("(%g, %g)", cxy.X, cxy.Y)
}

// XYToZ completes a chromaticity coordinate with z = 1 - x - y.
func XYToZ(xy CIEXY) float64 {
	return 1 - xy.X - xy.Y
}

// XYToXYZ returns the tristimulus values of xy normalised to Y = 1.
func XYToXYZ(xy CIEXY) (Vector3, error) {
	if math.IsNaN(xy.X) || math.IsInf(xy.X, 0) {
		return Vector3{}, fmt.Errorf("%w: x of %v", ErrInvalidChromaticity, xy)
	}
	if xy.Y == 0 || math.IsNaN(xy.Y) || math.IsInf(xy.Y, 0) {
		return Vector3{}, fmt.Errorf("%w: y of %v", ErrInvalidChromaticity, xy)
	}
	invY := 1.0 / xy.Y
	return Vector3{xy.X * invY, 1.0, XYToZ(xy) * invY}, nil
}

// XYZToXY projects tristimulus values onto the chromaticity diagram. Black
// (X+Y+Z == 0) has no chromaticity and maps to (0, 0).
func XYZToXY(xyz Vector3) CIEXY {
	sum := util.SumVector(xyz)
	if sum == 0 {
		return CIEXY{}
	}
	return CIEXY{X: xyz[0] / sum, Y: xyz[1] / sum}
}
