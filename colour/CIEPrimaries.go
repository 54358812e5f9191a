package colour

import "fmt"

// CIEPrimaries holds the red, green and blue chromaticities of an RGB
// colourspace, in that order.
type CIEPrimaries struct {
	Red   CIEXY
	Green CIEXY
	Blue  CIEXY
}

func NewCIEPrimaries(red CIEXY, green CIEXY, blue CIEXY) CIEPrimaries {
	return CIEPrimaries{Red: red, Green: green, Blue: blue}
}

// PrimariesFromMatrix reads a row-major 3x2 matrix, one (x, y) row per
// primary.
func PrimariesFromMatrix(m [3][2]float64) CIEPrimaries {
	return CIEPrimaries{
		Red:   NewCIEXY(m[0][0], m[0][1]),
		Green: NewCIEXY(m[1][0], m[1][1]),
		Blue:  NewCIEXY(m[2][0], m[2][1]),
	}
}

func (cp CIEPrimaries) Matrix() [3][2]float64 {
	return [3][2]float64{
		{cp.Red.X, cp.Red.Y},
		{cp.Green.X, cp.Green.Y},
		{cp.Blue.X, cp.Blue.Y},
	}
}

func (cp CIEPrimaries) asArray() [3]CIEXY {
	return [3]CIEXY{cp.Red, cp.Green, cp.Blue}
}

func (cp CIEPrimaries) Matches(other CIEPrimaries) bool {
	return cp.Red.Matches(other.Red) && cp.Green.Matches(other.Green) && cp.Blue.Matches(other.Blue)
}

func (cp CIEPrimaries) String() string {
	return fmt.Sprintf("R%v G%v B%v", cp.Red, cp.Green, cp.Blue)
}
