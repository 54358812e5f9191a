package testcommon

import (
	"testing"

	"github.com/kpfaulkner/colour-go/util"
	"github.com/stretchr/testify/assert"
)

// AssertMatrixInDelta compares element-wise and reports every entry that
// is out of tolerance.
func AssertMatrixInDelta(t *testing.T, expected util.Matrix3[float64], actual util.Matrix3[float64], delta float64) bool {
	t.Helper()
	ok := true
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if !assert.InDelta(t, expected[i][j], actual[i][j], delta, "element [%d][%d]", i, j) {
				ok = false
			}
		}
	}
	return ok
}

// AssertIdentity checks m is the identity within delta.
func AssertIdentity(t *testing.T, m util.Matrix3[float64], delta float64) bool {
	t.Helper()
	return AssertMatrixInDelta(t, util.MatrixIdentity[float64](), m, delta)
}

func AssertVectorInDelta(t *testing.T, expected util.Vector3[float64], actual util.Vector3[float64], delta float64) bool {
	t.Helper()
	ok := true
	for i := 0; i < 3; i++ {
		if !assert.InDelta(t, expected[i], actual[i], delta, "element [%d]", i) {
			ok = false
		}
	}
	return ok
}
