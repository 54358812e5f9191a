package colour

import (
	"errors"
	"testing"

	"github.com/kpfaulkner/colour-go/testcommon"
	"github.com/kpfaulkner/colour-go/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdaptWhitePoint(t *testing.T) {

	for _, tc := range []struct {
		name            string
		targetWP        CIEXY
		currentWP       CIEXY
		cat             ChromaticAdaptationTransform
		expectedResults Matrix3x3
		expectErr       bool
	}{
		{
			name:      "bradford D65 to D50",
			targetWP:  IlluminantD50,
			currentWP: IlluminantD65,
			cat:       Bradford,
			expectedResults: Matrix3x3{
				{1.04785428, 0.02290540, -0.05016512},
				{0.02956700, 0.99047957, -0.01706218},
				{-0.00924136, 0.01505470, 0.75195010},
			},
		},
		{
			name:            "same white point",
			targetWP:        IlluminantD65,
			currentWP:       IlluminantD65,
			cat:             VonKries,
			expectedResults: util.MatrixIdentity[float64](),
		},
		{
			name:      "xyz scaling",
			targetWP:  IlluminantE,
			currentWP: IlluminantD65,
			cat:       XYZScaling,
			expectedResults: util.DiagonalMatrix(Vector3{
				0.3290 / 0.3127,
				1,
				0.3290 / (1 - 0.3127 - 0.3290),
			}),
		},
		{
			name:      "invalid target",
			targetWP:  NewCIEXY(0.34577, 0),
			currentWP: IlluminantD65,
			cat:       Bradford,
			expectErr: true,
		},
		{
			name:      "invalid current",
			targetWP:  IlluminantD50,
			currentWP: NewCIEXY(0.3137, 0),
			cat:       Bradford,
			expectErr: true,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {

			res, err := AdaptWhitePoint(tc.targetWP, tc.currentWP, tc.cat)
			if tc.expectErr {
				assert.True(t, errors.Is(err, ErrInvalidWhitePoint), "got %v", err)
				return
			}
			require.NoError(t, err)
			testcommon.AssertMatrixInDelta(t, tc.expectedResults, res, 1e-7)
		})
	}
}

func TestAdaptWhitePointMapsWhite(t *testing.T) {
	for _, cat := range []ChromaticAdaptationTransform{Bradford, VonKries, XYZScaling} {
		t.Run(cat.String(), func(t *testing.T) {
			m, err := AdaptWhitePoint(IlluminantD50, IlluminantA, cat)
			require.NoError(t, err)

			source, err := XYToXYZ(IlluminantA)
			require.NoError(t, err)
			target, err := XYToXYZ(IlluminantD50)
			require.NoError(t, err)
			testcommon.AssertVectorInDelta(t, target, util.MatrixVectorMultiply(m, source), 1e-12)
		})
	}
}

func TestAdaptWhitePointUnknownTransform(t *testing.T) {
	_, err := AdaptWhitePoint(IlluminantD50, IlluminantD65, ChromaticAdaptationTransform(99))
	assert.True(t, errors.Is(err, ErrUnknownAdaptation))
}

func TestConversionMatrix(t *testing.T) {
	bt709, err := BT709()
	require.NoError(t, err)
	srgb, err := SRGB()
	require.NoError(t, err)
	aces, err := ACES20651()
	require.NoError(t, err)

	t.Run("same primaries and white", func(t *testing.T) {
		m, err := ConversionMatrix(bt709, srgb, Bradford)
		require.NoError(t, err)
		assert.Equal(t, util.MatrixIdentity[float64](), m)
	})

	t.Run("BT.709 to ACES2065-1", func(t *testing.T) {
		m, err := ConversionMatrix(bt709, aces, Bradford)
		require.NoError(t, err)
		testcommon.AssertMatrixInDelta(t, Matrix3x3{
			{0.43963298, 0.38298870, 0.17737832},
			{0.08977644, 0.81343943, 0.09678413},
			{0.01754117, 0.11154655, 0.87091228},
		}, m, 1e-7)

		// white stays white
		testcommon.AssertVectorInDelta(t, Vector3{1, 1, 1}, util.MatrixVectorMultiply(m, Vector3{1, 1, 1}), 1e-12)
	})

	t.Run("round trip", func(t *testing.T) {
		there, err := ConversionMatrix(bt709, aces, VonKries)
		require.NoError(t, err)
		back, err := ConversionMatrix(aces, bt709, VonKries)
		require.NoError(t, err)
		testcommon.AssertIdentity(t, util.MatrixMatrixMultiply(back, there), 1e-12)
	})

	t.Run("same white point, different primaries", func(t *testing.T) {
		smpte, err := SMPTE240M()
		require.NoError(t, err)
		m, err := ConversionMatrix(bt709, smpte, Bradford)
		require.NoError(t, err)
		expected := util.MatrixMatrixMultiply(smpte.XYZToRGB, bt709.RGBToXYZ)
		testcommon.AssertMatrixInDelta(t, expected, m, 1e-15)
	})
}

func TestParseChromaticAdaptationTransform(t *testing.T) {

	for _, tc := range []struct {
		input     string
		expected  ChromaticAdaptationTransform
		expectErr bool
	}{
		{input: "Bradford", expected: Bradford},
		{input: "", expected: Bradford},
		{input: "von kries", expected: VonKries},
		{input: "Von-Kries", expected: VonKries},
		{input: "XYZ_Scaling", expected: XYZScaling},
		{input: "CAT02", expectErr: true},
	} {
		t.Run(tc.input, func(t *testing.T) {
			cat, err := ParseChromaticAdaptationTransform(tc.input)
			if tc.expectErr {
				assert.True(t, errors.Is(err, ErrUnknownAdaptation))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, cat)
			assert.Equal(t, tc.expected, mustParse(t, cat.String()))
		})
	}
}

func mustParse(t *testing.T, s string) ChromaticAdaptationTransform {
	t.Helper()
	cat, err := ParseChromaticAdaptationTransform(s)
	require.NoError(t, err)
	return cat
}
