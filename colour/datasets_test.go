package colour

import (
	"errors"
	"testing"

	"github.com/kpfaulkner/colour-go/options"
	"github.com/kpfaulkner/colour-go/testcommon"
	"github.com/kpfaulkner/colour-go/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatasets(t *testing.T) {
	datasets, err := Datasets()
	require.NoError(t, err)
	require.Len(t, datasets, len(DatasetNames()))

	for i, cs := range datasets {
		t.Run(cs.Name, func(t *testing.T) {
			assert.Equal(t, DatasetNames()[i], cs.Name)
			testcommon.AssertIdentity(t, util.MatrixMatrixMultiply(cs.RGBToXYZ, cs.XYZToRGB), 1e-12)
			assert.InDelta(t, 1.0, util.SumVector(cs.RGBToXYZ[1]), 1e-12, "luminance row should sum to 1")
			assert.NotEmpty(t, cs.TransferFunction)

			white, ok := Illuminant(cs.Illuminant)
			require.True(t, ok, "illuminant %q", cs.Illuminant)
			assert.True(t, white.Matches(cs.Whitepoint))
		})
	}
}

func TestSMPTE240M(t *testing.T) {
	cs, err := SMPTE240M()
	require.NoError(t, err)

	assert.Equal(t, "SMPTE 240M", cs.Name)
	assert.Equal(t, "D65", cs.Illuminant)
	assert.Equal(t, "SMPTE 240M", cs.TransferFunction)
	testcommon.AssertMatrixInDelta(t, Matrix3x3{
		{0.39352090, 0.36525808, 0.19167695},
		{0.21237636, 0.70105986, 0.08656378},
		{0.01873909, 0.11193393, 0.95838473},
	}, cs.RGBToXYZ, 1e-7)
	testcommon.AssertMatrixInDelta(t, Matrix3x3{
		{3.50600328, -1.73979073, -0.54405827},
		{-1.06904756, 1.97777888, 0.03517142},
		{0.05630659, -0.19697565, 1.04995233},
	}, cs.XYZToRGB, 1e-7)
}

func TestNTSC(t *testing.T) {
	ntsc, err := NTSC()
	require.NoError(t, err)
	bt470, err := BT470525()
	require.NoError(t, err)

	assert.Equal(t, "NTSC", ntsc.Name)
	assert.Equal(t, "ITU-R BT.470 - 525", bt470.Name)
	assert.Equal(t, bt470.RGBToXYZ, ntsc.RGBToXYZ)
	assert.Equal(t, bt470.XYZToRGB, ntsc.XYZToRGB)
	assert.True(t, ntsc.Whitepoint.Matches(IlluminantC))
	testcommon.AssertMatrixInDelta(t, Matrix3x3{
		{1.91008143, -0.53247794, -0.28822201},
		{-0.98463135, 1.99910001, -0.02830719},
		{0.05830945, -0.11838584, 0.89761208},
	}, ntsc.XYZToRGB, 1e-7)
}

func TestFactoriesReturnIndependentValues(t *testing.T) {
	a, err := SMPTEC()
	require.NoError(t, err)
	a.RGBToXYZ[0][0] = 42

	b, err := SMPTEC()
	require.NoError(t, err)
	assert.NotEqual(t, 42.0, b.RGBToXYZ[0][0])
}

func TestLookup(t *testing.T) {

	for _, tc := range []struct {
		name         string
		query        string
		expectedName string
		expectErr    bool
	}{
		{name: "exact", query: "SMPTE 240M", expectedName: NameSMPTE240M},
		{name: "case insensitive", query: "ntsc", expectedName: NameNTSC},
		{name: "padded", query: "  aces2065-1 ", expectedName: NameACES20651},
		{name: "unknown", query: "ProPhoto", expectErr: true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			cs, err := Lookup(tc.query)
			if tc.expectErr {
				assert.True(t, errors.Is(err, ErrUnknownColourspace), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedName, cs.Name)
		})
	}
}

func TestColourspaceConversions(t *testing.T) {
	cs, err := BT709()
	require.NoError(t, err)

	rgb := Vector3{0.25, 0.5, 0.75}
	testcommon.AssertVectorInDelta(t, rgb, cs.FromXYZ(cs.ToXYZ(rgb)), 1e-12)
	assert.InDelta(t, 0.21263901*0.25+0.71516868*0.5+0.07219232*0.75, cs.Luminance(rgb), 1e-7)

	assert.Equal(t, "Y = 0.2126(R) + 0.7152(G) + 0.0722(B)",
		cs.LuminanceEquation(&options.EquationOptions{Notation: options.NotationFixed, Digits: 4}))
	assert.Equal(t, NameBT709, cs.String())
}

func TestNewRGBColourspaceErrors(t *testing.T) {
	_, err := NewRGBColourspace("broken", CIEPrimaries{}, IlluminantD65, "D65", "linear")
	assert.True(t, errors.Is(err, util.ErrSingularMatrix))
	assert.Contains(t, err.Error(), "broken")
}

func TestFromDefinition(t *testing.T) {

	for _, tc := range []struct {
		name          string
		def           options.ColourspaceDefinition
		expectedWhite CIEXY
		expectErr     error
	}{
		{
			name: "illuminant",
			def: options.ColourspaceDefinition{
				Name:       "mine",
				Primaries:  [][]float64{{0.64, 0.33}, {0.30, 0.60}, {0.15, 0.06}},
				Illuminant: "d65",
				Transfer:   "gamma 2.4",
			},
			expectedWhite: IlluminantD65,
		},
		{
			name: "whitepoint",
			def: options.ColourspaceDefinition{
				Name:       "mine",
				Primaries:  [][]float64{{0.64, 0.33}, {0.30, 0.60}, {0.15, 0.06}},
				Whitepoint: []float64{0.314, 0.351},
			},
			expectedWhite: NewCIEXY(0.314, 0.351),
		},
		{
			name: "unknown illuminant",
			def: options.ColourspaceDefinition{
				Name:       "mine",
				Primaries:  [][]float64{{0.64, 0.33}, {0.30, 0.60}, {0.15, 0.06}},
				Illuminant: "F11",
			},
			expectErr: ErrUnknownIlluminant,
		},
		{
			name: "bad shape",
			def: options.ColourspaceDefinition{
				Name:       "mine",
				Primaries:  [][]float64{{0.64, 0.33}},
				Illuminant: "D65",
			},
			expectErr: options.ErrInvalidDefinition,
		},
		{
			name: "degenerate",
			def: options.ColourspaceDefinition{
				Name:       "mine",
				Primaries:  [][]float64{{0.1, 0.1}, {0.2, 0.2}, {0.3, 0.3}},
				Illuminant: "D65",
			},
			expectErr: util.ErrSingularMatrix,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			cs, err := FromDefinition(tc.def)
			if tc.expectErr != nil {
				assert.True(t, errors.Is(err, tc.expectErr), "expected %v, got %v", tc.expectErr, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.def.Name, cs.Name)
			assert.True(t, tc.expectedWhite.Matches(cs.Whitepoint))
			assert.True(t, cs.Primaries.Matches(PrimariesBT709))
		})
	}
}

func TestIlluminants(t *testing.T) {
	xy, ok := Illuminant("d50")
	assert.True(t, ok)
	assert.Equal(t, IlluminantD50, xy)

	_, ok = Illuminant("F2")
	assert.False(t, ok)

	assert.Equal(t, []string{"A", "ACES", "C", "D50", "D55", "D60", "D65", "D75", "E"}, IlluminantNames())
}
