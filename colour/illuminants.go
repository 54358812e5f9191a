package colour

import (
	"sort"
	"strings"
)

// CIE 1931 2 degree standard observer illuminant chromaticities.
var (
	IlluminantA   = NewCIEXY(0.44757, 0.40745)
	IlluminantC   = NewCIEXY(0.31006, 0.31616)
	IlluminantD50 = NewCIEXY(0.34567, 0.35850)
	IlluminantD55 = NewCIEXY(0.33242, 0.34743)
	IlluminantD60 = NewCIEXY(0.32163, 0.33774)
	IlluminantD65 = NewCIEXY(0.3127, 0.3290)
	IlluminantD75 = NewCIEXY(0.29902, 0.31485)
	IlluminantE   = NewCIEXY(1.0/3.0, 1.0/3.0)

	// ACES white, close to but not exactly D60
	IlluminantACES = NewCIEXY(0.32168, 0.33767)
)

var illuminants = map[string]CIEXY{
	"A":    IlluminantA,
	"C":    IlluminantC,
	"D50":  IlluminantD50,
	"D55":  IlluminantD55,
	"D60":  IlluminantD60,
	"D65":  IlluminantD65,
	"D75":  IlluminantD75,
	"E":    IlluminantE,
	"ACES": IlluminantACES,
}

// Illuminant looks a chromaticity up by name, ignoring case.
func Illuminant(name string) (CIEXY, bool) {
	xy, ok := illuminants[strings.ToUpper(strings.TrimSpace(name))]
	return xy, ok
}

func IlluminantNames() []string {
	names := make([]string, 0, len(illuminants))
	for name := range illuminants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
