package options

import (
	"fmt"
	"strings"
)

const (
	NotationGeneral    byte = 'g'
	NotationFixed      byte = 'f'
	NotationScientific byte = 'e'
)

// EquationOptions controls how luminance equation coefficients are printed.
// Digits is the strconv precision for the chosen notation; zero or less
// gives the shortest representation that round-trips.
type EquationOptions struct {
	Notation byte
	Digits   int
}

func NewEquationOptions(options *EquationOptions) *EquationOptions {

	opt := &EquationOptions{Notation: NotationGeneral}
	if options != nil {
		if ValidNotation(options.Notation) {
			opt.Notation = options.Notation
		}
		opt.Digits = options.Digits
	}
	return opt
}

// Precision is the precision argument for strconv.FormatFloat.
func (eo *EquationOptions) Precision() int {
	if eo.Digits <= 0 {
		return -1
	}
	return eo.Digits
}

func ValidNotation(notation byte) bool {
	return notation == NotationGeneral || notation == NotationFixed || notation == NotationScientific
}

// ParseNotation accepts the strconv verbs or their long names.
func ParseNotation(s string) (byte, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "g", "general":
		return NotationGeneral, nil
	case "f", "fixed", "decimal":
		return NotationFixed, nil
	case "e", "scientific":
		return NotationScientific, nil
	}
	return 0, fmt.Errorf("unknown notation %q", s)
}
