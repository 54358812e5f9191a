package colour

import "errors"

var (
	ErrInvalidChromaticity = errors.New("invalid chromaticity")
	ErrInvalidWhitePoint   = errors.New("invalid white point")
	ErrUnknownColourspace  = errors.New("unknown colourspace")
	ErrUnknownIlluminant   = errors.New("unknown illuminant")
	ErrUnknownAdaptation   = errors.New("unknown chromatic adaptation transform")
)
