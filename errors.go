package Xifra

import "errors"

var (
	// ErrMalformedInput is returned when a bit sequence or a text does not fit
	// the width required by a codec conversion.
	ErrMalformedInput = errors.New("xifra: malformed input")

	// ErrUnknownKey is returned when an identifier is not present in a payload table.
	ErrUnknownKey = errors.New("xifra: unknown key")

	// ErrInvalidParameter is returned when an encryption is built from
	// an unusable block size, key or transform kind.
	ErrInvalidParameter = errors.New("xifra: invalid parameter")
)
