// Package bitcodec converts between text, bit sequences and integers.
//
// Every conversion is most significant bit first and works on a fixed
// output width; integers are reduced modulo 2^width before being emitted.
package bitcodec

import (
	"Xifra"
	"fmt"
	"math/big"
)

// CharSize is the number of bits each code point occupies
const CharSize = 8

// MaxCodePoint is the largest code point that fits in CharSize bits
const MaxCodePoint = 1<<CharSize - 1

// TextToBits encodes every code point of text as a CharSize-bit block.
// Code points above MaxCodePoint are rejected.
func TextToBits(text string) (Xifra.Bits, error) {
	bits := make(Xifra.Bits, 0, CharSize*len(text))
	pos := 0
	for _, r := range text {
		if r < 0 || r > MaxCodePoint {
			return nil, fmt.Errorf("text to bits: code point %U at position %d does not fit in %d bits: %w",
				r, pos, CharSize, Xifra.ErrMalformedInput)
		}
		bits = append(bits, IntToBitsShort(int(r), CharSize)...)
		pos++
	}
	return bits, nil
}

// BitsToText decodes CharSize-bit blocks into code points.
// The length of bits has to be a multiple of CharSize.
func BitsToText(bits Xifra.Bits) (string, error) {
	if len(bits)%CharSize != 0 {
		return "", fmt.Errorf("bits to text: length %d is not a multiple of %d: %w",
			len(bits), CharSize, Xifra.ErrMalformedInput)
	}
	if err := Validate(bits); err != nil {
		return "", fmt.Errorf("bits to text: %w", err)
	}
	runes := make([]rune, 0, len(bits)/CharSize)
	for i := 0; i < len(bits); i += CharSize {
		runes = append(runes, rune(BitsToIntShort(bits[i:i+CharSize])))
	}
	return string(runes), nil
}

// Validate checks that every element of bits is 0 or 1
func Validate(bits Xifra.Bits) error {
	for i, b := range bits {
		if b > 1 {
			return fmt.Errorf("element %d holds %d, not a bit: %w", i, b, Xifra.ErrMalformedInput)
		}
	}
	return nil
}

// IntToBits returns the size lowest bits of x. Negative values wrap
// around, so the result always encodes x mod 2^size.
func IntToBits(x *big.Int, size int) Xifra.Bits {
	bits := make(Xifra.Bits, size)
	if size == 0 {
		return bits
	}
	modulus := new(big.Int).Lsh(big.NewInt(1), uint(size))
	v := new(big.Int).Mod(x, modulus)
	for i := 0; i < size; i++ {
		bits[size-1-i] = uint8(v.Bit(i))
	}
	return bits
}

// BitsToInt reads bits as an unsigned integer
func BitsToInt(bits Xifra.Bits) *big.Int {
	v := new(big.Int)
	for i, b := range bits {
		v.SetBit(v, len(bits)-1-i, uint(b&1))
	}
	return v
}

// IntToBitsShort is the machine-width twin of IntToBits, for size <= 31
func IntToBitsShort(x int, size int) Xifra.Bits {
	bits := make(Xifra.Bits, size)
	for i := size - 1; i >= 0; i-- {
		bits[i] = uint8(Xifra.Mod(x, 2))
		x = floorDiv2(x)
	}
	return bits
}

// BitsToIntShort is the machine-width twin of BitsToInt, for len(bits) <= 31
func BitsToIntShort(bits Xifra.Bits) int {
	v := 0
	for _, b := range bits {
		v = v*2 + int(b&1)
	}
	return v
}

func floorDiv2(x int) int {
	if x < 0 && x%2 != 0 {
		return x/2 - 1
	}
	return x / 2
}
