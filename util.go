package Xifra

import (
	"fmt"

	"github.com/tuneinsight/lattigo/v4/utils/sampling"
)

// Mod returns x modulo m in [0, m), also for negative x
func Mod(x, m int) int {
	return (x%m + m) % m
}

// RotateSlice rotates a slice to the left by a given offset,
// so that slice[i] ends up holding the old slice[(i+offset) % len]
func RotateSlice(slice Bits, offset uint64) {
	l := len(slice)
	if l == 0 {
		return
	}

	// Normalize offset to be within the slice's length
	offset %= uint64(l)
	// Rotate the slice elements
	Reverse(slice[:offset])
	Reverse(slice[offset:])
	Reverse(slice)
}

// Reverse to reverse a slice
func Reverse(slice Bits) {
	for i, j := 0, len(slice)-1; i < j; i, j = i+1, j-1 {
		slice[i], slice[j] = slice[j], slice[i]
	}
}

// RandomTextGen generates n texts of the given length whose code points are
// all below 256. The output is fully determined by seed, so tests using it
// are reproducible.
func RandomTextGen(seed []byte, n int, length int) (texts []string, err error) {
	prng, err := sampling.NewKeyedPRNG(seed)
	if err != nil {
		return nil, fmt.Errorf("random text: %w", err)
	}
	buf := make([]byte, length)
	texts = make([]string, n)
	for s := 0; s < n; s++ {
		if _, err = prng.Read(buf); err != nil {
			return nil, fmt.Errorf("random text: %w", err)
		}
		runes := make([]rune, length)
		for i, b := range buf {
			runes[i] = rune(b)
		}
		texts[s] = string(runes)
	}
	return texts, nil
}
