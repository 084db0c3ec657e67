package transform

import (
	"Xifra"
	"math/big"
)

// ShiftModulus bounds the rotation amount taken from a Shift key
const ShiftModulus = 512

type shiftTransform struct{}

func (shiftTransform) Kind() Kind {
	return Shift
}

// SimpleKey reduces a key of any width to a rotation amount in [0, ShiftModulus)
func SimpleKey(key *big.Int) int {
	return int(new(big.Int).Mod(key, big.NewInt(ShiftModulus)).Int64())
}

// Encrypt rotates bit positions right: out[i] = block[(i - k) mod width]
func (shiftTransform) Encrypt(block Xifra.Bits, key *big.Int) Xifra.Bits {
	out := block.Clone()
	if len(out) == 0 {
		return out
	}
	k := SimpleKey(key)
	Xifra.RotateSlice(out, uint64(Xifra.Mod(-k, len(out))))
	return out
}

// Decrypt rotates bit positions left: out[i] = block[(i + k) mod width]
func (shiftTransform) Decrypt(block Xifra.Bits, key *big.Int) Xifra.Bits {
	out := block.Clone()
	if len(out) == 0 {
		return out
	}
	k := SimpleKey(key)
	Xifra.RotateSlice(out, uint64(Xifra.Mod(k, len(out))))
	return out
}
