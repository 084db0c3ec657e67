// Package transform implements the three invertible block transforms:
// bitwise XOR, modular addition and cyclic rotation of bit positions.
package transform

import (
	"Xifra"
	"fmt"
	"math/big"
)

// Kind selects one of the block transforms
type Kind int

const (
	XOR Kind = iota
	Add
	Shift
)

// Kinds lists every transform in the order the key schedule cycles through them
var Kinds = [...]Kind{XOR, Add, Shift}

func (k Kind) String() string {
	switch k {
	case XOR:
		return "XOR"
	case Add:
		return "Add"
	case Shift:
		return "Shift"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Valid reports whether k names a known transform
func (k Kind) Valid() bool {
	return k >= XOR && k <= Shift
}

// BlockTransform transforms one block of bits under a key. The block width
// is the length of the given block, so a short final block is handled like
// any other. Decrypt(Encrypt(block, key), key) returns block for every key.
// Neither method modifies its input.
type BlockTransform interface {
	Encrypt(block Xifra.Bits, key *big.Int) Xifra.Bits
	Decrypt(block Xifra.Bits, key *big.Int) Xifra.Bits
	Kind() Kind
}

// ForKind returns the BlockTransform implementing k
func ForKind(k Kind) (BlockTransform, error) {
	switch k {
	case XOR:
		return xorTransform{}, nil
	case Add:
		return addTransform{}, nil
	case Shift:
		return shiftTransform{}, nil
	default:
		return nil, fmt.Errorf("transform: unknown kind %v: %w", k, Xifra.ErrInvalidParameter)
	}
}
