package transform

import (
	"Xifra"
	"math/big"
)

// TestContext is one known-answer vector for a block transform
type TestContext struct {
	kind      Kind
	key       *big.Int
	block     Xifra.Bits
	encrypted Xifra.Bits
}

var testVector = []TestContext{
	{
		// 0100 ^ (703 mod 16 = 1111)
		kind:      XOR,
		key:       big.NewInt(703),
		block:     Xifra.Bits{0, 1, 0, 0},
		encrypted: Xifra.Bits{1, 0, 1, 1},
	},
	{
		kind:      XOR,
		key:       big.NewInt(0),
		block:     Xifra.Bits{1, 0, 1},
		encrypted: Xifra.Bits{1, 0, 1},
	},
	{
		// (9 + 689) mod 32 = 26
		kind:      Add,
		key:       big.NewInt(689),
		block:     Xifra.Bits{0, 1, 0, 0, 1},
		encrypted: Xifra.Bits{1, 1, 0, 1, 0},
	},
	{
		// short block: (1 + 689) mod 4 = 2
		kind:      Add,
		key:       big.NewInt(689),
		block:     Xifra.Bits{0, 1},
		encrypted: Xifra.Bits{1, 0},
	},
	{
		kind:      Shift,
		key:       big.NewInt(1),
		block:     Xifra.Bits{1, 0, 0, 0, 0},
		encrypted: Xifra.Bits{0, 1, 0, 0, 0},
	},
	{
		// 514 mod 512 = 2, rotation modulo the short width 3
		kind:      Shift,
		key:       big.NewInt(514),
		block:     Xifra.Bits{1, 1, 0},
		encrypted: Xifra.Bits{1, 0, 1},
	},
}
