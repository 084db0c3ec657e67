package transform

import (
	"Xifra"
	"Xifra/bitcodec"
	"math/big"
)

type xorTransform struct{}

func (xorTransform) Kind() Kind {
	return XOR
}

// Encrypt block := block ^ key, keeping the width of block.
// Key bits above the block width drop out.
func (xorTransform) Encrypt(block Xifra.Bits, key *big.Int) Xifra.Bits {
	v := bitcodec.BitsToInt(block)
	return bitcodec.IntToBits(v.Xor(v, key), len(block))
}

// Decrypt is the same operation as Encrypt
func (t xorTransform) Decrypt(block Xifra.Bits, key *big.Int) Xifra.Bits {
	return t.Encrypt(block, key)
}
