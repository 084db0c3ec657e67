package transform

import (
	"Xifra"
	"Xifra/bitcodec"
	"math/big"
)

type addTransform struct{}

func (addTransform) Kind() Kind {
	return Add
}

// Encrypt block := (block + key) mod 2^width
func (addTransform) Encrypt(block Xifra.Bits, key *big.Int) Xifra.Bits {
	v := bitcodec.BitsToInt(block)
	return bitcodec.IntToBits(v.Add(v, key), len(block))
}

// Decrypt block := (block - key) mod 2^width
func (addTransform) Decrypt(block Xifra.Bits, key *big.Int) Xifra.Bits {
	v := bitcodec.BitsToInt(block)
	return bitcodec.IntToBits(v.Sub(v, key), len(block))
}
