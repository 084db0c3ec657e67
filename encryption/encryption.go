// Package encryption applies one block transform blockwise over a bit
// sequence of any length.
package encryption

import (
	"Xifra"
	"Xifra/transform"
	"fmt"
	"math/big"
)

type Encryption interface {
	// Encrypt splits bits into BlockSize chunks, the last one possibly
	// shorter, and encrypts each chunk on its own
	Encrypt(bits Xifra.Bits) Xifra.Bits
	// Decrypt undoes Encrypt for bits of every length
	Decrypt(bits Xifra.Bits) Xifra.Bits
	Params() Parameter
	String() string
}

type encryption struct {
	params Parameter
	tr     transform.BlockTransform
	logger Xifra.Logger
}

// New returns an Encryption for params, or an error wrapping
// Xifra.ErrInvalidParameter when params cannot be used.
func New(params Parameter) (Encryption, error) {
	return NewWithLogger(params, Xifra.NewLogger(Xifra.DEBUG))
}

// NewWithLogger is New with the logger that traces every Encrypt and Decrypt
func NewWithLogger(params Parameter, logger Xifra.Logger) (Encryption, error) {
	if params.BlockSize < 1 {
		return nil, fmt.Errorf("encryption: block size %d: %w", params.BlockSize, Xifra.ErrInvalidParameter)
	}
	if params.Key == nil || params.Key.Sign() < 0 {
		return nil, fmt.Errorf("encryption: key %v: %w", params.Key, Xifra.ErrInvalidParameter)
	}
	tr, err := transform.ForKind(params.Kind)
	if err != nil {
		return nil, fmt.Errorf("encryption: %w", err)
	}
	// keep our own copy so the caller cannot change the key afterwards
	params.Key = params.GetKey()
	return &encryption{params: params, tr: tr, logger: logger}, nil
}

func (enc *encryption) Params() Parameter {
	p := enc.params
	p.Key = enc.params.GetKey()
	return p
}

func (enc *encryption) String() string {
	return fmt.Sprintf("%s/size=%d/key=%s", enc.params.Kind, enc.params.BlockSize, enc.params.Key)
}

func (enc *encryption) Encrypt(bits Xifra.Bits) Xifra.Bits {
	return enc.crypt(bits, enc.tr.Encrypt)
}

func (enc *encryption) Decrypt(bits Xifra.Bits) Xifra.Bits {
	return enc.crypt(bits, enc.tr.Decrypt)
}

type action func(block Xifra.Bits, key *big.Int) Xifra.Bits

func (enc *encryption) crypt(bits Xifra.Bits, act action) Xifra.Bits {
	size := enc.params.GetBlockSize()
	numBlock := (len(bits) + size - 1) / size
	enc.logger.PrintFormatted("%s: number of blocks: %d", enc, numBlock)

	out := make(Xifra.Bits, 0, len(bits))
	for b := 0; b < numBlock; b++ {
		end := (b + 1) * size
		if end > len(bits) {
			end = len(bits)
		}
		out = append(out, act(bits[b*size:end], enc.params.Key)...)
	}
	return out
}
