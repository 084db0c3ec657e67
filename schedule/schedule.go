// Package schedule derives the ordered list of encryptions a passphrase stands for.
package schedule

import (
	"Xifra"
	"Xifra/encryption"
	"Xifra/transform"
	"fmt"
	"math/big"
)

const (
	// DefaultBlockSize is used when the passphrase has an odd number of letters
	DefaultBlockSize = 8
	// blockSizeOffset is added to the letter that gives the block size
	blockSizeOffset = 4
	// keyOffset is added to the letter that gives the key
	keyOffset = 1
)

// Schedule is the ordered list of encryptions derived from one passphrase.
// Encrypt walks it forwards, Decrypt backwards.
type Schedule []encryption.Encryption

// Derive builds the schedule for passphrase. Letters are consumed two at
// a time: the first gives the key, the second the block size, and the
// transform kind cycles through XOR, Add and Shift by position. A
// passphrase without usable letters yields an empty schedule.
func Derive(passphrase string) (Schedule, error) {
	return DeriveWithLogger(passphrase, Xifra.NewLogger(Xifra.DEBUG))
}

// DeriveWithLogger is Derive with the logger handed to every step, so the
// steps trace their block passes to it
func DeriveWithLogger(passphrase string, logger Xifra.Logger) (Schedule, error) {
	keys, err := Normalize(passphrase)
	if err != nil {
		return nil, err
	}
	logger.PrintMessages("passphrase letters: ", len(keys))

	sched := make(Schedule, 0, (len(keys)+1)/2)
	for i := 0; i < len(keys); i += 2 {
		key := int64(keys[i]) + keyOffset
		size := DefaultBlockSize
		if i+1 < len(keys) {
			size = int(keys[i+1]) + blockSizeOffset
		}
		kind := transform.Kinds[(i/2)%len(transform.Kinds)]
		if kind != transform.Shift {
			// XOR and Add work on 4 to 11 bit blocks
			key = 3 + key*7
			size = 4 + size%8
		}

		enc, err := encryption.NewWithLogger(encryption.Parameter{
			Kind:      kind,
			BlockSize: size,
			Key:       big.NewInt(key),
		}, logger)
		if err != nil {
			return nil, fmt.Errorf("derive schedule: step %d: %w", i/2, err)
		}
		logger.PrintFormatted("schedule step %d: %s", i/2, enc)
		sched = append(sched, enc)
	}
	return sched, nil
}

// Encrypt applies every encryption in order
func (s Schedule) Encrypt(bits Xifra.Bits) Xifra.Bits {
	for _, enc := range s {
		bits = enc.Encrypt(bits)
	}
	return bits
}

// Decrypt applies every decryption in reverse order
func (s Schedule) Decrypt(bits Xifra.Bits) Xifra.Bits {
	for i := len(s) - 1; i >= 0; i-- {
		bits = s[i].Decrypt(bits)
	}
	return bits
}

// Params returns the parameters of every step, in order
func (s Schedule) Params() []encryption.Parameter {
	params := make([]encryption.Parameter, len(s))
	for i, enc := range s {
		params[i] = enc.Params()
	}
	return params
}
