package schedule

import (
	"fmt"
	"math/big"

	"github.com/fxamacker/cbor/v2"
	"golang.org/x/crypto/sha3"
)

// FingerprintSize is the length of a schedule fingerprint in bytes
const FingerprintSize = 32

type stepRecord struct {
	_         struct{} `cbor:",toarray"`
	Kind      int
	BlockSize int
	Key       *big.Int
}

// Fingerprint digests the schedule parameters with SHAKE256 over their
// canonical CBOR encoding. Two passphrases share a fingerprint exactly when
// they derive the same schedule.
func (s Schedule) Fingerprint() ([]byte, error) {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		return nil, fmt.Errorf("fingerprint: %w", err)
	}

	records := make([]stepRecord, len(s))
	for i, p := range s.Params() {
		records[i] = stepRecord{
			Kind:      int(p.GetKind()),
			BlockSize: p.GetBlockSize(),
			Key:       p.GetKey(),
		}
	}
	blob, err := em.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("fingerprint: %w", err)
	}

	shake := sha3.NewShake256()
	if _, err := shake.Write(blob); err != nil {
		return nil, fmt.Errorf("fingerprint: %w", err)
	}
	sum := make([]byte, FingerprintSize)
	if _, err := shake.Read(sum); err != nil {
		return nil, fmt.Errorf("fingerprint: %w", err)
	}
	return sum, nil
}
