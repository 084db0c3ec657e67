package encryption

import (
	"Xifra/transform"
	"math/big"
)

// Parameter for one Encryption: which transform, the nominal block size
// in bits and the key handed to the transform
type Parameter struct {
	Kind      transform.Kind
	BlockSize int
	Key       *big.Int
}

// GetKind returns the transform kind
func (params Parameter) GetKind() transform.Kind {
	return params.Kind
}

// GetBlockSize returns the nominal block size in bits
func (params Parameter) GetBlockSize() int {
	return params.BlockSize
}

// GetKey returns a copy of the key
func (params Parameter) GetKey() *big.Int {
	if params.Key == nil {
		return nil
	}
	return new(big.Int).Set(params.Key)
}
