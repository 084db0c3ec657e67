package transform

import (
	"Xifra"
	"Xifra/bitcodec"
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testString(opName string, k Kind, width int, key *big.Int) string {
	return fmt.Sprintf("%s/Kind=%s/Width=%d/Key=%s", opName, k, width, key)
}

func TestKnownAnswers(t *testing.T) {
	for _, tc := range testVector {
		t.Run(testString("KnownAnswer", tc.kind, len(tc.block), tc.key), func(t *testing.T) {
			tr, err := ForKind(tc.kind)
			require.NoError(t, err)
			require.Equal(t, tc.kind, tr.Kind())

			original := tc.block.Clone()
			encrypted := tr.Encrypt(tc.block, tc.key)
			require.Equal(t, tc.encrypted, encrypted)
			require.Equal(t, original, tc.block, "Encrypt must not modify its input")

			decrypted := tr.Decrypt(encrypted, tc.key)
			require.Equal(t, tc.block, decrypted)
		})
	}
}

func TestSelfInverse(t *testing.T) {
	keys := []*big.Int{
		big.NewInt(0),
		big.NewInt(1),
		big.NewInt(703),
		big.NewInt(1697),
		new(big.Int).Lsh(big.NewInt(1), 130),
	}
	for _, k := range Kinds {
		tr, err := ForKind(k)
		require.NoError(t, err)
		for _, width := range []int{1, 3, 4, 8, 11, 64, 121} {
			for _, key := range keys {
				t.Run(testString("SelfInverse", k, width, key), func(t *testing.T) {
					for x := int64(0); x < 40; x++ {
						block := bitcodec.IntToBits(big.NewInt(x*7919+x*x), width)
						require.Equal(t, block, tr.Decrypt(tr.Encrypt(block, key), key))
						require.Equal(t, block, tr.Encrypt(tr.Decrypt(block, key), key))
					}
				})
			}
		}
	}
}

func TestXORIsItsOwnInverse(t *testing.T) {
	tr, err := ForKind(XOR)
	require.NoError(t, err)
	block := Xifra.Bits{1, 1, 0, 1, 0, 0, 1}
	key := big.NewInt(99)
	assert.Equal(t, tr.Encrypt(block, key), tr.Decrypt(block, key))
}

func TestShiftRotatesPositions(t *testing.T) {
	tr, err := ForKind(Shift)
	require.NoError(t, err)
	block := Xifra.Bits{1, 0, 0, 0, 0, 0, 0, 0}
	for k := int64(0); k < 20; k++ {
		encrypted := tr.Encrypt(block, big.NewInt(k))
		want := make(Xifra.Bits, len(block))
		want[k%8] = 1
		assert.Equal(t, want, encrypted, "key %d", k)
	}
}

func TestShiftSimpleKey(t *testing.T) {
	assert.Equal(t, 0, SimpleKey(big.NewInt(512)))
	assert.Equal(t, 100, SimpleKey(big.NewInt(100)))
	assert.Equal(t, 1, SimpleKey(big.NewInt(1025)))
	assert.Equal(t, 511, SimpleKey(big.NewInt(-1)))
}

func TestEmptyBlock(t *testing.T) {
	for _, k := range Kinds {
		tr, err := ForKind(k)
		require.NoError(t, err)
		require.Empty(t, tr.Encrypt(Xifra.Bits{}, big.NewInt(5)))
		require.Empty(t, tr.Decrypt(Xifra.Bits{}, big.NewInt(5)))
	}
}

func TestForKindUnknown(t *testing.T) {
	_, err := ForKind(Kind(7))
	require.ErrorIs(t, err, Xifra.ErrInvalidParameter)
	require.False(t, Kind(7).Valid())
	require.Equal(t, "Kind(7)", Kind(7).String())
}
