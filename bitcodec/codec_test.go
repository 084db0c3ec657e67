package bitcodec

import (
	"Xifra"
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func testString(opName string, size int) string {
	return fmt.Sprintf("%s/Size=%d", opName, size)
}

func TestTextToBits(t *testing.T) {
	bits, err := TextToBits("Hi")
	require.NoError(t, err)
	require.Equal(t, "0100100001101001", bits.String())

	bits, err = TextToBits("")
	require.NoError(t, err)
	require.Empty(t, bits)

	// Latin-1 still fits in one block per code point
	bits, err = TextToBits("ñÿ")
	require.NoError(t, err)
	require.Len(t, bits, 16)
	require.Equal(t, "1111000111111111", bits.String())
}

func TestTextToBitsRejectsWideCodePoints(t *testing.T) {
	for _, text := range []string{"€", "aĀ", "日本"} {
		_, err := TextToBits(text)
		require.ErrorIs(t, err, Xifra.ErrMalformedInput, text)
	}
}

func TestBitsToText(t *testing.T) {
	text, err := BitsToText(Xifra.Bits{0, 1, 0, 0, 1, 0, 0, 0, 0, 1, 1, 0, 1, 0, 0, 1})
	require.NoError(t, err)
	require.Equal(t, "Hi", text)

	text, err = BitsToText(nil)
	require.NoError(t, err)
	require.Equal(t, "", text)
}

func TestBitsToTextMalformed(t *testing.T) {
	_, err := BitsToText(Xifra.Bits{1, 0, 1})
	require.ErrorIs(t, err, Xifra.ErrMalformedInput)

	_, err = BitsToText(Xifra.Bits{0, 0, 0, 0, 0, 0, 0, 2})
	require.ErrorIs(t, err, Xifra.ErrMalformedInput)
}

func TestTextRoundTrip(t *testing.T) {
	texts, err := Xifra.RandomTextGen([]byte("bitcodec"), 16, 24)
	require.NoError(t, err)
	texts = append(texts, "", "\x00", "Hola, què tal? ñ")
	for _, text := range texts {
		bits, err := TextToBits(text)
		require.NoError(t, err)
		require.Len(t, bits, CharSize*len([]rune(text)))
		back, err := BitsToText(bits)
		require.NoError(t, err)
		require.Equal(t, text, back)
	}
}

func TestIntToBits(t *testing.T) {
	for _, size := range []int{1, 4, 8, 31, 64, 100} {
		t.Run(testString("IntToBits", size), func(t *testing.T) {
			modulus := new(big.Int).Lsh(big.NewInt(1), uint(size))
			for _, x := range []int64{0, 1, 5, 255, 703, 1 << 40} {
				v := big.NewInt(x)
				bits := IntToBits(v, size)
				require.Len(t, bits, size)
				require.Equal(t, new(big.Int).Mod(v, modulus).String(), BitsToInt(bits).String())
			}
		})
	}
	require.Equal(t, "0101", IntToBits(big.NewInt(21), 4).String())
	require.Empty(t, IntToBits(big.NewInt(21), 0))
}

func TestIntToBitsWrapsNegative(t *testing.T) {
	require.Equal(t, "1111", IntToBits(big.NewInt(-1), 4).String())
	require.Equal(t, "1110", IntToBits(big.NewInt(-18), 4).String())
	require.Equal(t, "1111", IntToBitsShort(-1, 4).String())
	require.Equal(t, "1110", IntToBitsShort(-18, 4).String())
}

func TestShortMatchesBig(t *testing.T) {
	for size := 1; size <= 31; size += 5 {
		t.Run(testString("IntToBitsShort", size), func(t *testing.T) {
			for _, x := range []int{0, 3, 97, 241, 1697, 1<<30 + 7} {
				short := IntToBitsShort(x, size)
				require.Equal(t, IntToBits(big.NewInt(int64(x)), size), short)
				require.Equal(t, x%(1<<size), BitsToIntShort(short))
			}
		})
	}
}
