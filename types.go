package Xifra

// Bits is a sequence of bits, one per element, most significant bit first.
// Every element is either 0 or 1.
type Bits []uint8

// Clone returns a copy of the bits that shares no memory with b
func (b Bits) Clone() Bits {
	c := make(Bits, len(b))
	copy(c, b)
	return c
}

// String renders the bits as a string of '0' and '1'
func (b Bits) String() string {
	buf := make([]byte, len(b))
	for i, bit := range b {
		buf[i] = '0' + bit
	}
	return string(buf)
}
