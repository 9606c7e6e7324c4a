package simd256

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShuffleGenericIndexesLowNibble(t *testing.T) {
	var table [16]byte
	for i := range table {
		table[i] = byte(i * 10)
	}
	tbl := Broadcast16(table)

	idx := Splat(0)
	idx[0] = 0x03
	idx[31] = 0xF3 // high bit set, but this package only cares about the low nibble

	out := shuffleGeneric(tbl, idx)
	assert.Equal(t, byte(30), out[0])
	assert.Equal(t, byte(30), out[31])
}

func TestCmpGTGenericIsSigned(t *testing.T) {
	a := Splat(0x00)
	b := Splat(0x80) // -128 as int8

	out := cmpGTGeneric(a, b)
	for _, v := range out {
		assert.Equal(t, byte(0xFF), v, "0 > -128 under signed comparison")
	}

	out = cmpGTGeneric(b, a)
	for _, v := range out {
		assert.Equal(t, byte(0x00), v, "-128 > 0 is false under signed comparison")
	}
}

func TestSatAddSubU8Generic(t *testing.T) {
	a := Splat(0xFE)
	b := Splat(0x05)
	sum := satAddU8Generic(a, b)
	for _, v := range sum {
		assert.Equal(t, byte(0xFF), v)
	}

	diff := satSubU8Generic(Splat(0x02), Splat(0x05))
	for _, v := range diff {
		assert.Equal(t, byte(0x00), v)
	}
}

func TestSrli16GenericMatchesByteShiftWhenMasked(t *testing.T) {
	var v Vec256
	for i := range v {
		v[i] = byte(i*37 + 11)
	}

	shifted := srli16Generic(v, 4)
	mask := Splat(0x0F)
	masked := andGeneric(shifted, mask)

	for i, b := range v {
		assert.Equal(t, b>>4, masked[i])
	}
}

func TestConcatShiftGeneric(t *testing.T) {
	var prev, cur Vec256
	for i := range prev {
		prev[i] = byte(i)
		cur[i] = byte(100 + i)
	}

	out := concatShiftGeneric(prev, cur, 1)
	assert.Equal(t, prev[31], out[0])
	assert.Equal(t, cur[:31], out[1:])

	out = concatShiftGeneric(prev, cur, 3)
	assert.Equal(t, prev[29:], out[:3])
	assert.Equal(t, cur[:29], out[3:])
}

func TestIsZeroGeneric(t *testing.T) {
	assert.True(t, isZeroGeneric(Vec256{}))
	v := Vec256{}
	v[17] = 1
	assert.False(t, isZeroGeneric(v))
}

func TestExtractU32Generic(t *testing.T) {
	var v Vec256
	for i := range v {
		v[i] = byte(i)
	}
	got := extractU32Generic(v, 2)
	want := uint32(8) | uint32(9)<<8 | uint32(10)<<16 | uint32(11)<<24
	assert.Equal(t, want, got)
}

func TestLoadUCopiesExactly32Bytes(t *testing.T) {
	data := make([]byte, 40)
	for i := range data {
		data[i] = byte(i)
	}
	v := LoadU(data)
	for i := 0; i < 32; i++ {
		assert.Equal(t, byte(i), v[i])
	}
}
