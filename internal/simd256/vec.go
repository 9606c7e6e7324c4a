// Package simd256 is the 256-bit SIMD surface the vector UTF-8 validator is
// built on: unaligned load, byte shuffle, saturating arithmetic, and the
// handful of cross-block shift/predicate operations Table 3-7 range
// classification needs. It ships a portable (pure Go) backend that always
// compiles and runs correctly, and upgrades itself at init time to an
// AVX2-backed backend on capable amd64 hosts. Callers never branch on which
// backend is live; they just call the package-level functions.
package simd256

// Vec256 holds 32 bytes, laid out the way an AVX2 __m256i register would be:
// lane i is byte i, low lane first.
type Vec256 [32]byte

// Splat returns a vector with every lane set to b (the Go equivalent of
// _mm256_set1_epi8).
func Splat(b byte) Vec256 {
	var v Vec256
	for i := range v {
		v[i] = b
	}
	return v
}

// Broadcast16 replicates a 16-entry table into both 128-bit lanes of a
// Vec256, matching the layout AVX2's vpshufb expects (and which the portable
// backend relies on to treat a 32-lane shuffle as 32 independent table
// lookups, see Shuffle).
func Broadcast16(tbl [16]byte) Vec256 {
	var v Vec256
	copy(v[:16], tbl[:])
	copy(v[16:], tbl[:])
	return v
}

// LoadU copies 32 bytes from p into a Vec256. p must have at least 32 bytes;
// callers are responsible for bounds checking (this mirrors an unaligned
// 256-bit load, which never validates its own range either). There is
// nothing backend-specific about a byte copy, so unlike the other operations
// in this package LoadU is not swapped at init time.
func LoadU(p []byte) Vec256 {
	var v Vec256
	copy(v[:], p[:32])
	return v
}

// Bytes returns the vector's underlying bytes as a slice backed by v.
func (v *Vec256) Bytes() []byte { return v[:] }

// The operations below are dispatched through package-level variables so
// ops_amd64.go's init() can swap in AVX2-backed implementations without the
// vector validator needing to know which backend is active. ops_generic.go
// supplies the default (always-compiled, always-correct) implementation
// every variable starts out pointing at.
var (
	// Shuffle performs a per-lane table lookup: result[i] = table[idx[i]&0x0F].
	// This is only equivalent to hardware PSHUFB (which indexes within each
	// 128-bit lane and zeroes the result when the index's high bit is set)
	// for indices whose high bit is clear, and because every table this
	// package serves is built with Broadcast16, so both 128-bit lanes hold
	// the same 16 entries. An index with the high bit set still selects
	// table[idx&0x0F] here; a caller that needs the hardware's zero for such
	// lanes masks them itself.
	Shuffle func(table, idx Vec256) Vec256 = shuffleGeneric

	// CmpGT performs a per-lane SIGNED byte compare: result[i] = 0xFF if
	// int8(a[i]) > int8(b[i]), else 0x00. The range tables in this validator
	// are deliberately built from signed int8 values, so this must not be
	// promoted to an unsigned comparison.
	CmpGT func(a, b Vec256) Vec256 = cmpGTGeneric

	// SatAddU8 and SatSubU8 are unsigned saturating per-lane add/sub.
	SatAddU8 func(a, b Vec256) Vec256 = satAddU8Generic
	SatSubU8 func(a, b Vec256) Vec256 = satSubU8Generic

	// AddB and SubB are per-lane wrapping (mod 256) add/sub.
	AddB func(a, b Vec256) Vec256 = addBGeneric
	SubB func(a, b Vec256) Vec256 = subBGeneric

	// Or and And are per-lane bitwise operations.
	Or  func(a, b Vec256) Vec256 = orGeneric
	And func(a, b Vec256) Vec256 = andGeneric

	// Srli16 performs a logical right shift of each 16-bit lane (pairs of
	// bytes, little-endian) by shift bits. Used to hoist the high nibble of
	// each byte; the result must be masked with 0x0F afterward to cancel the
	// cross-byte bit contamination a 16-bit lane shift introduces.
	Srli16 func(a Vec256, shift uint) Vec256 = srli16Generic

	// ConcatShift returns the high k bytes of prev followed by the low
	// (32-k) bytes of cur: the byte-wise equivalent of
	// (prev ++ cur)[32-k : 64-k]. k must be 1, 2, or 3.
	ConcatShift func(prev, cur Vec256, k int) Vec256 = concatShiftGeneric

	// IsZero reports whether every byte in v is zero.
	IsZero func(v Vec256) bool = isZeroGeneric

	// ExtractU32 returns the little-endian 32-bit word at lane*4..lane*4+4.
	// lane must be in [0,7].
	ExtractU32 func(v Vec256, lane int) uint32 = extractU32Generic
)
