//go:build amd64 && !noasm

package simd256

import "golang.org/x/sys/cpu"

// Assembly entry points generated by internal/avo/classify.go (see
// internal/avo/main.go's doc comment for how to regenerate them). Each takes
// pointers into Vec256-sized (32-byte) buffers; the vector-valued ones write
// through an output pointer and the two reductions return their result.
// None of them escape their arguments, so callers can pass addresses of
// stack values.

//go:noescape
func shuffleAVX2(table, idx, out *byte)

//go:noescape
func cmpGTAVX2(a, b, out *byte)

//go:noescape
func satAddU8AVX2(a, b, out *byte)

//go:noescape
func satSubU8AVX2(a, b, out *byte)

//go:noescape
func addBAVX2(a, b, out *byte)

//go:noescape
func subBAVX2(a, b, out *byte)

//go:noescape
func orAVX2(a, b, out *byte)

//go:noescape
func andAVX2(a, b, out *byte)

//go:noescape
func srli16AVX2(a *byte, shift uint64, out *byte)

//go:noescape
func concatShiftAVX2(prev, cur *byte, k uint64, out *byte)

//go:noescape
func isZeroAVX2(v *byte) uint64

//go:noescape
func extractU32AVX2(v *byte, lane uint64) uint32

func init() {
	if !cpu.X86.HasAVX2 {
		return
	}
	Shuffle = shuffleWrap
	CmpGT = cmpGTWrap
	SatAddU8 = satAddU8Wrap
	SatSubU8 = satSubU8Wrap
	AddB = addBWrap
	SubB = subBWrap
	Or = orWrap
	And = andWrap
	Srli16 = srli16Wrap
	ConcatShift = concatShiftWrap
	IsZero = isZeroWrap
	ExtractU32 = extractU32Wrap
}

func shuffleWrap(table, idx Vec256) Vec256 {
	var out Vec256
	shuffleAVX2(&table[0], &idx[0], &out[0])
	return out
}

func cmpGTWrap(a, b Vec256) Vec256 {
	var out Vec256
	cmpGTAVX2(&a[0], &b[0], &out[0])
	return out
}

func satAddU8Wrap(a, b Vec256) Vec256 {
	var out Vec256
	satAddU8AVX2(&a[0], &b[0], &out[0])
	return out
}

func satSubU8Wrap(a, b Vec256) Vec256 {
	var out Vec256
	satSubU8AVX2(&a[0], &b[0], &out[0])
	return out
}

func addBWrap(a, b Vec256) Vec256 {
	var out Vec256
	addBAVX2(&a[0], &b[0], &out[0])
	return out
}

func subBWrap(a, b Vec256) Vec256 {
	var out Vec256
	subBAVX2(&a[0], &b[0], &out[0])
	return out
}

func orWrap(a, b Vec256) Vec256 {
	var out Vec256
	orAVX2(&a[0], &b[0], &out[0])
	return out
}

func andWrap(a, b Vec256) Vec256 {
	var out Vec256
	andAVX2(&a[0], &b[0], &out[0])
	return out
}

func srli16Wrap(a Vec256, shift uint) Vec256 {
	var out Vec256
	srli16AVX2(&a[0], uint64(shift), &out[0])
	return out
}

func concatShiftWrap(prev, cur Vec256, k int) Vec256 {
	var out Vec256
	concatShiftAVX2(&prev[0], &cur[0], uint64(k), &out[0])
	return out
}

func isZeroWrap(v Vec256) bool {
	return isZeroAVX2(&v[0]) != 0
}

func extractU32Wrap(v Vec256, lane int) uint32 {
	return extractU32AVX2(&v[0], uint64(lane))
}
