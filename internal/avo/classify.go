//go:build avogen
// +build avogen

package main

import (
	. "github.com/mmcloughlin/avo/build"
	"github.com/mmcloughlin/avo/operand"
	"github.com/mmcloughlin/avo/reg"
)

// This file generates the AVX2 kernels behind internal/simd256's amd64
// backend. Each kernel is a direct translation of one Table 3-7
// range-classification step (see simd256's doc comments) into its YMM
// instruction: VPSHUFB for the table lookups, VPCMPGTB for the signed
// min/max check, VPADDUSB/VPSUBUSB for the saturating adjustments, and
// VPALIGNR+VPERM2I128 for the cross-block concatenation shift a 32-byte
// look-behind needs.

func loadYMM(paramName string) reg.VecVirtual {
	ptr := Load(Param(paramName), GP64())
	v := YMM()
	VMOVDQU(operand.Mem{Base: ptr.(reg.GPVirtual)}, v)
	return v
}

func storeYMM(v reg.VecVirtual, paramName string) {
	ptr := Load(Param(paramName), GP64())
	VMOVDQU(v, operand.Mem{Base: ptr.(reg.GPVirtual)})
}

func genShuffleKernel() {
	TEXT("shuffleAVX2", NOSPLIT, "func(table, idx, out *byte)")
	Doc("shuffleAVX2 computes out[i] = table[idx[i]&0x0F] for all 32 lanes.")
	table := loadYMM("table")
	idx := loadYMM("idx")
	res := YMM()
	VPSHUFB(idx, table, res)
	storeYMM(res, "out")
	RET()
}

func genCmpGTKernel() {
	TEXT("cmpGTAVX2", NOSPLIT, "func(a, b, out *byte)")
	Doc("cmpGTAVX2 computes out[i] = 0xFF if int8(a[i]) > int8(b[i]) else 0x00.")
	a := loadYMM("a")
	b := loadYMM("b")
	res := YMM()
	VPCMPGTB(b, a, res)
	storeYMM(res, "out")
	RET()
}

func genSatAddU8Kernel() {
	TEXT("satAddU8AVX2", NOSPLIT, "func(a, b, out *byte)")
	Doc("satAddU8AVX2 computes out[i] = min(255, a[i]+b[i]).")
	a := loadYMM("a")
	b := loadYMM("b")
	res := YMM()
	VPADDUSB(b, a, res)
	storeYMM(res, "out")
	RET()
}

func genSatSubU8Kernel() {
	TEXT("satSubU8AVX2", NOSPLIT, "func(a, b, out *byte)")
	Doc("satSubU8AVX2 computes out[i] = max(0, a[i]-b[i]).")
	a := loadYMM("a")
	b := loadYMM("b")
	res := YMM()
	VPSUBUSB(b, a, res)
	storeYMM(res, "out")
	RET()
}

func genAddBKernel() {
	TEXT("addBAVX2", NOSPLIT, "func(a, b, out *byte)")
	Doc("addBAVX2 computes out[i] = a[i]+b[i] (mod 256, wrapping).")
	a := loadYMM("a")
	b := loadYMM("b")
	res := YMM()
	VPADDB(b, a, res)
	storeYMM(res, "out")
	RET()
}

func genSubBKernel() {
	TEXT("subBAVX2", NOSPLIT, "func(a, b, out *byte)")
	Doc("subBAVX2 computes out[i] = a[i]-b[i] (mod 256, wrapping).")
	a := loadYMM("a")
	b := loadYMM("b")
	res := YMM()
	VPSUBB(b, a, res)
	storeYMM(res, "out")
	RET()
}

func genOrKernel() {
	TEXT("orAVX2", NOSPLIT, "func(a, b, out *byte)")
	Doc("orAVX2 computes the bitwise OR of a and b.")
	a := loadYMM("a")
	b := loadYMM("b")
	res := YMM()
	VPOR(b, a, res)
	storeYMM(res, "out")
	RET()
}

func genAndKernel() {
	TEXT("andAVX2", NOSPLIT, "func(a, b, out *byte)")
	Doc("andAVX2 computes the bitwise AND of a and b.")
	a := loadYMM("a")
	b := loadYMM("b")
	res := YMM()
	VPAND(b, a, res)
	storeYMM(res, "out")
	RET()
}

func genSrli16Kernel() {
	TEXT("srli16AVX2", NOSPLIT, "func(a *byte, shift uint64, out *byte)")
	Doc("srli16AVX2 right-shifts each 16-bit lane of a by shift bits.")
	a := loadYMM("a")
	shift := Load(Param("shift"), GP64())
	cnt := XMM()
	VMOVQ(shift, cnt)
	res := YMM()
	VPSRLW(cnt, a, res)
	storeYMM(res, "out")
	RET()
}

func genConcatShiftKernel() {
	TEXT("concatShiftAVX2", NOSPLIT, "func(prev, cur *byte, k uint64, out *byte)")
	Doc("concatShiftAVX2 returns the high k bytes of prev followed by the low")
	Doc("32-k bytes of cur, for k in {1,2,3}. It realizes the cross-block")
	Doc("look-behind with a lane-crossing permute (to bring prev's upper 128")
	Doc("bits next to cur's lower 128 bits) followed by a 15/14/13-byte alignr.")
	prev := loadYMM("prev")
	cur := loadYMM("cur")
	k := Load(Param("k"), GP64())

	straddle := YMM()
	VPERM2I128(operand.U8(0x21), cur, prev, straddle)

	res8 := YMM()
	VPALIGNR(operand.U8(15), straddle, cur, res8)
	res16 := YMM()
	VPALIGNR(operand.U8(14), straddle, cur, res16)
	res24 := YMM()
	VPALIGNR(operand.U8(13), straddle, cur, res24)

	result := YMM()
	VMOVDQU(res8, result)

	Label("concat_shift_check2")
	CMPQ(k, operand.Imm(2))
	JNE(operand.LabelRef("concat_shift_check3"))
	VMOVDQU(res16, result)
	JMP(operand.LabelRef("concat_shift_done"))

	Label("concat_shift_check3")
	CMPQ(k, operand.Imm(3))
	JNE(operand.LabelRef("concat_shift_done"))
	VMOVDQU(res24, result)

	Label("concat_shift_done")
	storeYMM(result, "out")
	RET()
}

func genIsZeroKernel() {
	TEXT("isZeroAVX2", NOSPLIT, "func(v *byte) uint64")
	Doc("isZeroAVX2 returns 1 if every byte of v is zero, else 0.")
	v := loadYMM("v")
	VPTEST(v, v)
	result := GP64()
	MOVQ(operand.Imm(0), result)
	SETEQ(result.As8())
	Store(result, ReturnIndex(0))
	RET()
}

func genExtractU32Kernel() {
	TEXT("extractU32AVX2", NOSPLIT, "func(v *byte, lane uint64) uint32")
	Doc("extractU32AVX2 returns the little-endian 32-bit word at byte offset lane*4.")
	v := loadYMM("v")
	lo := XMM()
	VEXTRACTI128(operand.U8(0), v, lo)
	hi := XMM()
	VEXTRACTI128(operand.U8(1), v, hi)

	lane := Load(Param("lane"), GP64())
	result := GP32()
	MOVL(operand.Imm(0), result)

	CMPQ(lane, operand.Imm(4))
	JL(operand.LabelRef("extract_low"))

	SUBQ(operand.Imm(4), lane)
	extractFromHalf(hi, lane, result, "hi")
	JMP(operand.LabelRef("extract_done"))

	Label("extract_low")
	extractFromHalf(lo, lane, result, "lo")

	Label("extract_done")
	Store(result, ReturnIndex(0))
	RET()
}

// extractFromHalf pulls the 32-bit lane `idx` (0-3) out of a 128-bit half
// using a small jump table over VPEXTRD's required immediate operand, since
// that immediate must be a compile-time constant. tag namespaces the labels
// so the two call sites in genExtractU32Kernel don't collide.
func extractFromHalf(half reg.VecVirtual, idx reg.GPVirtual, dst reg.GPVirtual, tag string) {
	doneLabel := "extract_half_done_" + tag
	for i := 0; i < 4; i++ {
		nextLabel := "extract_half_next_" + tag + "_" + string(rune('0'+i))
		CMPQ(idx, operand.U32(uint32(i)))
		JNE(operand.LabelRef(nextLabel))
		VPEXTRD(operand.U8(uint8(i)), half, dst)
		JMP(operand.LabelRef(doneLabel))
		Label(nextLabel)
	}
	Label(doneLabel)
}
