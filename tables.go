package utf8valid

import "github.com/basisbyte/utf8valid/internal/simd256"

// Table 3-7 range indices. 0-8 are real ranges; 9-15 are intentionally
// unsatisfiable (see rangeMinTbl/rangeMaxTbl below) so that any byte whose
// computed range index lands there is rejected regardless of its value.
const (
	rangeASCII        = 0
	rangeContinuation = 1 // also used for indices 2 and 3, see below
	rangeAfterE0      = 4
	rangeAfterED      = 5
	rangeAfterF0      = 6
	rangeAfterF4      = 7
	rangeLeadNonASCII = 8
)

var (
	// firstLenTbl maps the high nibble of a byte to its leading-byte length
	// minus one: 0 for 0x00-0xBF, 1 for 0xC0-0xDF, 2 for 0xE0-0xEF, 3 for
	// 0xF0-0xFF.
	firstLenTbl16 = [16]byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 2, 3}

	// firstRangeTbl maps the high nibble of a byte to the tentative range
	// index for a *leading* byte: rangeLeadNonASCII for 0xC0-0xFF, 0
	// otherwise.
	firstRangeTbl16 = [16]byte{
		12: rangeLeadNonASCII, 13: rangeLeadNonASCII,
		14: rangeLeadNonASCII, 15: rangeLeadNonASCII,
	}

	// rangeMinTbl/rangeMaxTbl give the legal [min,max] byte range per range
	// index, compared as SIGNED int8 (hence values >= 0x80 read as negative
	// here — that is deliberate). Indices 9-15 use min=0x7F (127), max=0x80
	// (-128 signed), which no byte can satisfy.
	rangeMinTbl16 = [16]byte{
		rangeASCII: 0x00, rangeContinuation: 0x80, 2: 0x80, 3: 0x80,
		rangeAfterE0: 0xA0, rangeAfterED: 0x80, rangeAfterF0: 0x90, rangeAfterF4: 0x80,
		rangeLeadNonASCII: 0xC2,
		9:                 0x7F, 10: 0x7F, 11: 0x7F, 12: 0x7F, 13: 0x7F, 14: 0x7F, 15: 0x7F,
	}
	rangeMaxTbl16 = [16]byte{
		rangeASCII: 0x7F, rangeContinuation: 0xBF, 2: 0xBF, 3: 0xBF,
		rangeAfterE0: 0xBF, rangeAfterED: 0x9F, rangeAfterF0: 0xBF, rangeAfterF4: 0x8F,
		rangeLeadNonASCII: 0xF4,
		9:                 0x80, 10: 0x80, 11: 0x80, 12: 0x80, 13: 0x80, 14: 0x80, 15: 0x80,
	}

	// dfEeTbl and efFeTbl adjust the second-byte range index for the four
	// "special" leading bytes E0, ED, F0, F4 whose second-byte window is
	// narrower than the generic continuation range. They are indexed by
	// saturating arithmetic on (predecessor - 0xEF) so that every other
	// predecessor contributes zero (the "+112 trick"; for efFeTbl, indices of
	// 128 and above are zeroed by the vector validator).
	dfEeTbl16 = [16]byte{0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 3, 0}
	efFeTbl16 = [16]byte{0, 3, 0, 0, 0, 4, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
)

// The Vec256 forms of the tables above, built once at package init and used
// by the vector validator's Shuffle calls.
var (
	firstLenTbl   = simd256.Broadcast16(firstLenTbl16)
	firstRangeTbl = simd256.Broadcast16(firstRangeTbl16)
	rangeMinTbl   = simd256.Broadcast16(rangeMinTbl16)
	rangeMaxTbl   = simd256.Broadcast16(rangeMaxTbl16)
	dfEeTbl       = simd256.Broadcast16(dfEeTbl16)
	efFeTbl       = simd256.Broadcast16(efFeTbl16)

	splat0xEF = simd256.Splat(0xEF)
	splat1    = simd256.Splat(1)
	splat2    = simd256.Splat(2)
	splat112  = simd256.Splat(112)
	splat240  = simd256.Splat(240)
)
