package utf8valid

import "github.com/basisbyte/utf8valid/internal/simd256"

var splat0x0F = simd256.Splat(0x0F)

var splat0xFF = simd256.Splat(0xFF)

// Validate checks whether data is well-formed UTF-8 per Unicode 6.0 Table 3-7.
// It classifies data 32 bytes at a time through internal/simd256, falling
// back to ValidateScalar for both the final partial block and, on failure,
// the bytes from the last confirmed sequence boundary onward.
//
// On success it returns (true, 0). On failure it returns (false, i) where i
// is the zero-based offset of the first byte of the first malformed
// sequence.
func Validate(data []byte) (ok bool, errorIndex int) {
	n := len(data)
	pos := 0
	errIdx := 1

	if n >= 32 {
		var prevInput, prevFirstLen simd256.Vec256

		for n-pos >= 32 {
			input := simd256.LoadU(data[pos : pos+32])

			// high_nibbles = (input >> 4) & 0x0F, via a 16-bit lane shift
			// masked afterward (see Srli16's doc comment).
			highNibbles := simd256.And(simd256.Srli16(input, 4), splat0x0F)

			firstLen := simd256.Shuffle(firstLenTbl, highNibbles)

			rng := simd256.Shuffle(firstRangeTbl, highNibbles)

			// Second byte: range index becomes the *previous* byte's first_len.
			rng = simd256.Or(rng, simd256.ConcatShift(prevFirstLen, firstLen, 1))

			// Third byte: range index becomes saturate_sub(first_len two back, 1).
			tmp1 := simd256.ConcatShift(prevFirstLen, firstLen, 2)
			tmp2 := simd256.SatSubU8(tmp1, splat1)
			rng = simd256.Or(rng, tmp2)

			// Fourth byte: range index becomes saturate_sub(first_len three back, 2).
			tmp1 = simd256.ConcatShift(prevFirstLen, firstLen, 3)
			tmp2 = simd256.SatSubU8(tmp1, splat2)
			rng = simd256.Or(rng, tmp2)

			// Adjust the second-byte range for the four special leading
			// bytes (E0, ED, F0, F4) whose continuation window is narrower
			// than the generic 80..BF range. shift1 is the byte stream
			// shifted right by one (the predecessor of each byte); adj is
			// shift1-0xEF so that only E0, ED, F0, F4 land near the edges
			// of the byte range, where the two saturating-arithmetic
			// lookups below (the "+112"/"+240" trick) pick them out.
			shift1 := simd256.ConcatShift(prevInput, input, 1)
			adj := simd256.SubB(shift1, splat0xEF)

			tmp1 = simd256.SatSubU8(adj, splat240)
			rng2 := simd256.Shuffle(dfEeTbl, tmp1)
			tmp2 = simd256.SatAddU8(adj, splat112)
			// Predecessors outside EF..FE give an index >= 128 here. Shuffle
			// only reads the low nibble, so those lanes are zeroed explicitly
			// (int8(index) > -1 keeps exactly the indices below 128).
			efFe := simd256.And(simd256.Shuffle(efFeTbl, tmp2), simd256.CmpGT(tmp2, splat0xFF))
			rng2 = simd256.AddB(rng2, efFe)

			rng = simd256.AddB(rng, rng2)

			minv := simd256.Shuffle(rangeMinTbl, rng)
			maxv := simd256.Shuffle(rangeMaxTbl, rng)

			errv := simd256.CmpGT(minv, input)
			errv = simd256.Or(errv, simd256.CmpGT(input, maxv))
			if !simd256.IsZero(errv) {
				break
			}

			prevInput = input
			prevFirstLen = firstLen

			pos += 32
			errIdx += 32
		}

		if errIdx != 1 {
			// Rewind to the start of the last sequence in the last
			// confirmed block: its leading byte is the last of prevInput's
			// final three bytes that is not a continuation byte, found by
			// scanning backward from the block's last byte (no rewind if all
			// three are continuation bytes).
			token := simd256.ExtractU32(prevInput, 7)
			b3 := byte(token >> 24)
			b2 := byte(token >> 16)
			b1 := byte(token >> 8)

			lookahead := 0
			switch {
			case !isCont(b3):
				lookahead = 1
			case !isCont(b2):
				lookahead = 2
			case !isCont(b1):
				lookahead = 3
			}

			pos -= lookahead
			errIdx -= lookahead
		}
	}

	okTail, errIdx2 := ValidateScalar(data[pos:])
	if !okTail {
		return false, errIdx + errIdx2 - 1
	}
	return true, 0
}
