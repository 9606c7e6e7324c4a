package utf8valid

// ValidateScalar implements Table 3-7 directly as a byte-at-a-time state
// machine. It is the tail engine for Validate (anything shorter than one
// 32-byte block) and the refinement step once the vector path rewinds to a
// sequence boundary, but it is also a complete, independent validator: on
// platforms where internal/simd256's AVX2 backend never activates, the
// portable simd256 backend keeps Validate's vector path correct, and
// ValidateScalar remains available as a zero-dependency fallback.
//
// On success it returns (true, 0). On failure it returns (false, i) where i
// is the zero-based offset of the first byte of the first malformed
// sequence; a truncated sequence at the end of data is reported at the
// offset of its own leading byte.
func ValidateScalar(data []byte) (ok bool, errorIndex int) {
	i, n := 0, len(data)
	for i < n {
		b0 := data[i]

		switch {
		case b0 <= 0x7F:
			i++

		case b0 >= 0xC2 && b0 <= 0xDF:
			if i+1 >= n || !isCont(data[i+1]) {
				return false, i
			}
			i += 2

		case b0 >= 0xE0 && b0 <= 0xEF:
			if i+2 >= n {
				return false, i
			}
			b1, b2 := data[i+1], data[i+2]
			if !isCont(b1) || !isCont(b2) {
				return false, i
			}
			switch b0 {
			case 0xE0:
				if b1 < 0xA0 {
					return false, i
				}
			case 0xED:
				if b1 > 0x9F {
					return false, i
				}
			}
			i += 3

		case b0 >= 0xF0 && b0 <= 0xF4:
			if i+3 >= n {
				return false, i
			}
			b1, b2, b3 := data[i+1], data[i+2], data[i+3]
			if !isCont(b1) || !isCont(b2) || !isCont(b3) {
				return false, i
			}
			switch b0 {
			case 0xF0:
				if b1 < 0x90 {
					return false, i
				}
			case 0xF4:
				if b1 > 0x8F {
					return false, i
				}
			}
			i += 4

		default:
			return false, i
		}
	}
	return true, 0
}

func isCont(b byte) bool {
	return b >= 0x80 && b <= 0xBF
}
