// Package utf8valid validates whether a byte buffer is well-formed UTF-8 per
// Unicode 6.0 Table 3-7, reporting the byte offset of the first malformed
// sequence on rejection.
//
// Validate runs a vectorized range-classification algorithm over fixed
// 32-byte blocks and falls back to a scalar byte-at-a-time state machine
// (ValidateScalar) for any tail shorter than 32 bytes and to refine the
// error position after the vector path aborts. Both paths are pure
// functions of their input and safe for concurrent use from any number of
// goroutines.
//
// The 256-bit operations the vector path needs are provided by
// internal/simd256, which picks an AVX2-backed implementation on capable
// amd64 hosts and falls back to a portable Go implementation everywhere
// else.
//
// References:
//   - Unicode 6.0.0, chapter 3, Table 3-7 (Well-Formed UTF-8 Byte Sequences)
//   - https://github.com/cyb70289/utf8 (the range-based algorithm this package ports)
package utf8valid
