package utf8valid

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateScalarBoundaryScenarios(t *testing.T) {
	cases := []struct {
		name      string
		data      []byte
		wantOK    bool
		wantIndex int
	}{
		{"empty", []byte(""), true, 0},
		{
			"printable ascii x20",
			[]byte(strings.Repeat(printableASCII, 20)),
			true, 0,
		},
		{
			"multilingual",
			[]byte("Hello, 世界! Привет мир! 😀"),
			true, 0,
		},
		{
			"ascii then stray continuation byte",
			append([]byte("abcdefghijklmnopqrstuvwxyzabcd"), 0x80, 0x01),
			false, 30,
		},
		{
			"encoded surrogate",
			append(repeatByte('a', 32), 0xED, 0xA0, 0x80),
			false, 32,
		},
		{"overlong nul", []byte{0xC0, 0x80}, false, 0},
		{
			"truncated four-byte sequence",
			append(repeatByte('a', 31), 0xF0, 0x90, 0x8D),
			false, 31,
		},
		{
			"code point beyond U+10FFFF",
			append(repeatByte('a', 64), 0xF4, 0x90, 0x80, 0x80),
			false, 64,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ok, idx := ValidateScalar(tc.data)
			assert.Equal(t, tc.wantOK, ok)
			if !tc.wantOK {
				assert.Equal(t, tc.wantIndex, idx)
			}
		})
	}
}

const printableASCII = " !\"#$%&'()*+,-./0123456789:;<=>?@ABCDEFGHIJKLMNOPQRSTUVWXYZ[\\]^_`abcdefghijklmnopqrstuvwxyz{|}~"

func repeatByte(b byte, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = b
	}
	return out
}
