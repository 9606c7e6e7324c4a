package utf8valid

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchValidateRoundTrip(t *testing.T) {
	buffers := [][]byte{
		[]byte("hello"),
		{0xC0, 0x80},
		[]byte(""),
		append(repeatByte('a', 32), 0xED, 0xA0, 0x80),
		[]byte("世界"),
	}

	report := BatchValidate(buffers)

	require.Equal(t, len(buffers), report.Len())
	assert.Equal(t, 2, report.FailureCount())

	wantFailed := []bool{false, true, false, true, false}
	wantOffset := []int{0, 0, 0, 32, 0}

	for i := range buffers {
		offset, failed, err := report.Get(i)
		require.NoError(t, err)
		assert.Equal(t, wantFailed[i], failed)
		if failed {
			assert.Equal(t, wantOffset[i], offset)
		}
	}

	report.Reset()
	seen := 0
	for {
		i, offset, failed, ok := report.Next()
		if !ok {
			break
		}
		wantOffsetAt, wantFailedAt := wantOffset[i], wantFailed[i]
		assert.Equal(t, wantFailedAt, failed)
		if failed {
			assert.Equal(t, wantOffsetAt, offset)
		}
		seen++
	}
	assert.Equal(t, len(buffers), seen)
}

func TestReportGetOutOfRange(t *testing.T) {
	report := BatchValidate([][]byte{[]byte("ok")})
	_, _, err := report.Get(5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrReportIndexOutOfRange))
}

func TestReportNotLoaded(t *testing.T) {
	var report Report
	_, _, err := report.Get(0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrReportNotLoaded))
}

func TestBatchValidateEmpty(t *testing.T) {
	report := BatchValidate(nil)
	assert.Equal(t, 0, report.Len())
	assert.Equal(t, 0, report.FailureCount())
	_, _, _, ok := report.Next()
	assert.False(t, ok)
}
