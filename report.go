package utf8valid

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/mhr3/streamvbyte"
)

// Report is a loadable, randomly- and sequentially-accessible record of a
// BatchValidate run: for each buffer in the original slice, whether it
// failed validation and, if so, at what offset. Failure offsets are kept
// StreamVByte-encoded rather than as a plain []int, so a caller scanning a
// large corpus can retain the whole report cheaply.
type Report struct {
	total    int
	failed   bitset
	offsets  []byte // StreamVByte-encoded, one entry per failed buffer, in buffer order
	failures int
	pos      int
	loaded   bool
}

// BatchValidate runs Validate over every buffer, fanned out across a worker
// pool sized to runtime.GOMAXPROCS(0), and returns the assembled Report.
func BatchValidate(buffers [][]byte) *Report {
	n := len(buffers)

	ok := make([]bool, n)
	rawOffsets := make([]uint32, n)

	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}

	var wg sync.WaitGroup
	chunk := (n + workers - 1) / workers
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				okI, idx := Validate(buffers[i])
				ok[i] = okI
				if !okI {
					rawOffsets[i] = uint32(idx)
				}
			}
		}(start, end)
	}
	wg.Wait()

	failed := newBitset(n)
	failedOffsets := make([]uint32, 0, n)
	for i := 0; i < n; i++ {
		if !ok[i] {
			failed.set(i)
			failedOffsets = append(failedOffsets, rawOffsets[i])
		}
	}

	return &Report{
		total:    n,
		failed:   failed,
		offsets:  streamvbyte.EncodeUint32(failedOffsets, nil),
		failures: len(failedOffsets),
		loaded:   true,
	}
}

// Len returns the number of buffers the report covers.
func (r *Report) Len() int {
	return r.total
}

// FailureCount returns how many buffers failed validation.
func (r *Report) FailureCount() int {
	return r.failures
}

// Reset rewinds the sequential cursor used by Next to the beginning.
func (r *Report) Reset() {
	r.pos = 0
}

// Get returns whether buffer i failed validation and, if it did, the
// error offset Validate reported for it.
func (r *Report) Get(i int) (offset int, failed bool, err error) {
	if !r.loaded {
		return 0, false, fmt.Errorf("%w", ErrReportNotLoaded)
	}
	if i < 0 || i >= r.total {
		return 0, false, fmt.Errorf("%w: index %d", ErrReportIndexOutOfRange, i)
	}
	if !r.failed.test(i) {
		return 0, false, nil
	}
	rank := r.failed.rank(i)
	return int(svbDecodeOne(r.offsets, r.failures, rank)), true, nil
}

// Next advances the sequential cursor and returns the next buffer's index,
// failure state, and offset. ok is false once every buffer has been
// visited or the report is not loaded.
func (r *Report) Next() (i int, offset int, failed bool, ok bool) {
	if !r.loaded || r.pos >= r.total {
		return 0, 0, false, false
	}
	i = r.pos
	offset, failed, _ = r.Get(i)
	r.pos++
	return i, offset, failed, true
}
