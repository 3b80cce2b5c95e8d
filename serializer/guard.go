package serializer

import (
	"fmt"

	"github.com/lwes/lwes-go/errs"
)

// Guard is a capacity assertion over a region of a caller buffer.
//
// Reserve checks the region once; the Guard's 64-bit writers then skip the
// per-call assertion that PutInt64 and PutUint64 perform. Offsets passed to a
// Guard are absolute buffer offsets and must satisfy
// Start() <= offset && offset+8 <= End(). Violating that corrupts memory
// instead of panicking.
//
// A Guard holds no resources; it is valid for as long as the buffer is.
type Guard struct {
	buf   []byte
	start int
	end   int
}

// Reserve asserts that buf holds size bytes starting at offset.
//
// Returns an error wrapping errs.ErrShortBuffer when it does not.
func Reserve(buf []byte, offset, size int) (Guard, error) {
	if err := checkFit(buf, offset, size); err != nil {
		return Guard{}, err
	}

	return Guard{buf: buf, start: offset, end: offset + size}, nil
}

// Start returns the first reserved offset.
func (g Guard) Start() int {
	return g.start
}

// End returns the offset one past the reserved region.
func (g Guard) End() int {
	return g.end
}

// Len returns the reserved size in bytes.
func (g Guard) Len() int {
	return g.end - g.start
}

// Remaining returns how many reserved bytes lie at or after offset.
func (g Guard) Remaining(offset int) int {
	if offset < g.start || offset > g.end {
		return 0
	}

	return g.end - offset
}

// PutInt64 writes v at offset without re-checking capacity.
//
// offset must lie in [Start(), End()-8]. Nothing verifies it: an offset past
// the end of the buffer writes into unrelated memory.
func (g Guard) PutInt64(v int64, offset int) int {
	putUint64Unchecked(g.buf, offset, uint64(v)) //nolint:gosec
	return 8
}

// PutUint64 writes v at offset without re-checking capacity.
//
// offset must lie in [Start(), End()-8]. Nothing verifies it: an offset past
// the end of the buffer writes into unrelated memory.
func (g Guard) PutUint64(v uint64, offset int) int {
	putUint64Unchecked(g.buf, offset, v)
	return 8
}

// PutInt64Array writes a UINT16 count and the elements of values at offset,
// checking only that the whole array fits in the reserved region.
func (g Guard) PutInt64Array(values []int64, offset int) (int, error) {
	need := 2 + 8*len(values)
	if g.Remaining(offset) < need {
		return 0, g.shortRegion(offset, need)
	}
	n := PutUint16(uint16(len(values)), g.buf, offset) //nolint:gosec
	for _, v := range values {
		n += g.PutInt64(v, offset+n)
	}

	return n, nil
}

// PutUint64Array is the unsigned counterpart of PutInt64Array.
func (g Guard) PutUint64Array(values []uint64, offset int) (int, error) {
	need := 2 + 8*len(values)
	if g.Remaining(offset) < need {
		return 0, g.shortRegion(offset, need)
	}
	n := PutUint16(uint16(len(values)), g.buf, offset) //nolint:gosec
	for _, v := range values {
		n += g.PutUint64(v, offset+n)
	}

	return n, nil
}

func (g Guard) shortRegion(offset, need int) error {
	return fmt.Errorf("%w: %d bytes at offset %d, reserved [%d, %d)",
		errs.ErrShortBuffer, need, offset, g.start, g.end)
}
