package memo

import "fmt"

// denseTable is the default backend: a flat array indexed directly by mask,
// one slot per possible 26-bit value. This is the "dense array indexed by
// mask" implementation spec.md §3 calls the natural one.
type denseTable struct {
	width CounterWidth
	small []uint16
	large []uint32
}

// NewDenseTable allocates a dense in-memory memo table. width chooses the
// counter size; Width16 halves the ~256MiB footprint of Width32 and is safe
// as long as no level-0 MaskList the dictionary produces exceeds 65535
// distinct masks (true of every realistic English word list).
func NewDenseTable(width CounterWidth) (Table, error) {
	t := &denseTable{width: width}
	var err error
	func() {
		defer func() {
			if r := recover(); r != nil {
				err = &ErrAllocationFailed{Bytes: allocSize(width), Cause: fmt.Errorf("%v", r)}
			}
		}()
		switch width {
		case Width16:
			t.small = make([]uint16, entries)
		default:
			t.width = Width32
			t.large = make([]uint32, entries)
		}
	}()
	if err != nil {
		return nil, err
	}
	return t, nil
}

func allocSize(width CounterWidth) uint64 {
	if width == Width16 {
		return entries * 2
	}
	return entries * 4
}

func (t *denseTable) Get(mask uint32) int {
	if t.width == Width16 {
		return int(t.small[mask])
	}
	return int(t.large[mask])
}

func (t *denseTable) Set(mask uint32, length int) {
	if t.width == Width16 {
		t.small[mask] = uint16(length)
		return
	}
	t.large[mask] = uint32(length)
}

func (t *denseTable) Clear(mask uint32) {
	t.Set(mask, 0)
}

func (t *denseTable) Close() error {
	t.small = nil
	t.large = nil
	return nil
}
