package memo

import (
	"encoding/binary"
	"strconv"

	"github.com/projectdiscovery/hmap/store/hybrid"
)

// hybridTable is the disk-backed memo backend, used when Options.MemoBudgetBytes
// is too small to fit the dense table (§4.9). Adapted from the map/disk
// threshold split the teacher uses for string dedup (internal/dedupe): here
// the same idea keys on a LetterMask instead of a result string, and stores
// the recorded dict_length as its value instead of a presence marker.
type hybridTable struct {
	storage *hybrid.HybridMap
}

// NewHybridTable opens a disk-backed memo table rooted at a temporary
// directory managed by hmap.
func NewHybridTable() (Table, error) {
	db, err := hybrid.New(hybrid.DefaultDiskOptions)
	if err != nil {
		return nil, &ErrAllocationFailed{Cause: err}
	}
	return &hybridTable{storage: db}, nil
}

func (h *hybridTable) key(mask uint32) string {
	return strconv.FormatUint(uint64(mask), 10)
}

func (h *hybridTable) Get(mask uint32) int {
	val, ok := h.storage.Get(h.key(mask))
	if !ok || len(val) != 4 {
		return 0
	}
	return int(binary.LittleEndian.Uint32(val))
}

func (h *hybridTable) Set(mask uint32, length int) {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, uint32(length))
	_ = h.storage.Set(h.key(mask), buf)
}

func (h *hybridTable) Clear(mask uint32) {
	_ = h.storage.Del(h.key(mask))
}

func (h *hybridTable) Close() error {
	return h.storage.Close()
}
