package memo

// NewTable picks a backend the way the teacher's NewDedupe picks between its
// in-memory and disk-backed string-dedupe backends: the dense array is used
// whenever it fits inside budgetBytes; otherwise the table overflows to a
// disk-backed store. budgetBytes == 0 means "no limit", always dense.
func NewTable(width CounterWidth, budgetBytes uint64) (Table, error) {
	if budgetBytes == 0 || allocSize(width) <= budgetBytes {
		return NewDenseTable(width)
	}
	return NewHybridTable()
}
