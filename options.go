package heterogram

import (
	"github.com/cwmfjord/heterogram/internal/memo"
	errorutil "github.com/projectdiscovery/utils/errors"
)

// Options configures a Search (mirrors the teacher's Mutator Options).
type Options struct {
	// Dictionary is the raw dictionary text to search over.
	Dictionary []byte
	// CounterWidth selects the memo table's counter size: 16 or 32. Zero
	// means "choose automatically" (§4.5/§4.9).
	CounterWidth int
	// MemoBudgetBytes bounds how much memory the memo table may use before
	// the engine falls back to a disk-backed table. Zero means unlimited.
	MemoBudgetBytes uint64
	// Limit stops the search after this many solutions. Zero means
	// unlimited.
	Limit int
}

func (o *Options) Validate() error {
	if o.CounterWidth == 0 {
		o.CounterWidth = 16
	}
	if o.CounterWidth != 16 && o.CounterWidth != 32 {
		return errorutil.NewWithTag("heterogram", "invalid counter width %d (must be 16 or 32)", o.CounterWidth)
	}
	return nil
}

// Search bundles a prepared dictionary and a running Engine over it,
// exposing the WordList counts a CLI reports as progress (§4.7).
type Search struct {
	Options *Options

	InitialWordCount int
	FilteredCount    int
	LevelZeroCount   int

	Words     WordList
	LevelZero []LetterMask
	Engine    *Engine

	table memo.Table
}

// New builds a Search from Options: normalizes the dictionary (C1),
// de-anagrams it into the level-0 MaskList (C2), and constructs the memo
// table and search engine (C3/C5).
func New(opts *Options) (*Search, error) {
	autoWidth := opts.CounterWidth == 0
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	s := &Search{Options: opts}

	s.InitialWordCount = countLines(opts.Dictionary)
	s.Words = BuildWordList(opts.Dictionary)
	s.FilteredCount = len(s.Words)

	s.LevelZero = BuildLevelZero(s.Words)
	s.LevelZeroCount = len(s.LevelZero)

	// 16-bit counters hold any dict length of a level-0 MaskList with at
	// most 65535 entries; larger lists get 32-bit counters.
	if autoWidth && s.LevelZeroCount > 65535 {
		opts.CounterWidth = 32
	}
	width := memo.Width16
	if opts.CounterWidth == 32 {
		width = memo.Width32
	}
	table, err := memo.NewTable(width, opts.MemoBudgetBytes)
	if err != nil {
		return nil, err
	}
	s.table = table

	s.Engine = NewEngine(s.Words, s.LevelZero, table)
	return s, nil
}

// Close releases the memo table's resources.
func (s *Search) Close() error {
	return s.table.Close()
}

func countLines(raw []byte) int {
	if len(raw) == 0 {
		return 0
	}
	count := 1
	for _, b := range raw {
		if b == '\n' {
			count++
		}
	}
	return count
}
