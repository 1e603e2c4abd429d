package heterogram

import (
	"context"

	"github.com/cwmfjord/heterogram/internal/memo"
)

// maxDepth is the deepest a search stack ever needs to go: a heterogram
// covers 26 letters and every word contributes at least one, so no
// solution uses more than 26 words.
const maxDepth = memo.NumLetters

// searchFrame is one level of the DFS stack (spec §3 SearchFrame).
type searchFrame struct {
	wordIndex    int          // position within dict; -1 before the first step
	stopIndex    int          // exclusive upper bound, may be shortened by memoization
	sentenceMask LetterMask   // union of masks chosen at depths strictly less than this one
	dict         []LetterMask // this level's filtered MaskList
}

// Solution is a cover of the alphabet: an ordered tuple of masks, one per
// chosen word, in increasing level-0 position.
type Solution struct {
	Masks []LetterMask
}

// Engine is the search driver (C3). It owns the WordList, the level-0
// MaskList, and the MemoTable for the lifetime of one search.
type Engine struct {
	Words     WordList
	LevelZero []LetterMask
	Anagrams  AnagramIndex
	memo      memo.Table
}

// NewEngine builds a search engine over a prepared dictionary. table is
// owned by the engine and closed when the caller is done (not by Run
// itself, since a caller may want to resume or inspect it afterward).
func NewEngine(words WordList, levelZero []LetterMask, table memo.Table) *Engine {
	return &Engine{
		Words:     words,
		LevelZero: levelZero,
		Anagrams:  BuildAnagramIndex(words),
		memo:      table,
	}
}

// Run performs the iterative depth-first enumeration described in spec §4.3
// and streams each solution found as it is discovered. The channel is
// closed when the search completes or ctx is canceled.
func (e *Engine) Run(ctx context.Context) <-chan Solution {
	out := make(chan Solution, 16)
	go func() {
		defer close(out)
		e.search(ctx, out)
	}()
	return out
}

func (e *Engine) search(ctx context.Context, out chan<- Solution) {
	var frames [maxDepth]searchFrame
	frames[0] = searchFrame{
		wordIndex:    -1,
		stopIndex:    len(e.LevelZero),
		sentenceMask: 0,
		dict:         e.LevelZero,
	}
	depth := 0

	for depth >= 0 {
		select {
		case <-ctx.Done():
			return
		default:
		}

		f := &frames[depth]
		f.wordIndex++
		if f.wordIndex >= f.stopIndex {
			depth--
			continue
		}

		chosen := f.dict[f.wordIndex]
		childMask := f.sentenceMask | chosen

		if childMask == AllLettersMask {
			masks := make([]LetterMask, depth+1)
			for i := 0; i <= depth; i++ {
				masks[i] = frames[i].dict[frames[i].wordIndex]
			}
			// Reopen every ancestor sentence_mask along this spine: a
			// previously memoized visit there must not suppress a sibling
			// solution sharing the same prefix.
			for i := 0; i <= depth; i++ {
				e.memo.Clear(frames[i].sentenceMask)
			}
			select {
			case out <- Solution{Masks: masks}:
			case <-ctx.Done():
				return
			}
			continue // stay at the current frame; more words may remain
		}

		child := &frames[depth+1]
		child.dict = filterDict(f.dict[f.wordIndex+1:], childMask, child.dict[:0])
		child.sentenceMask = childMask
		child.wordIndex = -1
		childLen := len(child.dict)
		child.stopIndex = childLen

		if prev := e.memo.Get(childMask); prev > 0 {
			if prev >= childLen {
				// Every word now available was available before: that
				// exploration was a superset of this one. Skip it.
				continue
			}
			// Only the new prefix — the words that precede the first word
			// shared with the earlier, shorter-parent run — needs visiting.
			child.stopIndex = childLen - prev
		}
		e.memo.Set(childMask, childLen)

		depth++
	}
}

// filterDict narrows parent to the words disjoint from mask, writing into
// buf (reused frame-local storage, mirroring the fixed per-level buffer the
// reference search keeps).
func filterDict(parent []LetterMask, mask LetterMask, buf []LetterMask) []LetterMask {
	for _, m := range parent {
		if m&mask == 0 {
			buf = append(buf, m)
		}
	}
	return buf
}
