package heterogram

import (
	"sort"
	"strings"
)

// LetterMask is a 26-bit set of letters: bit i set means letter 'a'+i is
// present. The zero mask denotes the empty set.
type LetterMask = uint32

// AllLettersMask denotes the full 26-letter alphabet: every bit set.
const AllLettersMask LetterMask = 1<<26 - 1

// Word pairs a normalized word with its letter mask.
// Invariant: popcount(Mask) == len(Text); words that violate it are dropped
// before a Word is ever constructed.
type Word struct {
	Text string
	Mask LetterMask
}

// WordList is an ordered sequence of Words, sorted lexicographically by
// Text with adjacent (Text, Mask) duplicates removed.
type WordList []Word

// normalizeWord lowercases ASCII letters, drops every other character, and
// computes the word's letter mask (C1). ok is false for words that are
// empty after filtering or that use some letter more than once.
func normalizeWord(line string) (text string, mask LetterMask, ok bool) {
	var b strings.Builder
	b.Grow(len(line))
	for _, r := range line {
		var c byte
		switch {
		case r >= 'a' && r <= 'z':
			c = byte(r)
		case r >= 'A' && r <= 'Z':
			c = byte(r) - 'A' + 'a'
		default:
			continue
		}
		bit := LetterMask(1) << uint(c-'a')
		if mask&bit != 0 {
			return "", 0, false
		}
		mask |= bit
		b.WriteByte(c)
	}
	if mask == 0 {
		return "", 0, false
	}
	return b.String(), mask, true
}

// BuildWordList normalizes raw dictionary text (one word per line, `\n`
// terminated, optional `\r`) into the canonical WordList: lowercased,
// letters-only, repeated-letter words dropped, sorted, adjacent-deduped
// (C1). Lines that fail normalization are silently discarded — not an
// error, per spec.
func BuildWordList(raw []byte) WordList {
	lines := strings.Split(string(raw), "\n")
	words := make(WordList, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		text, mask, ok := normalizeWord(line)
		if !ok {
			continue
		}
		words = append(words, Word{Text: text, Mask: mask})
	}
	sort.Slice(words, func(i, j int) bool { return words[i].Text < words[j].Text })
	return dedupeAdjacent(words)
}

func dedupeAdjacent(words WordList) WordList {
	if len(words) == 0 {
		return words
	}
	out := words[:1]
	for _, w := range words[1:] {
		last := out[len(out)-1]
		if w.Text == last.Text && w.Mask == last.Mask {
			continue
		}
		out = append(out, w)
	}
	return out
}
