package heterogram

import (
	"context"
	"fmt"
	"sort"
	"testing"

	"github.com/cwmfjord/heterogram/internal/memo"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T, words WordList) *Engine {
	t.Helper()
	levelZero := BuildLevelZero(words)
	table, err := memo.NewDenseTable(memo.Width16)
	require.Nil(t, err)
	t.Cleanup(func() { _ = table.Close() })
	return NewEngine(words, levelZero, table)
}

func collect(t *testing.T, e *Engine) [][]LetterMask {
	t.Helper()
	var out [][]LetterMask
	for sol := range e.Run(context.Background()) {
		out = append(out, sol.Masks)
	}
	return out
}

// bruteForce enumerates every alphabetically-ordered, disjoint cover of
// AllLettersMask the same way the engine does, without any memoization.
// It's the reference engine_test.go checks the memoized search against.
func bruteForce(masks []LetterMask) [][]LetterMask {
	var results [][]LetterMask
	var rec func(start int, acc []LetterMask, union LetterMask)
	rec = func(start int, acc []LetterMask, union LetterMask) {
		if union == AllLettersMask {
			sol := make([]LetterMask, len(acc))
			copy(sol, acc)
			results = append(results, sol)
			return
		}
		for i := start; i < len(masks); i++ {
			if masks[i]&union != 0 {
				continue
			}
			rec(i+1, append(acc, masks[i]), union|masks[i])
		}
	}
	rec(0, nil, 0)
	return results
}

func canonical(solutions [][]LetterMask) []string {
	keys := make([]string, len(solutions))
	for i, sol := range solutions {
		keys[i] = fmt.Sprint(sol)
	}
	sort.Strings(keys)
	return keys
}

func TestEngineFindsSinglePangram(t *testing.T) {
	words := BuildWordList([]byte("abcdefgh\nijklmnop\nqrstuvwx\nyz\n"))
	e := newTestEngine(t, words)
	solutions := collect(t, e)
	require.Len(t, solutions, 1)

	var union LetterMask
	for _, m := range solutions[0] {
		union |= m
	}
	require.EqualValues(t, AllLettersMask, union)
}

func TestEngineFindsNoSolutionWhenAlphabetUncovered(t *testing.T) {
	words := BuildWordList([]byte("abcdefgh\nijklmnop\n"))
	e := newTestEngine(t, words)
	require.Empty(t, collect(t, e))
}

func TestEngineMatchesBruteForceReference(t *testing.T) {
	// Three independent groups spanning disjoint letter ranges, each
	// coverable either by one combined word or by a two-word split. This
	// exercises memo reuse across sibling branches (S6).
	raw := []byte(
		"abcdefghij\n" +
			"abcde\n" +
			"fghij\n" +
			"klmnopqr\n" +
			"klmn\n" +
			"opqr\n" +
			"stuvwxyz\n" +
			"stuv\n" +
			"wxyz\n",
	)
	words := BuildWordList(raw)
	levelZero := BuildLevelZero(words)

	e := newTestEngine(t, words)
	got := collect(t, e)
	want := bruteForce(levelZero)

	require.Equal(t, canonical(want), canonical(got))
	require.Len(t, got, 8, "2 choices per group across 3 independent groups")
}

func TestEngineHonorsContextCancellation(t *testing.T) {
	words := BuildWordList([]byte("abcdefgh\nijklmnop\nqrstuvwx\nyz\n"))
	e := newTestEngine(t, words)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	count := 0
	for range e.Run(ctx) {
		count++
	}
	require.Zero(t, count)
}
