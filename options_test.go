package heterogram

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func newSearch(t *testing.T, dictionary string) *Search {
	t.Helper()
	s, err := New(&Options{Dictionary: []byte(dictionary)})
	require.Nil(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func solutionLines(t *testing.T, s *Search) []string {
	t.Helper()
	var buf bytes.Buffer
	_, err := s.RunToWriter(context.Background(), &buf)
	require.Nil(t, err)
	var lines []string
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		lines = append(lines, strings.Fields(line)[0]+" "+strings.Fields(line)[1])
	}
	return lines
}

func TestSearchMicro(t *testing.T) {
	s := newSearch(t, "abcdefghijklm\nnopqrstuvwxyz\n")
	lines := solutionLines(t, s)
	require.Equal(t, []string{"abcdefghijklm nopqrstuvwxyz"}, lines)
}

func TestSearchAnagrams(t *testing.T) {
	s := newSearch(t, "abcdefghijklm\nmlkjihgfedcba\nnopqrstuvwxyz\n")
	lines := solutionLines(t, s)
	require.Equal(t, []string{"abcdefghijklm|mlkjihgfedcba nopqrstuvwxyz"}, lines)
}

func TestSearchOrderingIsAlphabeticRegardlessOfInputOrder(t *testing.T) {
	s := newSearch(t, "nopqrstuvwxyz\nabcdefghijklm\n")
	lines := solutionLines(t, s)
	require.Equal(t, []string{"abcdefghijklm nopqrstuvwxyz"}, lines)
}

func TestSearchRejectsRepeatedLetterWord(t *testing.T) {
	s := newSearch(t, "aabcdefghijklm\nnopqrstuvwxyz\n")
	require.Empty(t, solutionLines(t, s))
	require.Equal(t, 1, s.FilteredCount, "only the well-formed word survives normalization")
}

func TestSearchMultiWordSentence(t *testing.T) {
	s := newSearch(t, "cwm\nfjord\nbank\nglyphs\nvext\nquiz\n")
	var solutions []Solution
	for sol := range s.Engine.Run(context.Background()) {
		solutions = append(solutions, sol)
	}
	require.NotEmpty(t, solutions)

	rendered := Render(s.Engine.Anagrams, solutions[0])
	letters := make(map[rune]bool)
	for _, r := range rendered {
		if r == '|' || r == ' ' {
			continue
		}
		letters[r] = true
	}
	require.Len(t, letters, 26)
}

func TestSearchRespectsLimit(t *testing.T) {
	s, err := New(&Options{
		Dictionary: []byte(
			"abcdefghij\nabcde\nfghij\nklmnopqr\nklmn\nopqr\nstuvwxyz\nstuv\nwxyz\n",
		),
		Limit: 2,
	})
	require.Nil(t, err)
	defer s.Close()

	count, err := s.RunToWriter(context.Background(), &bytes.Buffer{})
	require.Nil(t, err)
	require.Equal(t, 2, count)
}

func TestSearchHandlesEmptyDictionary(t *testing.T) {
	s := newSearch(t, "")
	require.Empty(t, solutionLines(t, s))
	require.Zero(t, s.FilteredCount)
}

func TestOptionsValidateRejectsBadCounterWidth(t *testing.T) {
	_, err := New(&Options{Dictionary: []byte("abc\n"), CounterWidth: 8})
	require.NotNil(t, err)
}
