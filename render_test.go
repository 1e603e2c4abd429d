package heterogram

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderJoinsAnagramsWithPipeAndPositionsWithSpace(t *testing.T) {
	words := BuildWordList([]byte("abc\ncab\nbed\n"))
	idx := BuildAnagramIndex(words)

	var abcMask, bedMask LetterMask
	for _, w := range words {
		switch w.Text {
		case "abc":
			abcMask = w.Mask
		case "bed":
			bedMask = w.Mask
		}
	}

	got := Render(idx, Solution{Masks: []LetterMask{abcMask, bedMask}})
	require.Equal(t, "abc|cab bed", got)
}
