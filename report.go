package heterogram

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/projectdiscovery/fasttemplate"
	"github.com/projectdiscovery/gologger"
	errorutil "github.com/projectdiscovery/utils/errors"
)

const timingTemplate = "found at {{elapsed}} ({{count}})"

// elapsedClause renders the "<M> mins <S.SSS> secs" clause the teacher's C
// ancestor built from clock(); here it's built from a wall-clock duration.
func elapsedClause(d time.Duration) string {
	mins := int(d / time.Minute)
	secs := float64(d%time.Minute) / float64(time.Second)
	return fasttemplate.ExecuteStringStd("{{mins}} mins {{secs}} secs", "{{", "}}", map[string]interface{}{
		"mins": mins,
		"secs": fmt.Sprintf("%0.3f", secs),
	})
}

// RunToWriter drives the search engine to completion, writing one line per
// solution in the stdout format spec.md §6 describes, and reports progress
// the way the reference implementation's printf calls do (§4.7). It honors
// Options.Limit by canceling the underlying search once enough solutions
// have been found.
func (s *Search) RunToWriter(ctx context.Context, w io.Writer) (int, error) {
	if w == nil {
		return 0, errorutil.NewWithTag("heterogram", "writer destination cannot be nil")
	}

	gologger.Info().Msgf("initial word count: %d", s.InitialWordCount)
	gologger.Info().Msgf("current word count: %d", s.FilteredCount)
	gologger.Info().Msgf("removing anagrams")
	gologger.Info().Msgf("current word count: %d", s.LevelZeroCount)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	start := time.Now()
	count := 0
	for solution := range s.Engine.Run(ctx) {
		count++
		line := Render(s.Engine.Anagrams, solution) + " " +
			fasttemplate.ExecuteStringStd(timingTemplate, "{{", "}}", map[string]interface{}{
				"elapsed": elapsedClause(time.Since(start)),
				"count":   count,
			}) + "\n"
		if _, err := w.Write([]byte(line)); err != nil {
			return count, err
		}
		if s.Options.Limit > 0 && count >= s.Options.Limit {
			cancel()
			break
		}
	}

	gologger.Info().Msgf("finished at %s, with %d solutions.", elapsedClause(time.Since(start)), count)
	return count, nil
}
