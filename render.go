package heterogram

import "strings"

// Render expands a solution's masks back into their full anagram groups and
// joins them into the printed sentence form: alternatives at one position
// joined by `|`, positions separated by a single space (C4).
func Render(idx AnagramIndex, solution Solution) string {
	parts := make([]string, len(solution.Masks))
	for i, mask := range solution.Masks {
		parts[i] = strings.Join(idx[mask], "|")
	}
	return strings.Join(parts, " ")
}
