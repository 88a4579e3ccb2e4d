package match

// Levenshtein returns the minimum number of single-byte insertions, deletions
// or substitutions that turn a into b. Comparison is case-sensitive.
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}
	if len(a) > len(b) {
		a, b = b, a
	}
	if a == "" {
		return len(b)
	}

	// Two rows over the shorter string.
	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)
	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j
		for i := 1; i <= len(a); i++ {
			sub := prev[i-1]
			if a[i-1] != b[j-1] {
				sub++
			}
			curr[i] = min(prev[i]+1, curr[i-1]+1, sub)
		}
		prev, curr = curr, prev
	}

	return prev[len(a)]
}

// Suggest returns the candidate closest to name when it is within a third of
// name's length (at least one edit). Ties go to the earlier candidate.
func Suggest(name string, candidates []string) (string, bool) {
	limit := max(1, len(name)/3)

	best, bestDist := "", limit+1
	for _, c := range candidates {
		if d := Levenshtein(name, c); d < bestDist {
			best, bestDist = c, d
		}
	}

	return best, best != ""
}
