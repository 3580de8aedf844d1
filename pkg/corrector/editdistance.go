package corrector

// DamerauLevenshtein returns the minimum number of single-character insertions,
// deletions, substitutions, and adjacent transpositions needed to turn a into b.
// Only the last three DP rows are kept, so the computation is O(len(a)*len(b))
// time and O(len(b)) space.
func DamerauLevenshtein(a, b string) int {
	s := []rune(a)
	t := []rune(b)

	if len(s) == 0 {
		return len(t)
	}
	if len(t) == 0 {
		return len(s)
	}

	twoAgo := make([]int, len(t)+1)
	oneAgo := make([]int, len(t)+1)
	curr := make([]int, len(t)+1)
	for j := 0; j <= len(t); j++ {
		oneAgo[j] = j
	}

	for i := 1; i <= len(s); i++ {
		curr[0] = i
		for j := 1; j <= len(t); j++ {
			deleteCost := oneAgo[j] + 1
			insertCost := curr[j-1] + 1
			substituteCost := oneAgo[j-1]
			if s[i-1] != t[j-1] {
				substituteCost++
			}

			cost := minOf(deleteCost, insertCost, substituteCost)
			if i > 1 && j > 1 && s[i-1] == t[j-2] && s[i-2] == t[j-1] && s[i-1] != t[j-1] {
				if transposeCost := twoAgo[j-2] + 1; transposeCost < cost {
					cost = transposeCost
				}
			}
			curr[j] = cost
		}

		twoAgo, oneAgo, curr = oneAgo, curr, twoAgo
	}
	return oneAgo[len(t)]
}

func minOf(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
