package labeler

// LessLexicographically reports whether profile a sorts strictly before
// profile b. The empty profile precedes every non-empty one and a proper
// prefix precedes its extensions.
func LessLexicographically(a, b []int) bool {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}
