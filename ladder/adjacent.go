package ladder

// IsAdjacent reports whether a and b are exactly one single-character edit
// apart: one substitution when the lengths match, one insertion or deletion
// when they differ by one. Identical strings are not adjacent. Comparison is
// byte-wise.
func IsAdjacent(a, b string) bool {
	la, lb := len(a), len(b)
	switch {
	case la == lb:
		return oneSubstitution(a, b)
	case la == lb+1:
		return oneDeletion(a, b)
	case lb == la+1:
		return oneDeletion(b, a)
	default:
		return false
	}
}

// oneSubstitution requires len(a) == len(b).
func oneSubstitution(a, b string) bool {
	diff := 0
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			diff++
			if diff > 1 {
				return false
			}
		}
	}

	return diff == 1
}

// oneDeletion requires len(long) == len(short)+1. A mismatch advances only
// the long side; a character of long left over after the scan is the
// deleted one.
func oneDeletion(long, short string) bool {
	diff := 0
	i, j := 0, 0
	for i < len(long) && j < len(short) {
		if long[i] != short[j] {
			diff++
			if diff > 1 {
				return false
			}
			i++
			continue
		}
		i++
		j++
	}
	if i < len(long) {
		diff++
	}

	return diff == 1
}

// IsLadder reports whether path starts at begin, ends at end and every
// consecutive pair of words is adjacent.
func IsLadder(path []string, begin, end string) bool {
	if len(path) == 0 || path[0] != begin || path[len(path)-1] != end {
		return false
	}
	for i := 1; i < len(path); i++ {
		if !IsAdjacent(path[i-1], path[i]) {
			return false
		}
	}

	return true
}
