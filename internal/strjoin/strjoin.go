// Package strjoin implements the length-bounded separator join the engine
// exposes to target bodies. Join is a pure function: it has no notion of
// pool lifetime, which is layered on top by internal/arena.
package strjoin

// Join concatenates strs with sep, writing into a maxLen-bounded buffer.
// Overflow truncates silently rather than erroring, matching the original's
// stpncpy-based implementation. An empty strs yields an empty string.
func Join(strs []string, sep string, maxLen int) string {
	if len(strs) < 1 {
		return ""
	}

	buf := make([]byte, 0, maxLen)
	buf = appendBounded(buf, strs[0], maxLen)
	for _, s := range strs[1:] {
		buf = appendBounded(buf, sep, maxLen)
		buf = appendBounded(buf, s, maxLen)
	}
	return string(buf)
}

func appendBounded(buf []byte, s string, maxLen int) []byte {
	room := maxLen - len(buf)
	if room <= 0 {
		return buf
	}
	if len(s) > room {
		s = s[:room]
	}
	return append(buf, s...)
}
