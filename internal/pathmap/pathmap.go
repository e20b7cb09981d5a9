// Package pathmap implements the pure name-mapping rewrites the engine
// applies to path strings: extension replacement and parent-directory
// replacement. Both operate on forward-slash paths only — the original
// source's behavior on native Windows separators is left undefined (spec
// Design Notes, open question (b)), and this package makes no attempt to
// special-case backslashes.
package pathmap

import (
	"log/slog"
	"strings"
)

// RewriteKind tags the variant of a rewrite Attribute.
type RewriteKind int

const (
	ReplaceExtension RewriteKind = iota
	ReplaceParent
)

// Rewrite is one step applied, in order, to every input string by Map.
type Rewrite struct {
	Kind        RewriteKind
	Replacement string
}

// Extension builds a rewrite that replaces everything after the rightmost
// '.' with replacement (no leading dot). A path with no '.' gets '.' and
// replacement appended ("Makefile" becomes "Makefile.o").
func Extension(replacement string) Rewrite {
	return Rewrite{Kind: ReplaceExtension, Replacement: replacement}
}

// Parent builds a rewrite that replaces everything before the leftmost '/'
// with replacement.
func Parent(replacement string) Rewrite {
	return Rewrite{Kind: ReplaceParent, Replacement: replacement}
}

// Map applies rewrites, left to right, to each of inputs and returns the
// resulting strings. A later rewrite sees the buffer as modified by earlier
// ones. maxLen bounds each resulting string; inputs or results longer than
// maxLen are truncated to fit in the same style as the join pool.
func Map(inputs []string, maxLen int, rewrites ...Rewrite) []string {
	out := make([]string, len(inputs))
	for i, in := range inputs {
		buf := in
		if len(buf) > maxLen {
			buf = buf[:maxLen]
		}
		for _, rw := range rewrites {
			switch rw.Kind {
			case ReplaceExtension:
				buf = replaceExtension(buf, rw.Replacement)
			case ReplaceParent:
				buf = replaceParent(buf, rw.Replacement)
			}
			if len(buf) > maxLen {
				buf = buf[:maxLen]
			}
		}
		out[i] = buf
	}
	return out
}

func replaceExtension(path, replacement string) string {
	idx := strings.LastIndexByte(path, '.')
	if idx < 0 {
		return path + "." + replacement
	}
	return path[:idx+1] + replacement
}

func replaceParent(path, replacement string) string {
	idx := strings.IndexByte(path, '/')
	if idx < 0 {
		slog.Warn("pathmap: parent replacement on path with no '/', leaving unchanged", "path", path)
		return path
	}
	return replacement + path[idx:]
}
