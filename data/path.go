package data

import "strings"

// Separator divides path segments. Entry paths are slash-separated
// regardless of the host platform.
const Separator = "/"

// FoldPath returns the canonical case-insensitive form of a path.
// All index keys and path comparisons use the folded form; the entries
// themselves keep their original casing.
func FoldPath(path string) string {
	return strings.ToLower(path)
}

// EqualPath checks if two paths are the same ignoring case.
func EqualPath(a, b string) bool {
	return strings.EqualFold(a, b)
}

// HasPathPrefix checks if path equals prefix or continues it at a
// segment boundary. Comparison is case-insensitive, so "/Root/A" is
// under "/root", while "/root/abc" is never under "/root/a".
func HasPathPrefix(path, prefix string) bool {
	path = FoldPath(path)
	prefix = FoldPath(strings.TrimSuffix(prefix, Separator))

	// Root matches everything
	if prefix == "" {
		return true
	}

	// Exact match
	if path == prefix {
		return true
	}

	// Check if path starts with prefix followed by a separator
	return strings.HasPrefix(path, prefix+Separator)
}

// ReplacePathPrefix rewrites the leading oldPrefix of path to newPrefix,
// joining prefix and remainder with exactly one separator no matter how
// either side is terminated. The prefix match is case-insensitive; the
// remainder keeps its original casing. Paths outside oldPrefix are
// returned unchanged.
func ReplacePathPrefix(path, oldPrefix, newPrefix string) string {
	oldPrefix = strings.TrimSuffix(oldPrefix, Separator)
	if !HasPathPrefix(path, oldPrefix) {
		return path
	}

	rest := strings.TrimPrefix(path[len(oldPrefix):], Separator)
	newPrefix = strings.TrimSuffix(newPrefix, Separator)
	if rest == "" {
		return newPrefix
	}

	return newPrefix + Separator + rest
}
