package window

import "strings"

// Separator marks a key as already fully qualified.
const Separator = "."

// DefaultNamespace prefixes unqualified keys.
const DefaultNamespace = "views"

// IsQualified reports whether key already carries a namespace.
func IsQualified(key string) bool {
	return strings.Contains(key, Separator)
}

// QualifiedName returns namespace.key, or key unchanged when it is already
// qualified.
func QualifiedName(namespace, key string) string {
	if IsQualified(key) || namespace == "" {
		return key
	}
	return namespace + Separator + key
}

// fold normalizes a key or qualified name for case-insensitive comparison.
func fold(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
