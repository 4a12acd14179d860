package app

import (
	"errors"
	"strings"
)

var errBranchName = errors.New("not a valid branch name")

// ValidateBranchName applies the git check-ref-format rules that matter for
// a name typed into a prompt.
func ValidateBranchName(name string) error {
	switch {
	case name == "@",
		strings.HasPrefix(name, "-"),
		strings.HasPrefix(name, "/"),
		strings.HasSuffix(name, "/"),
		strings.HasSuffix(name, "."),
		strings.HasSuffix(name, ".lock"),
		strings.Contains(name, ".."),
		strings.Contains(name, "//"),
		strings.Contains(name, "@{"),
		strings.ContainsAny(name, " ~^:?*[\\\t"):
		return errBranchName
	}
	for _, part := range strings.Split(name, "/") {
		if strings.HasPrefix(part, ".") {
			return errBranchName
		}
	}
	for _, r := range name {
		if r < 0x20 || r == 0x7f {
			return errBranchName
		}
	}
	return nil
}
