// Package dfs provides string-slice helpers shared by Path and PathSet.
package dfs

import (
	"strings"
)

// sigSep joins path elements into a signature. Node names are letters only,
// so a comma can never occur inside a name and signatures are unambiguous.
const sigSep = ","

// Compare lexicographically compares two string slices a and b.
// Returns -1 if a < b, 0 if equal, +1 if a > b.
// Comparison proceeds element-by-element; a proper prefix sorts first.
// Time Complexity: O(min(len(a), len(b))).
func Compare(a, b []string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] < b[i] {
			return -1 // first differing element a[i] < b[i]
		} else if a[i] > b[i] {
			return 1 // first differing element a[i] > b[i]
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}

	return 0 // all elements equal
}

// JoinSig concatenates the elements of c with commas, producing a single string signature.
// Time Complexity: O(n + total length of elements).
func JoinSig(c []string) string {
	return strings.Join(c, sigSep)
}
