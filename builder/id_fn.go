package builder

import (
	"fmt"
	"strings"
)

// IDFn generates a cave name from its zero-based index.
// It must be pure and return a non-empty run of ASCII letters.
type IDFn func(idx int) string

// LetterIDFn returns the lower-case spreadsheet-column name for idx,
// e.g. 0→"a", 25→"z", 26→"aa".
// Complexity: O(log₂₆ idx) time.
// Panics if idx < 0.
func LetterIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("LetterIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('a'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// ExcelColumnIDFn is LetterIDFn in upper case: 0→"A", 26→"AA".
// Every node it names is a large cave regardless of WithLargeEvery.
func ExcelColumnIDFn(idx int) string {
	return strings.ToUpper(LetterIDFn(idx))
}

// PrefixedIDFn returns prefix + LetterIDFn(idx), e.g. "cave" → "cavea", "caveb".
// Panics if prefix is not made of ASCII letters.
func PrefixedIDFn(prefix string) IDFn {
	for i := 0; i < len(prefix); i++ {
		c := prefix[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			panic(fmt.Sprintf("PrefixedIDFn: prefix must be letters only, got %q", prefix))
		}
	}

	return func(idx int) string {
		return prefix + LetterIDFn(idx)
	}
}

// WithLetterIDs resets the ID scheme to LetterIDFn.
func WithLetterIDs() BuilderOption {
	return WithIDScheme(LetterIDFn)
}

// WithPrefixedIDs sets the ID scheme to PrefixedIDFn(prefix).
func WithPrefixedIDs(prefix string) BuilderOption {
	return WithIDScheme(PrefixedIDFn(prefix))
}
