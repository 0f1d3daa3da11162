package extract

import (
	"slices"
	"unicode/utf16"
)

// Set is an ordered list of icon tokens. Order is meaningful: it is the order
// tokens were found in the source unless Sorted was applied.
type Set []string

// Unique drops later duplicates, keeping first-occurrence order.
func (s Set) Unique() Set {
	seen := make(map[string]bool, len(s))
	out := make(Set, 0, len(s))
	for _, icon := range s {
		if seen[icon] {
			continue
		}
		seen[icon] = true
		out = append(out, icon)
	}
	return out
}

// Sorted returns a copy ordered by UTF-16 code units, the order a browser's
// default Array sort produces. Duplicates are kept and the receiver is left
// untouched.
func (s Set) Sorted() Set {
	out := make(Set, len(s))
	copy(out, s)
	slices.SortStableFunc(out, compareUTF16)
	return out
}

// Duplicates counts tokens that repeat an earlier one.
func (s Set) Duplicates() int {
	return len(s) - len(s.Unique())
}

// compareUTF16 differs from byte order only when a character above U+FFFF
// (a surrogate pair) meets one in U+E000..U+FFFF.
func compareUTF16(a, b string) int {
	if a == b {
		return 0
	}
	return slices.Compare(utf16.Encode([]rune(a)), utf16.Encode([]rune(b)))
}
