package tone

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Strip replaces every toned letter in s with its base letter.
//
// The input is walked one normalization segment at a time (a starter plus
// any combining marks that follow it). A segment is resolved by, in order:
//   - the raw segment as a table key (e.g. "m" + U+0300),
//   - its NFC form as a table key (e.g. "i" + U+030C resolves like "ǐ"),
//   - a per-rune lookup, which leaves unknown runes untouched.
func Strip(s string) string {
	if s == "" {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for len(s) > 0 {
		n := norm.NFC.NextBoundaryInString(s, true)
		if n <= 0 || n > len(s) {
			n = len(s)
		}
		writeSegment(&b, s[:n])
		s = s[n:]
	}
	return b.String()
}

func writeSegment(b *strings.Builder, seg string) {
	if base, ok := table[seg]; ok {
		b.WriteString(base)
		return
	}

	if utf8.RuneCountInString(seg) > 1 {
		if base, ok := table[norm.NFC.String(seg)]; ok {
			b.WriteString(base)
			return
		}
	}

	for _, r := range seg {
		b.WriteString(Lookup(string(r)))
	}
}
