// Package tone maps tone-marked pinyin letters to their toneless base letters.
// The table is built once at init and never mutated.
package tone

// pairs lists toned forms and their replacements in definition order.
// A later pair overrides an earlier one with the same key, so the final
// binding for the toned ü letters is "v", not "ü".
var pairs = [][2]string{
	// a
	{"\u0101", "a"},       // ā
	{"\u00e1", "a"},       // á
	{"\u01ce", "a"},       // ǎ
	{"\u00e0", "a"},       // à
	{"\u0251\u0304", "a"}, // ɑ̄
	{"\u0251\u0301", "a"}, // ɑ́
	{"\u0251\u030c", "a"}, // ɑ̌
	{"\u0251\u0300", "a"}, // ɑ̀

	// e
	{"\u0113", "e"},       // ē
	{"\u00e9", "e"},       // é
	{"\u011b", "e"},       // ě
	{"\u00e8", "e"},       // è
	{"\u00ea\u0304", "e"}, // ê̄
	{"\u1ebf", "e"},       // ế
	{"\u00ea\u030c", "e"}, // ê̌
	{"\u1ec1", "e"},       // ề

	// i
	{"\u012b", "i"}, // ī
	{"\u00ed", "i"}, // í
	{"\u01d0", "i"}, // ǐ
	{"\u00ec", "i"}, // ì

	// o
	{"\u014d", "o"}, // ō
	{"\u00f3", "o"}, // ó
	{"\u01d2", "o"}, // ǒ
	{"\u00f2", "o"}, // ò

	// u
	{"\u016b", "u"}, // ū
	{"\u00fa", "u"}, // ú
	{"\u01d4", "u"}, // ǔ
	{"\u00f9", "u"}, // ù

	// ü
	{"\u01d6", "\u00fc"}, // ǖ
	{"\u01d8", "\u00fc"}, // ǘ
	{"\u01da", "\u00fc"}, // ǚ
	{"\u01dc", "\u00fc"}, // ǜ
	{"\u00fc", "\u00fc"}, // ü

	// v stands in for ü in double-pinyin schemes.
	{"\u01d6", "v"}, // ǖ
	{"\u01d8", "v"}, // ǘ
	{"\u01da", "v"}, // ǚ
	{"\u01dc", "v"}, // ǜ

	// syllabic nasals
	{"\u0144", "n"},  // ń
	{"\u0148", "n"},  // ň
	{"\u01f9", "n"},  // ǹ
	{"\u1e3f", "m"},  // ḿ
	{"m\u0300", "m"}, // m̀
}

var table = build(pairs)

func build(pairs [][2]string) map[string]string {
	m := make(map[string]string, len(pairs))
	for _, p := range pairs {
		m[p[0]] = p[1]
	}
	return m
}

// Lookup returns the toneless form of s, or s itself when s is not a known
// toned letter.
func Lookup(s string) string {
	if base, ok := table[s]; ok {
		return base
	}
	return s
}
