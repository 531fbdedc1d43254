package tone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// --- Lookup ---

func TestLookup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"a macron", "\u0101", "a"},
		{"a acute", "\u00e1", "a"},
		{"a caron", "\u01ce", "a"},
		{"a grave", "\u00e0", "a"},
		{"alpha macron", "\u0251\u0304", "a"},
		{"alpha grave", "\u0251\u0300", "a"},
		{"e macron", "\u0113", "e"},
		{"e acute", "\u00e9", "e"},
		{"e caron", "\u011b", "e"},
		{"e grave", "\u00e8", "e"},
		{"e circumflex macron", "\u00ea\u0304", "e"},
		{"e circumflex acute", "\u1ebf", "e"},
		{"e circumflex caron", "\u00ea\u030c", "e"},
		{"e circumflex grave", "\u1ec1", "e"},
		{"i macron", "\u012b", "i"},
		{"i acute", "\u00ed", "i"},
		{"i caron", "\u01d0", "i"},
		{"i grave", "\u00ec", "i"},
		{"o macron", "\u014d", "o"},
		{"o acute", "\u00f3", "o"},
		{"o caron", "\u01d2", "o"},
		{"o grave", "\u00f2", "o"},
		{"u macron", "\u016b", "u"},
		{"u acute", "\u00fa", "u"},
		{"u caron", "\u01d4", "u"},
		{"u grave", "\u00f9", "u"},
		{"n acute", "\u0144", "n"},
		{"n caron", "\u0148", "n"},
		{"n grave", "\u01f9", "n"},
		{"m acute", "\u1e3f", "m"},
		{"m grave", "m\u0300", "m"},
		{"plain u umlaut", "\u00fc", "\u00fc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Lookup(tt.input))
		})
	}
}

func TestLookup_TonedUmlautResolvesToV(t *testing.T) {
	t.Parallel()

	for _, c := range []string{"\u01d6", "\u01d8", "\u01da", "\u01dc"} {
		assert.Equal(t, "v", Lookup(c), "Lookup(%q)", c)
	}
}

func TestLookup_UnknownIsIdentity(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"a", "v", "z", "A", "1", " ", "\t", "\n", "'",
		"你", "好", "词",
		"\u00c1",  // uppercase is not in the table
		"\u00e2",  // circumflex alone carries no tone
		"\u0304",  // bare combining macron
		"i\u030c", // decomposed forms are not keys
		"",
	}
	for _, in := range inputs {
		assert.Equal(t, in, Lookup(in), "Lookup(%q)", in)
	}
}

func TestBuild_LaterPairWins(t *testing.T) {
	t.Parallel()

	m := build([][2]string{{"x", "1"}, {"y", "2"}, {"x", "3"}})

	assert.Len(t, m, 2)
	assert.Equal(t, "3", m["x"])
	assert.Equal(t, "2", m["y"])
}

func TestTable_EveryValueIsUntoned(t *testing.T) {
	t.Parallel()

	for k, v := range table {
		assert.Equal(t, v, Lookup(v), "value of %q must map to itself", k)
	}
}
