// Package dictline classifies the lines of a Rime dictionary file and rewrites
// the pinyin field of entry lines.
// Pure functions: line in, line out. No I/O.
package dictline

import (
	"strings"

	"github.com/heartmarshall/detone/internal/tone"
)

// Markers recognised at the start of a line.
const (
	CommentPrefix  = "#"
	DocumentStart  = "---"
	DocumentEnd    = "...\n"
	FieldSeparator = "\t"
	MetaSeparator  = ":"
)

// Field positions within an entry line.
const (
	FieldWord   = 0
	FieldPinyin = 1
)

// Class is the shape of a dictionary line.
type Class string

const (
	ClassStructural Class = "STRUCTURAL" // blank, comment, or YAML document marker
	ClassMetadata   Class = "METADATA"   // key: value header line
	ClassEntry      Class = "ENTRY"      // word<TAB>pinyin[<TAB>weight...]
	ClassMalformed  Class = "MALFORMED"  // has a tab but no pinyin field
	ClassPlain      Class = "PLAIN"      // anything else
)

func (c Class) String() string { return string(c) }

func (c Class) IsValid() bool {
	switch c {
	case ClassStructural, ClassMetadata, ClassEntry, ClassMalformed, ClassPlain:
		return true
	}
	return false
}

// IsHeader reports whether lines of this class belong to the file header
// rather than to the entry table.
func (c Class) IsHeader() bool {
	return c == ClassStructural || c == ClassMetadata
}

// Classify returns the class of line. Checks run in a fixed order because a
// line can match more than one heuristic: structural, then metadata, then tab.
func Classify(line string) Class {
	class, _ := classify(line)
	return class
}

// Transform returns line with tone marks removed from its pinyin field.
// Lines of any class other than ClassEntry are returned unchanged.
func Transform(line string) string {
	out, _ := Process(line)
	return out
}

// Process transforms line and reports the class it was handled as.
func Process(line string) (string, Class) {
	class, fields := classify(line)
	if class != ClassEntry {
		return line, class
	}

	fields[FieldPinyin] = tone.Strip(fields[FieldPinyin])
	return strings.Join(fields, FieldSeparator), class
}

// classify returns the line class and, for entries, the tab-separated fields.
func classify(line string) (Class, []string) {
	if isStructural(line) {
		return ClassStructural, nil
	}

	hasTab := strings.Contains(line, FieldSeparator)
	if !hasTab && strings.Contains(line, MetaSeparator) {
		return ClassMetadata, nil
	}
	if !hasTab {
		return ClassPlain, nil
	}

	// "word\t\n" splits into two fields, but the second holds only the
	// line terminator.
	fields := strings.Split(line, FieldSeparator)
	if len(fields) < 2 || len(fields) == 2 && trimEOL(fields[FieldPinyin]) == "" {
		return ClassMalformed, nil
	}
	return ClassEntry, fields
}

func isStructural(line string) bool {
	return strings.TrimSpace(line) == "" ||
		strings.HasPrefix(line, CommentPrefix) ||
		strings.HasPrefix(line, DocumentStart) ||
		line == DocumentEnd
}

// trimEOL strips a trailing "\n" or "\r\n".
func trimEOL(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}
