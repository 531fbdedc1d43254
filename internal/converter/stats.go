package converter

import "github.com/heartmarshall/detone/internal/dictline"

// Stats counts what happened to the lines of one file.
// Total always equals Converted + Header + Skipped.
type Stats struct {
	Total     int // all lines
	Converted int // entry lines whose pinyin changed
	Header    int // structural and metadata lines
	Skipped   int // everything else, left unchanged
}

// Record counts one line given its class and whether its text changed.
func (s *Stats) Record(class dictline.Class, changed bool) {
	s.Total++
	switch {
	case class == dictline.ClassEntry && changed:
		s.Converted++
	case class.IsHeader():
		s.Header++
	default:
		s.Skipped++
	}
}

// Add accumulates o into s.
func (s *Stats) Add(o Stats) {
	s.Total += o.Total
	s.Converted += o.Converted
	s.Header += o.Header
	s.Skipped += o.Skipped
}
