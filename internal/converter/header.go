package converter

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/detone/internal/dictline"
)

// Header holds the descriptive fields of a dictionary's YAML header.
// It is informational only and never affects conversion.
type Header struct {
	Name    string
	Version string
	Sort    string
}

// ParseHeader decodes the YAML document between the first "---" line and the
// next "..." line. ok is false when lines contain no such block.
func ParseHeader(lines []string) (h Header, ok bool, err error) {
	start := -1
	for i, line := range lines {
		if start < 0 {
			if strings.HasPrefix(line, dictline.DocumentStart) {
				start = i
			}
			continue
		}
		if strings.TrimRight(line, "\r\n") == "..." {
			h, err = decodeHeader(lines[start+1 : i])
			return h, true, err
		}
	}
	return Header{}, false, nil
}

func decodeHeader(lines []string) (Header, error) {
	var raw map[string]any
	if err := yaml.Unmarshal([]byte(strings.Join(lines, "")), &raw); err != nil {
		return Header{}, fmt.Errorf("decode header: %w", err)
	}
	return Header{
		Name:    scalar(raw["name"]),
		Version: scalar(raw["version"]),
		Sort:    scalar(raw["sort"]),
	}, nil
}

// scalar renders a decoded YAML scalar as text. Collections yield "".
func scalar(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case time.Time:
		return v.Format(time.DateOnly)
	case int, int64, uint64, float64, bool:
		return fmt.Sprint(v)
	default:
		return ""
	}
}
