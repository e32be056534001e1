package rangestr

import (
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format renders s with inclusive endpoints: {0,5} {8,9} becomes "0-4,8".
// Parse reads the result back with the same delimiter only if the delimiter
// can't be mistaken for a sign; with "-", negative endpoints render as
// "-5--3", which Parse rejects. Use a delimiter such as ".." for those.
func Format(s RangeSet, delimiter string) string {
	var b strings.Builder
	for i, r := range s {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatInt(r.Low, 10))
		if r.High-r.Low > 1 {
			b.WriteString(delimiter)
			b.WriteString(strconv.FormatInt(r.High-1, 10))
		}
	}
	return b.String()
}

// MarshalYAML encodes r as an inclusive [first, last] pair.
func (r Interval) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, n := range [...]int64{r.Low, r.High - 1} {
		node.Content = append(node.Content, &yaml.Node{
			Kind:  yaml.ScalarNode,
			Value: strconv.FormatInt(n, 10),
		})
	}
	return node, nil
}

// FormatYAML renders s as a YAML list of inclusive [first, last] pairs.
func FormatYAML(s RangeSet) ([]byte, error) {
	if len(s) == 0 {
		return []byte("[]\n"), nil
	}
	return yaml.Marshal([]Interval(s))
}
