package listfile

import (
	"fmt"
	"regexp"
	"strconv"
)

// Entry is one numbered item of a list.
type Entry struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

var lineRe = regexp.MustCompile(`^(\d+)\. (.*)$`)

// Decode parses a single list line ("07. water plants") into an Entry.
//
// The body is everything after the first ". " following the numeral; it is not unescaped.
func Decode(line string) (Entry, error) {
	m := lineRe.FindStringSubmatch(line)
	if m == nil {
		return Entry{}, &ParseError{Text: line}
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < 1 {
		return Entry{}, &ParseError{Text: line}
	}
	return Entry{Index: n, Text: m[2]}, nil
}

// Encode formats an Entry back into its line form, zero-padding the index to two digits.
func Encode(e Entry) string {
	return fmt.Sprintf("%02d. %s", e.Index, e.Text)
}
