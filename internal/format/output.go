package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

const (
	Text = "text"
	JSON = "json"
	EDN  = "edn"
)

// Validate normalizes a --format value.
func Validate(format string) (string, error) {
	switch f := strings.ToLower(strings.TrimSpace(format)); f {
	case "", Text:
		return Text, nil
	case JSON, EDN:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format: %s (want text, json or edn)", format)
	}
}

// Write writes machine-readable output.
//
// Supported formats:
// - json
// - edn
func Write(w io.Writer, v any, format string, pretty bool) error {
	switch format {
	case JSON:
		return WriteJSON(w, v, pretty)
	case EDN:
		return WriteEDN(w, v, pretty)
	default:
		return fmt.Errorf("format %s is not machine-readable", format)
	}
}

// WriteJSON writes one JSON document followed by a newline.
func WriteJSON(w io.Writer, v any, pretty bool) error {
	var b []byte
	var err error
	if pretty {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(b))
	return err
}
