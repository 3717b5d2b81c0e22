// Package listfile reads and rewrites numbered plain-text task lists.
//
// A list file holds one item per line ("01. buy milk"). Every mutation loads the
// whole file, edits it in memory and replaces the file atomically, keeping item
// numbers contiguous from 1.
package listfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/natefinch/atomic"
)

// Store is a list file on disk. The zero value is not usable; Path must be set.
type Store struct {
	Path string
}

// Load reads every entry of the list in file order.
func (s Store) Load() ([]Entry, error) {
	b, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read list: %w", err)
	}
	lines := splitLines(string(b))
	out := make([]Entry, 0, len(lines))
	for i, ln := range lines {
		e, err := Decode(ln)
		if err != nil {
			var pe *ParseError
			if errors.As(err, &pe) {
				pe.Line = i + 1
			}
			return nil, &CorruptListError{Path: s.Path, Err: err}
		}
		out = append(out, e)
	}
	return out, nil
}

// Add appends text as the next numbered item and returns it with the resulting list.
func (s Store) Add(text string) (Entry, []Entry, error) {
	if strings.ContainsAny(text, "\r\n") {
		return Entry{}, nil, &InvalidArgumentError{Arg: text, Reason: "item text must be a single line"}
	}
	entries, err := s.Load()
	if err != nil {
		return Entry{}, nil, err
	}
	entries = append(entries, Entry{Text: text})
	if err := s.save(entries); err != nil {
		return Entry{}, nil, err
	}
	return entries[len(entries)-1], entries, nil
}

// Delete removes the items at the given 1-based positions and renumbers the rest.
//
// Duplicate positions count once. Removed entries come back in ascending order of
// their old index. Nothing is written unless every position is valid.
func (s Store) Delete(indices []int) (removed []Entry, remaining []Entry, err error) {
	if len(indices) == 0 {
		return nil, nil, &InvalidArgumentError{Reason: "no item numbers given"}
	}
	entries, err := s.Load()
	if err != nil {
		return nil, nil, err
	}

	want := slices.Clone(indices)
	slices.Sort(want)
	want = slices.Compact(want)
	if want[0] < 1 {
		return nil, nil, &IndexOutOfRangeError{Index: want[0], Count: len(entries)}
	}
	if last := want[len(want)-1]; last > len(entries) {
		return nil, nil, &IndexOutOfRangeError{Index: last, Count: len(entries)}
	}

	// Highest first so earlier removals never shift a pending position.
	removed = make([]Entry, len(want))
	for i := len(want) - 1; i >= 0; i-- {
		pos := want[i] - 1
		removed[i] = entries[pos]
		entries = slices.Delete(entries, pos, pos+1)
	}

	if err := s.save(entries); err != nil {
		return nil, nil, err
	}
	return removed, entries, nil
}

// Reset empties the list, creating the file if it does not exist.
func (s Store) Reset() error {
	return s.save(nil)
}

// save renumbers entries by position and writes them. Gaps or repeats left in a
// hand-edited file are fixed on the next mutation.
func (s Store) save(entries []Entry) error {
	lines := make([]string, len(entries))
	for i := range entries {
		entries[i].Index = i + 1
		lines[i] = Encode(entries[i])
	}
	return writeFile(s.Path, strings.Join(lines, "\n"))
}

// writeFile replaces path with content via a temp file and rename.
// atomic.WriteFile carries the old file's mode over to the replacement.
func writeFile(path, content string) error {
	if err := atomic.WriteFile(path, strings.NewReader(content)); err != nil {
		return fmt.Errorf("write list %s: %w", filepath.Base(path), err)
	}
	return nil
}

func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
