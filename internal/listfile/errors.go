package listfile

import (
	"errors"
	"fmt"
)

// ErrCorruptList matches any CorruptListError via errors.Is.
var ErrCorruptList = errors.New("corrupt list file")

// ParseError reports a line that is not in "NN. text" form. Line is 1-based, 0 when unknown.
type ParseError struct {
	Line int
	Text string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: not a numbered item: %q", e.Line, e.Text)
	}
	return fmt.Sprintf("not a numbered item: %q", e.Text)
}

// CorruptListError wraps the ParseError of the first bad line in a list file.
type CorruptListError struct {
	Path string
	Err  error
}

func (e *CorruptListError) Error() string {
	return fmt.Sprintf("corrupt list file %s: %v", e.Path, e.Err)
}

func (e *CorruptListError) Unwrap() error { return e.Err }

func (e *CorruptListError) Is(target error) bool { return target == ErrCorruptList }

// IndexOutOfRangeError reports an item number outside 1..Count.
type IndexOutOfRangeError struct {
	Index int
	Count int
}

func (e *IndexOutOfRangeError) Error() string {
	if e.Count == 0 {
		return fmt.Sprintf("item %d out of range: list is empty", e.Index)
	}
	return fmt.Sprintf("item %d out of range: list has %d items", e.Index, e.Count)
}

// InvalidArgumentError reports input rejected before the list is touched.
type InvalidArgumentError struct {
	Arg    string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	if e.Arg == "" {
		return "invalid argument: " + e.Reason
	}
	return fmt.Sprintf("invalid argument %q: %s", e.Arg, e.Reason)
}
