package listfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"pgregory.net/rapid"
)

var fileCounter atomic.Int64

func itemTextGenerator() *rapid.Generator[string] {
	return rapid.StringMatching(`[A-Za-z0-9 .,!?-]{0,30}`)
}

// checkContiguous asserts the persisted file holds indices 1..n in order.
func checkContiguous(t *rapid.T, s Store, n int) {
	b, err := os.ReadFile(s.Path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if n == 0 {
		if len(b) != 0 {
			t.Fatalf("expected empty file, got %q", string(b))
		}
		return
	}
	if strings.HasSuffix(string(b), "\n") {
		t.Fatalf("trailing newline in %q", string(b))
	}
	lines := strings.Split(string(b), "\n")
	if len(lines) != n {
		t.Fatalf("expected %d lines, got %d", n, len(lines))
	}
	for i, ln := range lines {
		e, err := Decode(ln)
		if err != nil {
			t.Fatalf("line %d: %v", i+1, err)
		}
		if e.Index != i+1 {
			t.Fatalf("line %d carries index %d", i+1, e.Index)
		}
	}
}

func TestRenumberingInvariantRapid(t *testing.T) {
	dir := t.TempDir()
	rapid.Check(t, func(rt *rapid.T) {
		p := filepath.Join(dir, fmt.Sprintf("list-%d.txt", fileCounter.Add(1)))
		s := Store{Path: p}
		if err := s.Reset(); err != nil {
			rt.Fatalf("reset: %v", err)
		}

		var model []string
		steps := rapid.IntRange(1, 30).Draw(rt, "steps")
		for i := 0; i < steps; i++ {
			if len(model) == 0 || rapid.Bool().Draw(rt, "add") {
				text := itemTextGenerator().Draw(rt, "text")
				e, _, err := s.Add(text)
				if err != nil {
					rt.Fatalf("add: %v", err)
				}
				model = append(model, text)
				if e.Index != len(model) {
					rt.Fatalf("added index %d, want %d", e.Index, len(model))
				}
			} else {
				idx := rapid.SliceOfN(rapid.IntRange(1, len(model)), 1, 4).Draw(rt, "indices")
				removed, _, err := s.Delete(idx)
				if err != nil {
					rt.Fatalf("delete %v: %v", idx, err)
				}
				drop := map[int]bool{}
				for _, i := range idx {
					drop[i] = true
				}
				if len(removed) != len(drop) {
					rt.Fatalf("removed %d entries, want %d", len(removed), len(drop))
				}
				kept := model[:0:0]
				for i, text := range model {
					if !drop[i+1] {
						kept = append(kept, text)
					}
				}
				model = kept
			}
			checkContiguous(rt, s, len(model))
		}

		got, err := s.Load()
		if err != nil {
			rt.Fatalf("load: %v", err)
		}
		for i, e := range got {
			if e.Text != model[i] {
				rt.Fatalf("entry %d text %q, want %q", i+1, e.Text, model[i])
			}
		}
	})
}
