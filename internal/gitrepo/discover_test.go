package gitrepo

import (
	"os"
	"path/filepath"
	"testing"
)

func mkdir(t *testing.T, p string) {
	t.Helper()
	if err := os.MkdirAll(p, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", p, err)
	}
}

func TestFindRoot_GitDir(t *testing.T) {
	root := filepath.Join(t.TempDir(), "myproj")
	mkdir(t, filepath.Join(root, ".git"))
	sub := filepath.Join(root, "a", "b")
	mkdir(t, sub)

	got, ok, err := FindRoot(sub)
	if err != nil {
		t.Fatalf("FindRoot: %v", err)
	}
	if !ok || got != root {
		t.Fatalf("expected root %q, got %q (ok=%v)", root, got, ok)
	}
}

func TestFindRoot_GitdirFile(t *testing.T) {
	base := t.TempDir()
	wt := filepath.Join(base, "worktree")
	mkdir(t, wt)
	if err := os.WriteFile(filepath.Join(wt, ".git"), []byte("gitdir: ../main/.git/worktrees/wt\n"), 0o644); err != nil {
		t.Fatalf("write .git file: %v", err)
	}

	got, ok, err := FindRoot(wt)
	if err != nil {
		t.Fatalf("FindRoot: %v", err)
	}
	if !ok || got != wt {
		t.Fatalf("expected root %q, got %q (ok=%v)", wt, got, ok)
	}
}

func TestFindRoot_IgnoresBogusGitFile(t *testing.T) {
	base := t.TempDir()
	if err := os.WriteFile(filepath.Join(base, ".git"), []byte("not a pointer\n"), 0o644); err != nil {
		t.Fatalf("write .git file: %v", err)
	}
	_, ok, err := FindRoot(base)
	if err != nil {
		t.Fatalf("FindRoot: %v", err)
	}
	// A parent of the temp dir could in theory be a repo; only assert we did not stop at base.
	if ok {
		got, _, _ := FindRoot(base)
		if got == base {
			t.Fatalf("bogus .git file should not mark a root")
		}
	}
}

func TestHasGitdirPointer(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    bool
	}{
		{"worktree", "gitdir: /repo/.git/worktrees/wt\n", true},
		{"leading blank lines", "\n\r\ngitdir: ../x\n", true},
		{"upper case key", "GITDIR: ../x", true},
		{"empty target", "gitdir:   \n", false},
		{"other first line", "ref: refs/heads/main\ngitdir: ../x\n", false},
		{"empty file", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := filepath.Join(t.TempDir(), ".git")
			if err := os.WriteFile(p, []byte(tc.content), 0o644); err != nil {
				t.Fatalf("write .git file: %v", err)
			}
			got, err := hasGitdirPointer(p)
			if err != nil {
				t.Fatalf("hasGitdirPointer: %v", err)
			}
			if got != tc.want {
				t.Fatalf("hasGitdirPointer(%q) = %v, want %v", tc.content, got, tc.want)
			}
		})
	}
}

func TestFindRoot_EmptyStart(t *testing.T) {
	if _, _, err := FindRoot("  "); err == nil {
		t.Fatalf("expected error for empty start dir")
	}
}

func TestListName(t *testing.T) {
	cases := map[string]string{
		"/home/u/src/todo-notes": "TODO-NOTES",
		"/home/u/src/My.Repo/":   "MY.REPO",
		"/":                      "",
	}
	for in, want := range cases {
		if got := ListName(in); got != want {
			t.Fatalf("ListName(%q) = %q, want %q", in, got, want)
		}
	}
}
