package gitrepo

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// FindRoot walks up from start and returns the working tree root: the first directory
// holding a .git directory, or a .git file with a gitdir pointer (worktrees/submodules).
// It does not invoke the git binary.
func FindRoot(start string) (root string, ok bool, err error) {
	dir := filepath.Clean(strings.TrimSpace(start))
	if dir == "" || dir == "." {
		return "", false, errors.New("empty start dir")
	}

	for {
		candidate := filepath.Join(dir, ".git")
		st, statErr := os.Stat(candidate)
		switch {
		case statErr == nil && st.IsDir():
			return dir, true, nil
		case statErr == nil && !st.IsDir():
			ptr, err := hasGitdirPointer(candidate)
			if err != nil {
				return "", false, err
			}
			if ptr {
				return dir, true, nil
			}
		default:
			// keep walking up
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// ListName derives a list name from a repository root: its upper-cased base name.
func ListName(root string) string {
	base := filepath.Base(filepath.Clean(root))
	if base == "." || base == string(filepath.Separator) {
		return ""
	}
	return strings.ToUpper(base)
}

// hasGitdirPointer reports whether the .git file at path starts with a non-empty
// "gitdir:" line, as git writes for worktrees and submodules.
func hasGitdirPointer(path string) (bool, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}
	first, _, _ := strings.Cut(strings.TrimLeft(string(b), " \t\r\n"), "\n")
	key, target, found := strings.Cut(first, ":")
	if !found || !strings.EqualFold(strings.TrimSpace(key), "gitdir") {
		return false, nil
	}
	return strings.TrimSpace(target) != "", nil
}
