package config

import (
	"strings"

	"todo-notes/internal/gitrepo"
)

const (
	SourceFlag    = "flag"
	SourceEnv     = "env"
	SourceRepo    = "repo"
	SourceDefault = "default"
)

// ListIdentity names the active list and records how it was chosen.
type ListIdentity struct {
	Name     string `json:"name"`
	Source   string `json:"source"`
	RepoRoot string `json:"repoRoot,omitempty"`
}

// ResolveActiveList picks the active list name.
//
// Order: explicit override, TODO_NOTES_LIST, the enclosing git repository's name
// (found by walking up from cwd), then defaultList (DEFAULT when empty).
func ResolveActiveList(cwd string, env Env, override, defaultList string) (ListIdentity, error) {
	if env == nil {
		env = OSEnv
	}
	if strings.TrimSpace(override) != "" {
		n, err := NormalizeListName(override)
		if err != nil {
			return ListIdentity{}, err
		}
		return ListIdentity{Name: n, Source: SourceFlag}, nil
	}
	if v := strings.TrimSpace(env(EnvList)); v != "" {
		n, err := NormalizeListName(v)
		if err != nil {
			return ListIdentity{}, err
		}
		return ListIdentity{Name: n, Source: SourceEnv}, nil
	}

	if strings.TrimSpace(cwd) != "" {
		root, ok, err := gitrepo.FindRoot(cwd)
		if err != nil {
			return ListIdentity{}, err
		}
		if ok {
			if n, err := NormalizeListName(gitrepo.ListName(root)); err == nil {
				return ListIdentity{Name: n, Source: SourceRepo, RepoRoot: root}, nil
			}
		}
	}

	n, err := NormalizeListName(defaultList)
	if err != nil {
		n = DefaultListName
	}
	return ListIdentity{Name: n, Source: SourceDefault}, nil
}

// ActiveList resolves the active list name using this config's default list.
func (c *Config) ActiveList(cwd string, env Env, override string) (ListIdentity, error) {
	return ResolveActiveList(cwd, env, override, c.defaultList())
}

// Resolve resolves the active list and makes sure its file exists.
func (c *Config) Resolve(cwd string, env Env, override string) (id ListIdentity, path string, created bool, err error) {
	id, err = c.ActiveList(cwd, env, override)
	if err != nil {
		return ListIdentity{}, "", false, err
	}
	path, created, err = c.EnsureList(id.Name)
	if err != nil {
		return ListIdentity{}, "", false, err
	}
	return id, path, created, nil
}
