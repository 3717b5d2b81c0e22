package main

import (
	"os"
	"strings"

	"todo-notes/internal/cli"
)

// legacyFlags maps the flag-style invocations of earlier releases to subcommands.
var legacyFlags = map[string]struct {
	sub       string
	takesText bool
}{
	"-a": {"add", true}, "--add": {"add", true},
	"-d": {"delete", true}, "--delete": {"delete", true},
	"-l": {"list", false}, "--list": {"list", false},
	"-r": {"reset", false}, "--reset": {"reset", false},
}

func rewriteLegacyFlagArgs(argv []string) []string {
	// Convenience: `todo -a "text"` works like `todo add "text"`.
	//
	// Cobra would reject these as unknown flags, so we rewrite argv before parsing. Only the
	// first positional slot is considered; persistent flags in front of it are skipped.
	if len(argv) < 2 {
		return argv
	}

	valueFlags := map[string]bool{
		"-t":           true,
		"--target":     true,
		"--config-dir": true,
		"--format":     true,
		"--width":      true,
	}

	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		if a == "" || a == "--" {
			return argv
		}

		name, value, hasValue := strings.Cut(a, "=")
		if lf, ok := legacyFlags[name]; ok {
			out := make([]string, 0, len(argv)+1)
			out = append(out, argv[:i]...)
			out = append(out, lf.sub)
			if lf.takesText && hasValue {
				out = append(out, value)
			}
			out = append(out, argv[i+1:]...)
			return out
		}

		if strings.HasPrefix(a, "-") {
			if !hasValue && valueFlags[a] {
				i++ // skip value if present
			}
			continue
		}

		// First positional token is a subcommand; leave it alone.
		return argv
	}

	return argv
}

func main() {
	args := rewriteLegacyFlagArgs(os.Args)
	os.Exit(cli.Run(args[1:], os.Stdout, os.Stderr))
}
