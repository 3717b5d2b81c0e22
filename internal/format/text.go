package format

import (
	"fmt"
	"strings"

	"todo-notes/internal/config"
	"todo-notes/internal/journal"
	"todo-notes/internal/listfile"

	xansi "github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	indexStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#9D9BFF"}).Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#8A8A8A", Dark: "#6C6C6C"})
	activeStyle = lipgloss.NewStyle().Bold(true)
)

// ConfigureColor disables styling when noColor is set or the environment asks for it
// (NO_COLOR, CLICOLOR=0). termenv already falls back to plain text when stdout is not a TTY.
func ConfigureColor(noColor bool) {
	if noColor || termenv.EnvNoColor() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// Entries renders list lines in file form ("01. text"). Lines wider than width are
// truncated with an ellipsis; width <= 0 disables truncation.
func Entries(entries []listfile.Entry, width int) string {
	var b strings.Builder
	for _, e := range entries {
		line := listfile.Encode(e)
		num, body, _ := strings.Cut(line, " ")
		out := indexStyle.Render(num) + " " + body
		if width > 0 && xansi.StringWidth(out) > width {
			out = xansi.Truncate(out, width, "…")
		}
		b.WriteString(out)
		b.WriteByte('\n')
	}
	return b.String()
}

func Added(e listfile.Entry) string {
	return "Added new item: " + listfile.Encode(e) + "\n"
}

func Deleted(removed []listfile.Entry) string {
	nums := make([]string, len(removed))
	for i, e := range removed {
		nums[i] = fmt.Sprint(e.Index)
	}
	label := "item"
	if len(removed) != 1 {
		label = "items"
	}
	return fmt.Sprintf("Deleted list %s: %s\n", label, strings.Join(nums, ", "))
}

// Lists renders registered lists, marking the active one with "*".
func Lists(refs []config.ListRef, active string) string {
	var b strings.Builder
	for _, r := range refs {
		mark := " "
		name := r.Name
		if r.Name == active {
			mark = "*"
			name = activeStyle.Render(name)
		}
		fmt.Fprintf(&b, "%s %s %s\n", mark, name, mutedStyle.Render(r.Path))
	}
	return b.String()
}

// Events renders journal events, one per line.
func Events(evs []journal.Event) string {
	var b strings.Builder
	for _, ev := range evs {
		ts := mutedStyle.Render(ev.At.Local().Format("2006-01-02 15:04"))
		switch ev.Op {
		case journal.OpReset:
			fmt.Fprintf(&b, "%s %s %s\n", ts, ev.List, ev.Op)
		default:
			fmt.Fprintf(&b, "%s %s %s %s\n", ts, ev.List, ev.Op, listfile.Encode(listfile.Entry{Index: ev.Index, Text: ev.Text}))
		}
	}
	return b.String()
}
