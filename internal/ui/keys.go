package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds the bindings shown in the footer and the help modal.
type KeyMap struct {
	NextField   key.Binding
	Submit      key.Binding
	Modules     key.Binding
	Subsections key.Binding
	Back        key.Binding
	Search      key.Binding
	Scroll      key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the bindings of the app screen.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextField: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "next field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		Modules: key.NewBinding(
			key.WithKeys("1", "2", "3"),
			key.WithHelp("1/2/3", "module"),
		),
		Subsections: key.NewBinding(
			key.WithKeys("[", "]"),
			key.WithHelp("[/]", "section"),
		),
		Back: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "dashboard"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Scroll: key.NewBinding(
			key.WithKeys("pgup", "pgdown"),
			key.WithHelp("pgup/pgdn", "scroll"),
		),
		Help: key.NewBinding(
			key.WithKeys("?", "f1"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextField, k.Submit, k.Modules, k.Subsections, k.Back, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextField, k.Submit, k.Search},
		{k.Modules, k.Subsections, k.Back, k.Scroll},
		{k.Help, k.Quit},
	}
}

// helpMarkdown is the body of the help modal.
func helpMarkdown(k KeyMap) string {
	var b strings.Builder
	b.WriteString("# Launch Access Forecast\n\n")
	b.WriteString("Simulate a product launch, pick analogs and compare payer access scenarios.\n\n")
	b.WriteString("## Keys\n\n| Key | Action |\n|---|---|\n")
	for _, group := range k.FullHelp() {
		for _, bind := range group {
			h := bind.Help()
			b.WriteString("| `" + h.Key + "` | " + h.Desc + " |\n")
		}
	}
	b.WriteString("\n## Pages\n\n")
	b.WriteString("- **Landing**: sign in with any email and password, `ctrl+r` requests access.\n")
	b.WriteString("- **Dashboard**: `/` search, `f` favourite, `p` pin, `n` new scenario, `enter` open.\n")
	b.WriteString("- **Analog Selection**: `space` toggles, `a` selects all, `s` cycles the sort.\n")
	b.WriteString("- **Scenario Comparison**: `a` adds a scenario, `t` switches tab, `l` locks lower safety, `c` channel, `v`/`u` datasets.\n")
	b.WriteString("- **Market Share**: `space` picks brands, `enter` compares, `esc` returns.\n")
	return b.String()
}
