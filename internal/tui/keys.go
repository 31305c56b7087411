package tui

import (
	"slices"

	"github.com/charmbracelet/bubbles/key"

	"github.com/Makepad-fr/menu/internal/model"
	"github.com/Makepad-fr/menu/internal/session"
)

// homeKeyMap is the home screen's bindings. Chef-only bindings are disabled
// for other roles so they drop out of the help line.
type homeKeyMap struct {
	Up, Down key.Binding
	Filter   key.Binding
	Add      key.Binding
	Remove   key.Binding
	Reset    key.Binding
	Help     key.Binding
	Logout   key.Binding
	Quit     key.Binding
}

func newHomeKeyMap() homeKeyMap {
	return homeKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
		Filter: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter")),
		Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add dish")),
		Remove: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "remove dish")),
		Reset:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "reset menu")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Logout: key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "logout")),
		Quit:   key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

func (k *homeKeyMap) setRole(r model.Role) {
	k.Add.SetEnabled(r.CanEdit())
	k.Remove.SetEnabled(r.CanEdit())
	k.Reset.SetEnabled(r.CanEdit())
}

// chefAction maps a key to the chef-only action it triggers, whether or not
// the binding is enabled for the current role.
func (k homeKeyMap) chefAction(keyName string) (session.Action, bool) {
	for act, b := range map[session.Action]key.Binding{
		session.ActionAdd:    k.Add,
		session.ActionRemove: k.Remove,
		session.ActionReset:  k.Reset,
	} {
		if slices.Contains(b.Keys(), keyName) {
			return act, true
		}
	}
	return "", false
}

func (k homeKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Filter, k.Add, k.Remove, k.Reset, k.Help, k.Logout, k.Quit}
}

func (k homeKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Filter, k.Help},
		{k.Add, k.Remove, k.Reset},
		{k.Logout, k.Quit},
	}
}
