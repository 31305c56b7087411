package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/menu/internal/session"
)

var (
	removeBind = key.NewBinding(key.WithKeys("d", "enter"), key.WithHelp("d/enter", "remove"))
	backBind   = key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back"))
)

func removeHelpKeys() []key.Binding { return []key.Binding{removeBind, backBind} }

func (a App) updateRemove(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.dishes.FilterState() == list.Filtering {
		var cmd tea.Cmd
		a.dishes, cmd = a.dishes.Update(msg)
		return a, cmd
	}

	switch {
	case key.Matches(msg, backBind):
		if msg.String() == "esc" && a.dishes.FilterState() == list.FilterApplied {
			a.dishes.ResetFilter()
			return a, nil
		}
		a.screen = screenHome
		a.syncHome()
		return a, nil
	case key.Matches(msg, removeBind):
		return a, a.removeSelected()
	}

	var cmd tea.Cmd
	a.dishes, cmd = a.dishes.Update(msg)
	return a, cmd
}

// removeSelected drops the highlighted dish from the menu and refreshes the list.
func (a *App) removeSelected() tea.Cmd {
	it, ok := a.dishes.SelectedItem().(dishItem)
	if !ok {
		return nil
	}
	reg := a.registry()
	if reg == nil || !a.authorize(session.ActionRemove) {
		return nil
	}
	if reg.Remove(it.dish.ID) {
		a.setFlash("Removed "+it.dish.Name, false)
	}

	idx := a.dishes.Index()
	cmd := a.dishes.SetItems(dishItems(reg.Dishes()))
	if n := len(a.dishes.VisibleItems()); idx >= n && n > 0 {
		a.dishes.Select(n - 1)
	}
	return cmd
}

func (a App) viewRemove() string {
	body := a.dishes.View()
	if len(a.dishes.Items()) == 0 {
		body = joinLines(
			titleStyle.Render("Remove Dishes"),
			"",
			mutedStyle.Render("The menu is empty and there is nothing to remove."),
			"",
			helpStyle.Render("esc/b back to menu"),
		)
	}
	return joinLines(
		mutedStyle.Render("Click the remove button to delete a dish from the menu."),
		a.flashLine(),
		body,
	)
}
