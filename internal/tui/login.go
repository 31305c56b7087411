package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/menu/internal/menu"
	"github.com/Makepad-fr/menu/internal/model"
	"github.com/Makepad-fr/menu/internal/session"
)

func (a App) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return a, tea.Quit
	case "enter":
		a.login()
		return a, nil
	}
	var cmd tea.Cmd
	a.roles, cmd = a.roles.Update(msg)
	return a, cmd
}

// login starts a session for the highlighted role with the carried menu.
func (a *App) login() {
	it, ok := a.roles.SelectedItem().(roleItem)
	if !ok {
		return
	}
	s, err := session.Login(string(it.role), a.carried, a.opts...)
	if err != nil {
		a.logger.Error().Err(err).Msg("login failed")
		if errors.Is(err, menu.ErrPartialImport) {
			// Refused under the reject policy; keep the menu so quitting hands it back intact.
			a.setFlash(err.Error()+" (menu kept, nobody can log in until it is fixed)", true)
			return
		}
		// An unreadable snapshot would block every login; drop it and start empty.
		a.carried = nil
		a.setFlash(err.Error()+" (menu reset, press enter to continue)", true)
		return
	}
	a.session = s
	a.carried = nil
	a.keys.setRole(s.Role())
	a.filter = model.All
	a.screen = screenHome
	if w := s.ImportWarning(); w != nil {
		a.setFlash(w.Error(), true)
	} else {
		a.setFlash("Welcome, "+s.Role().Label(), false)
	}
	a.syncHome()
}

// logout ends the session and returns to the login screen, carrying the menu.
func (a *App) logout() {
	if a.session != nil {
		b, err := a.session.Logout()
		if err != nil {
			a.logger.Error().Err(err).Msg("logout failed")
		} else {
			a.carried = b
		}
	}
	a.session = nil
	a.screen = screenLogin
	a.setFlash("Logged out", false)
}

func (a App) viewLogin() string {
	return joinLines(
		brandStyle.Render("Christoffels Menu"),
		titleStyle.Render("Welcome"),
		"",
		"Select Login Type:",
		a.roles.View(),
		"",
		a.flashLine(),
		helpStyle.Render("↑/↓ choose • enter login • q quit"),
	)
}
