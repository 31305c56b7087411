package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/menu/internal/menu"
	"github.com/Makepad-fr/menu/internal/model"
	"github.com/Makepad-fr/menu/internal/session"
	"github.com/Makepad-fr/menu/internal/ui"
)

func (a App) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.Logout):
		a.logout()
		return a, nil
	case key.Matches(msg, a.keys.Help):
		a.screen = screenGuide
		return a, nil
	case key.Matches(msg, a.keys.Filter):
		a.filter = model.All
		a.screen = screenFilter
		return a, nil
	case key.Matches(msg, a.keys.Add):
		if !a.authorize(session.ActionAdd) {
			return a, nil
		}
		a.form = newAddForm()
		a.form.setWidth(a.view.Width)
		a.screen = screenAdd
		return a, a.form.focusField(fieldName)
	case key.Matches(msg, a.keys.Remove):
		if !a.authorize(session.ActionRemove) {
			return a, nil
		}
		cmd := a.dishes.SetItems(dishItems(a.currentDishes()))
		a.dishes.ResetFilter()
		a.dishes.Select(0)
		a.screen = screenRemove
		return a, cmd
	case key.Matches(msg, a.keys.Reset):
		if !a.authorize(session.ActionReset) {
			return a, nil
		}
		a.screen = screenConfirmReset
		return a, nil
	}
	if act, ok := a.keys.chefAction(msg.String()); ok {
		// Disabled for this role; say why instead of ignoring the key.
		a.authorize(act)
		return a, nil
	}
	var cmd tea.Cmd
	a.view, cmd = a.view.Update(msg)
	return a, cmd
}

func (a *App) authorize(act session.Action) bool {
	if a.session == nil {
		return false
	}
	if err := a.session.Authorize(act); err != nil {
		a.setFlash(err.Error(), true)
		return false
	}
	return true
}

// syncHome re-renders the scrollable menu after the collection changed.
func (a *App) syncHome() {
	a.view.SetContent(a.homeContent())
}

func (a App) homeContent() string {
	dishes := a.currentDishes()
	var b strings.Builder
	if len(dishes) == 0 {
		b.WriteString(mutedStyle.Render("No dishes yet. Add a dish to get started."))
	} else {
		for i, g := range menu.GroupByCourse(dishes) {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(courseStyle(g.Course).Render(g.Course.String()))
			b.WriteString("\n")
			for _, d := range g.Dishes {
				b.WriteString(renderDish(d))
			}
		}
	}
	b.WriteString("\n")
	b.WriteString(renderStats(menu.ComputeStatistics(dishes)))
	return b.String()
}

func renderDish(d model.Dish) string {
	line := fmt.Sprintf("  %s  %s\n", titleStyle.Render(d.Name), priceStyle.Render(ui.Price(d.Price)))
	if d.Description != "" {
		line += "    " + mutedStyle.Render(d.Description) + "\n"
	}
	return line
}

func renderStats(st menu.Statistics) string {
	lines := []string{
		titleStyle.Render("Menu Statistics"),
		fmt.Sprintf("Total Items: %d", st.TotalItems),
		"Overall Avg. Price: " + priceStyle.Render(ui.Price(st.OverallAverage)),
		"",
		accentStyle.Render("Average by Course"),
	}
	if len(st.PerCourse) == 0 {
		lines = append(lines, mutedStyle.Render("Add dishes to see the course breakdown."))
	}
	for _, ca := range st.PerCourse {
		lines = append(lines, fmt.Sprintf("%s %s  %s",
			courseStyle(ca.Course).Render(fmt.Sprintf("%-8s", ca.Course)),
			priceStyle.Render(ui.Price(ca.Average)),
			mutedStyle.Render(fmt.Sprintf("(%d)", ca.Count)),
		))
	}
	return statsBoxStyle.Render(strings.Join(lines, "\n"))
}

func (a App) viewHome() string {
	role := ""
	if a.session != nil {
		role = a.session.Role().Label()
	}
	return joinLines(
		brandStyle.Render("Christoffel's Menu")+"  "+mutedStyle.Render("Logged in as: "+role),
		a.flashLine(),
		a.view.View(),
		a.help.View(a.keys),
	)
}

func (a App) updateConfirmReset(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		if reg := a.registry(); reg != nil && a.authorize(session.ActionReset) {
			reg.Clear()
			a.setFlash("Menu cleared", false)
		}
		a.screen = screenHome
		a.syncHome()
	case "n", "N", "esc", "q":
		a.screen = screenHome
	}
	return a, nil
}

func (a App) viewConfirmReset() string {
	return joinLines(
		titleStyle.Render("Reset Menu"),
		"",
		"Are you sure you want to clear all dishes?",
		fmt.Sprintf("%d dish(es) will be removed.", len(a.currentDishes())),
		"",
		helpStyle.Render("y yes • n no"),
	)
}
