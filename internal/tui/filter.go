package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/menu/internal/menu"
	"github.com/Makepad-fr/menu/internal/model"
)

func (a App) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	sels := model.Selectors()
	cur := 0
	for i, s := range sels {
		if s == a.filter {
			cur = i
		}
	}
	switch msg.String() {
	case "esc", "b", "q":
		a.screen = screenHome
	case "right", "l", "tab":
		a.filter = sels[(cur+1)%len(sels)]
	case "left", "h", "shift+tab":
		a.filter = sels[(cur-1+len(sels))%len(sels)]
	case "1", "2", "3", "4":
		a.filter = sels[int(msg.String()[0]-'1')]
	}
	return a, nil
}

func (a App) viewFilter() string {
	dishes := a.currentDishes()
	counts := menu.CountByCourse(dishes)

	var tabs []string
	for _, s := range model.Selectors() {
		n := len(dishes)
		if c, ok := s.Course(); ok {
			n = counts[c]
		}
		label := fmt.Sprintf("%s (%d)", s, n)
		if s == a.filter {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}

	filtered := menu.FilterByCourse(dishes, a.filter)
	var body string
	if len(filtered) == 0 {
		body = mutedStyle.Render("No dishes found for this course.")
	} else {
		var b strings.Builder
		for _, d := range filtered {
			b.WriteString(dishItem{dish: d}.line())
			b.WriteString("\n")
			if d.Description != "" {
				b.WriteString("        " + mutedStyle.Render(d.Description) + "\n")
			}
		}
		body = strings.TrimRight(b.String(), "\n")
	}

	return joinLines(
		brandStyle.Render("Filter Menu"),
		"",
		strings.Join(tabs, " "),
		"",
		body,
		"",
		helpStyle.Render("←/→ or 1-4 choose course • esc back"),
	)
}
