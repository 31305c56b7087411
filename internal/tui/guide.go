package tui

import tea "github.com/charmbracelet/bubbletea"

func (a App) updateGuide(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter", "b", "q", "?":
		a.screen = screenHome
	}
	return a, nil
}

func (a App) viewGuide() string {
	bullet := func(name, text string) string {
		return "  • " + titleStyle.Render(name+":") + " " + text
	}
	return joinLines(
		brandStyle.Render("How to Use the Menu App"),
		"",
		accentStyle.Render("For Christoffel (Chef)"),
		"Manage the menu for your guests.",
		bullet("Add Dish", "enter the dish name, description, course and price."),
		bullet("View Menu", "see all dishes grouped by course with average prices."),
		bullet("Remove Dish", "delete any dish from the menu."),
		bullet("Reset Menu", "clear all dishes to start fresh."),
		"",
		accentStyle.Render("For Users"),
		"Browse what Christoffel has prepared.",
		bullet("View Menu", "see every dish, its description and price."),
		bullet("Filter Menu", "show only starters, mains or desserts."),
		bullet("Statistics", "check the number of items and average prices."),
		"",
		accentStyle.Render("Tips"),
		"  • Log out to switch roles; the menu stays for the next login.",
		"  • Prices are rounded to two decimals for display only.",
		"  • Quitting the app discards the menu unless it is handed off.",
		"",
		helpStyle.Render("esc back to menu"),
	)
}
