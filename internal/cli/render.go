package cli

import (
	"fmt"

	"github.com/Makepad-fr/menu/internal/menu"
	"github.com/Makepad-fr/menu/internal/model"
	"github.com/Makepad-fr/menu/internal/ui"
)

// -------------- rendering helpers --------------

func menuLines(dishes []model.Dish) []string {
	if len(dishes) == 0 {
		return []string{ui.C(ui.Current().Muted, "No dishes yet. Add a dish to get started.")}
	}
	var lines []string
	for i, g := range menu.GroupByCourse(dishes) {
		if i > 0 {
			lines = append(lines, "")
		}
		t := ui.Current()
		lines = append(lines, ui.C(t.CourseColor(g.Course), g.Course.String()))
		lines = append(lines, dishLines(g.Dishes)...)
	}
	return lines
}

func dishLines(dishes []model.Dish) []string {
	t := ui.Current()
	out := make([]string, 0, len(dishes)*2)
	for _, d := range dishes {
		out = append(out, fmt.Sprintf("%s %s  %s  %s",
			ui.C(t.CourseColor(d.Course), t.Bullet),
			ui.Truncate(d.Name, 40),
			ui.C(t.Price, ui.Price(d.Price)),
			ui.C(t.Muted, "["+d.ID+"]"),
		))
		if d.Description != "" {
			out = append(out, "  "+ui.C(t.Muted, ui.Truncate(d.Description, 70)))
		}
	}
	return out
}

func statsLines(st menu.Statistics) []string {
	t := ui.Current()
	lines := []string{
		ui.C(t.Title, "Menu Statistics"),
		fmt.Sprintf("Total Items: %d", st.TotalItems),
		fmt.Sprintf("Overall Avg. Price: %s", ui.C(t.Price, ui.Price(st.OverallAverage))),
		"",
		ui.C(t.Accent, "Average by Course"),
	}
	if len(st.PerCourse) == 0 {
		return append(lines, ui.C(t.Muted, "Add dishes to see the course breakdown."))
	}
	for _, ca := range st.PerCourse {
		lines = append(lines, fmt.Sprintf("%s %s  %s",
			ui.C(t.CourseColor(ca.Course), fmt.Sprintf("%-8s", ca.Course)),
			ui.C(t.Price, ui.Price(ca.Average)),
			ui.C(t.Muted, ui.ShareBar(ca.Count, st.TotalItems, 12)),
		))
	}
	return lines
}
