package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/menu/internal/model"
	"github.com/Makepad-fr/menu/internal/ui"
)

// roleItem adapts a login role to bubbles/list.Item
type roleItem struct{ role model.Role }

func (i roleItem) Title() string       { return i.role.Label() }
func (i roleItem) Description() string { return "" }
func (i roleItem) FilterValue() string { return i.role.Label() }
func (i roleItem) line() string        { return i.role.Label() }

// dishItem adapts a Dish to bubbles/list.Item
type dishItem struct{ dish model.Dish }

func (i dishItem) Title() string       { return i.dish.Name }
func (i dishItem) Description() string { return i.dish.Description }
func (i dishItem) FilterValue() string { return i.dish.Name + " " + string(i.dish.Course) }
func (i dishItem) line() string {
	return fmt.Sprintf("%s %s  %s",
		courseStyle(i.dish.Course).Render(fmt.Sprintf("%-7s", i.dish.Course)),
		ui.Truncate(i.dish.Name, 40),
		priceStyle.Render(ui.Price(i.dish.Price)),
	)
}

func dishItems(dishes []model.Dish) []list.Item {
	out := make([]list.Item, 0, len(dishes))
	for _, d := range dishes {
		out = append(out, dishItem{dish: d})
	}
	return out
}

type liner interface{ line() string }

// lineDelegate renders each item on a single line.
type lineDelegate struct{}

func (d lineDelegate) Height() int                               { return 1 }
func (d lineDelegate) Spacing() int                              { return 0 }
func (d lineDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d lineDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(liner)
	if !ok {
		return
	}
	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprint(w, prefix+it.line())
}
