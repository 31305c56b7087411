package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/menu/internal/menu"
	"github.com/Makepad-fr/menu/internal/model"
	"github.com/Makepad-fr/menu/internal/session"
)

const (
	fieldName = iota
	fieldDescription
	fieldCourse
	fieldPrice
	fieldCount
)

// addForm is the add-dish screen: three text inputs and a course picker.
type addForm struct {
	name, description, price textinput.Model
	course                   int // index into model.Courses(), -1 until picked
	focus                    int
	err                      string
}

func newAddForm() addForm {
	mk := func(placeholder string, limit int) textinput.Model {
		ti := textinput.New()
		ti.Prompt = "> "
		ti.Placeholder = placeholder
		ti.CharLimit = limit
		return ti
	}
	return addForm{
		name:        mk("Dish Name", 80),
		description: mk("Description", 200),
		price:       mk("Price (R)", 12),
		course:      -1,
	}
}

func (f *addForm) input(field int) *textinput.Model {
	switch field {
	case fieldName:
		return &f.name
	case fieldDescription:
		return &f.description
	case fieldPrice:
		return &f.price
	}
	return nil
}

func (f *addForm) setWidth(w int) {
	for _, field := range []int{fieldName, fieldDescription, fieldPrice} {
		f.input(field).Width = max(w-4, 10)
	}
}

func (f *addForm) focusField(field int) tea.Cmd {
	f.focus = (field + fieldCount) % fieldCount
	var cmd tea.Cmd
	for _, fl := range []int{fieldName, fieldDescription, fieldPrice} {
		ti := f.input(fl)
		if fl == f.focus {
			cmd = ti.Focus()
		} else {
			ti.Blur()
		}
	}
	return cmd
}

func (f *addForm) cycleCourse(step int) {
	n := len(model.Courses())
	if f.course < 0 {
		if step > 0 {
			f.course = 0
		} else {
			f.course = n - 1
		}
		return
	}
	f.course = (f.course + step + n) % n
}

func (f *addForm) update(msg tea.Msg) tea.Cmd {
	ti := f.input(f.focus)
	if ti == nil {
		return nil
	}
	var cmd tea.Cmd
	*ti, cmd = ti.Update(msg)
	return cmd
}

func (f addForm) draft() model.Draft {
	d := model.Draft{
		Name:        f.name.Value(),
		Description: f.description.Value(),
		Price:       f.price.Value(),
	}
	if f.course >= 0 {
		d.Course = string(model.Courses()[f.course])
	}
	return d
}

func (a App) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.screen = screenHome
		return a, nil
	case "tab", "down":
		return a, a.form.focusField(a.form.focus + 1)
	case "shift+tab", "up":
		return a, a.form.focusField(a.form.focus - 1)
	case "ctrl+s":
		a.submitDish()
		return a, nil
	case "enter":
		if a.form.focus < fieldPrice {
			return a, a.form.focusField(a.form.focus + 1)
		}
		a.submitDish()
		return a, nil
	case "left", "right":
		if a.form.focus == fieldCourse {
			step := 1
			if msg.String() == "left" {
				step = -1
			}
			a.form.cycleCourse(step)
			return a, nil
		}
	}
	return a, a.form.update(msg)
}

func (a *App) submitDish() {
	reg := a.registry()
	if reg == nil || !a.authorize(session.ActionAdd) {
		a.screen = screenHome
		return
	}
	dish, err := reg.Append(a.form.draft())
	if err != nil {
		a.form.err = formMessage(err)
		return
	}
	a.logger.Debug().Str("id", dish.ID).Msg("dish added from form")
	a.form.err = ""
	a.screen = screenHome
	a.setFlash("Dish added successfully!", false)
	a.syncHome()
}

// formMessage turns a validation error into the text shown under the form.
func formMessage(err error) string {
	var ierr *menu.InvalidInputError
	if !errors.As(err, &ierr) {
		return err.Error()
	}
	switch {
	case ierr.Missing():
		return "Please fill in all fields"
	case ierr.Field == "price":
		return "Please enter a valid price."
	case ierr.Field == "course":
		return "Please choose Starter, Main or Dessert."
	}
	return ierr.Error()
}

func (a App) viewAdd() string {
	f := a.form
	label := func(field int, s string) string {
		if f.focus == field {
			return focusStyle.Render(s)
		}
		return s
	}

	var courses []string
	for i, c := range model.Courses() {
		if i == f.course {
			courses = append(courses, activeTabStyle.Render(c.String()))
		} else {
			courses = append(courses, tabStyle.Render(c.String()))
		}
	}
	picker := strings.Join(courses, " ")
	if f.course < 0 {
		picker = mutedStyle.Render("Select course ") + picker
	}

	errLine := ""
	if f.err != "" {
		errLine = errorStyle.Render(f.err)
	}
	return joinLines(
		brandStyle.Render("Add a New Dish"),
		"",
		label(fieldName, "Name"),
		f.name.View(),
		label(fieldDescription, "Description"),
		f.description.View(),
		label(fieldCourse, "Course"),
		"  ◂ "+picker+" ▸",
		label(fieldPrice, "Price"),
		f.price.View(),
		"",
		errLine,
		helpStyle.Render("tab/↓ next • shift+tab/↑ prev • ←/→ course • enter on price or ctrl+s add • esc back"),
	)
}
