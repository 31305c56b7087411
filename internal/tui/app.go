package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/Makepad-fr/menu/internal/menu"
	"github.com/Makepad-fr/menu/internal/model"
	"github.com/Makepad-fr/menu/internal/session"
	"github.com/Makepad-fr/menu/internal/snapshot"
)

// Options configure an interactive session.
type Options struct {
	Role     model.Role // preselected on the login screen
	Snapshot []byte     // menu carried over from a previous session
	Logger   zerolog.Logger
	Registry []menu.Option
}

type screen int

const (
	screenLogin screen = iota
	screenHome
	screenAdd
	screenRemove
	screenFilter
	screenGuide
	screenConfirmReset
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// App is the Bubble Tea model driving every screen. The session it holds is
// the only owner of the menu; screens read and change it through the session.
type App struct {
	screen  screen
	session *session.Session
	carried []byte // snapshot waiting for the next login
	opts    []session.Option

	roles  list.Model
	dishes list.Model
	form   addForm
	filter model.Selector
	view   viewport.Model
	keys   homeKeyMap
	help   help.Model

	flash    string
	flashErr bool

	width, height int
	logger        zerolog.Logger
}

func newApp(opt Options) App {
	roles := make([]list.Item, 0, len(model.Roles()))
	selected := 0
	for i, r := range model.Roles() {
		roles = append(roles, roleItem{role: r})
		if r == opt.Role {
			selected = i
		}
	}
	rl := list.New(roles, lineDelegate{}, defaultWidth-4, len(roles))
	rl.SetShowTitle(false)
	rl.SetShowHelp(false)
	rl.SetShowStatusBar(false)
	rl.SetShowPagination(false)
	rl.SetFilteringEnabled(false)
	rl.KeyMap.Quit.SetEnabled(false)
	rl.Select(selected)

	dl := list.New(nil, lineDelegate{}, defaultWidth-4, defaultHeight-8)
	dl.Title = "Remove Dishes"
	dl.SetShowHelp(true)
	dl.SetShowStatusBar(true)
	dl.SetFilteringEnabled(true)
	dl.Styles.Title = titleStyle
	dl.Styles.HelpStyle = helpStyle
	dl.Styles.PaginationStyle = helpStyle
	dl.FilterInput.Prompt = "/ "
	dl.SetStatusBarItemName("dish", "dishes")
	dl.KeyMap.Quit.SetEnabled(false)
	dl.AdditionalShortHelpKeys = removeHelpKeys
	dl.AdditionalFullHelpKeys = removeHelpKeys

	h := help.New()
	h.Width = defaultWidth - 4

	logger := opt.Logger.With().Str("component", "tui").Logger()
	return App{
		screen:  screenLogin,
		carried: opt.Snapshot,
		opts: []session.Option{
			session.WithLogger(opt.Logger),
			session.WithRegistryOptions(opt.Registry...),
		},
		roles:  rl,
		dishes: dl,
		form:   newAddForm(),
		filter: model.All,
		view:   viewport.New(defaultWidth-4, defaultHeight-9),
		keys:   newHomeKeyMap(),
		help:   h,
		width:  defaultWidth,
		height: defaultHeight,
		logger: logger,
	}
}

// Run starts the interactive session and returns the menu snapshot left when
// the user quits, ready to be carried into the next run.
func Run(opt Options) ([]byte, error) {
	p := tea.NewProgram(newApp(opt), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	fa, ok := final.(App)
	if !ok {
		return opt.Snapshot, nil
	}
	return fa.finish()
}

// finish ends any open session and returns the snapshot to hand over.
func (a App) finish() ([]byte, error) {
	if a.session != nil && a.session.Active() {
		return a.session.Logout()
	}
	if a.carried == nil {
		return snapshot.Encode(nil)
	}
	return a.carried, nil
}

func (a App) Init() tea.Cmd { return nil }

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.resize(msg.Width, msg.Height)
		return a, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		a.flash, a.flashErr = "", false
		switch a.screen {
		case screenLogin:
			return a.updateLogin(msg)
		case screenHome:
			return a.updateHome(msg)
		case screenAdd:
			return a.updateAdd(msg)
		case screenRemove:
			return a.updateRemove(msg)
		case screenFilter:
			return a.updateFilter(msg)
		case screenGuide:
			return a.updateGuide(msg)
		case screenConfirmReset:
			return a.updateConfirmReset(msg)
		}
	}

	// Non-key messages (cursor blink, filter results) go to whatever is focused.
	var cmd tea.Cmd
	switch a.screen {
	case screenAdd:
		cmd = a.form.update(msg)
	case screenRemove:
		a.dishes, cmd = a.dishes.Update(msg)
	}
	return a, cmd
}

func (a App) View() string {
	var content string
	switch a.screen {
	case screenLogin:
		content = a.viewLogin()
	case screenHome:
		content = a.viewHome()
	case screenAdd:
		content = a.viewAdd()
	case screenRemove:
		content = a.viewRemove()
	case screenFilter:
		content = a.viewFilter()
	case screenGuide:
		content = a.viewGuide()
	case screenConfirmReset:
		content = a.viewConfirmReset()
	}
	return panelString(content)
}

func (a *App) resize(w, h int) {
	a.width, a.height = w, h
	inner := w - 4
	if inner < 20 {
		inner = 20
	}
	a.roles.SetSize(inner, len(a.roles.Items()))
	a.dishes.SetSize(inner, max(h-8, 5))
	a.view.Width = inner
	a.view.Height = max(h-9, 3)
	a.help.Width = inner
	a.form.setWidth(inner)
}

func (a *App) setFlash(msg string, isErr bool) {
	a.flash, a.flashErr = msg, isErr
}

func (a App) flashLine() string {
	if a.flash == "" {
		return ""
	}
	if a.flashErr {
		return errorStyle.Render(a.flash)
	}
	return successStyle.Render(a.flash)
}

// registry returns the session's menu, or nil when nobody is logged in.
func (a App) registry() *menu.Registry {
	if a.session == nil {
		return nil
	}
	reg, err := a.session.Registry()
	if err != nil {
		return nil
	}
	return reg
}

func (a App) currentDishes() []model.Dish {
	if reg := a.registry(); reg != nil {
		return reg.Dishes()
	}
	return []model.Dish{}
}

func joinLines(parts ...string) string { return strings.Join(parts, "\n") }
