package update

import (
	"context"

	"github.com/VictoriaLuise11/ToDoAufgabe9/internal/model"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
)

// Store is the persistence surface the screen consumes. Failures are
// reported as false and the screen re-reads the full list after every
// mutation.
type Store interface {
	ListAll(ctx context.Context) []model.ToDo
	Insert(ctx context.Context, t model.ToDo) bool
	Update(ctx context.Context, t model.ToDo) bool
	Delete(ctx context.Context, id int64) bool
}

type StatusBar struct {
	Text    string
	IsError bool
}

type Options struct {
	// Notice is shown in the status bar until the first action, e.g. the
	// outcome of the database bootstrap.
	Notice        StatusBar
	MarkdownStyle string
}

type Model struct {
	Tab         model.Tab
	Cursor      int
	Dialog      Dialog
	Palette     PaletteState
	HelpVisible bool
	Status      StatusBar
	Loaded      bool
	Quitting    bool

	// todos is the single source both tabs are derived from.
	todos         []model.ToDo
	store         Store
	ctx           context.Context
	keys          keyMap
	helpModel     help.Model
	commandInput  textinput.Model
	markdownStyle string
	detail        viewport.Model // right pane, sized once the height is known
	height        int
}

type PaletteState struct {
	Active bool
	Input  string
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type SwitchTabMsg struct {
	Tab model.Tab
}

type todosLoadedMsg struct {
	todos []model.ToDo
}

type mutationDoneMsg struct {
	action string
	ok     bool
	todos  []model.ToDo
}

func NewModel(ctx context.Context, store Store, opts Options) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	m := Model{
		Tab:           model.TabActive,
		Status:        opts.Notice,
		todos:         []model.ToDo{},
		store:         store,
		ctx:           ctx,
		keys:          defaultKeyMap(),
		helpModel:     help.New(),
		markdownStyle: opts.MarkdownStyle,
		Dialog:        newDialog(),
		detail:        viewport.New(paneContentWidth, 0),
	}
	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48
	return m
}

// Views derives the active and completed lists from the last fetch.
func (m Model) Views() model.Views {
	return model.Partition(m.todos)
}

func (m Model) Visible() []model.ToDo {
	return m.Views().For(m.Tab)
}

func (m Model) Selected() (model.ToDo, bool) {
	visible := m.Visible()
	if m.Cursor < 0 || m.Cursor >= len(visible) {
		return model.ToDo{}, false
	}
	return visible[m.Cursor], true
}

func (m Model) findByID(id int64) (model.ToDo, bool) {
	for _, t := range m.todos {
		if t.ID == id {
			return t, true
		}
	}
	return model.ToDo{}, false
}

func (m *Model) clampCursor() {
	n := len(m.Visible())
	if m.Cursor >= n {
		m.Cursor = n - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
}
