package update

import (
	"fmt"

	"github.com/VictoriaLuise11/ToDoAufgabe9/internal/model"
	"github.com/VictoriaLuise11/ToDoAufgabe9/internal/views"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// chromeLines counts header, tabs, pane borders, status and footer.
const (
	cardWidth        = 52
	paneContentWidth = 56
	minPaneHeight    = 5
	chromeLines      = 6
)

func (m Model) Init() tea.Cmd {
	return m.loadCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		if typed.String() == "ctrl+c" {
			m.Quitting = true
			return m, tea.Quit
		}
		if m.Dialog.Active() {
			return m.handleDialogKey(typed)
		}
		if m.Palette.Active {
			return m.handlePaletteKey(typed)
		}
		return m.handleKey(typed)
	case tea.WindowSizeMsg:
		m.helpModel.Width = typed.Width
		m.height = typed.Height
		m.detail.Width = paneContentWidth
		m.detail.Height = m.paneHeight()
		return m, nil
	case todosLoadedMsg:
		m.todos = typed.todos
		m.Loaded = true
		m.clampCursor()
		return m, nil
	case mutationDoneMsg:
		return m.applyMutation(typed), nil
	case SwitchTabMsg:
		m.Tab = typed.Tab
		m.Cursor = 0
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	before, _ := m.Selected()
	m, cmd := m.handleListKey(msg)
	if after, _ := m.Selected(); after.ID != before.ID {
		m.detail.SetYOffset(0)
	}
	return m, cmd
}

func (m Model) handleListKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.HelpVisible = !m.HelpVisible
		m.helpModel.ShowAll = m.HelpVisible
		return m, nil
	case key.Matches(msg, m.keys.Palette):
		return m.openPalette(), nil
	case key.Matches(msg, m.keys.NextTab):
		m.Tab = m.Tab.Next()
		m.Cursor = 0
	case key.Matches(msg, m.keys.Active):
		m.Tab = model.TabActive
		m.Cursor = 0
	case key.Matches(msg, m.keys.Completed):
		m.Tab = model.TabCompleted
		m.Cursor = 0
	case key.Matches(msg, m.keys.Up):
		if m.Cursor > 0 {
			m.Cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.Cursor < len(m.Visible())-1 {
			m.Cursor++
		}
	case key.Matches(msg, m.keys.Add):
		m.Dialog.open(DialogAdd, model.ToDo{}, model.Form{})
	case key.Matches(msg, m.keys.Edit):
		return m.editSelected(), nil
	case key.Matches(msg, m.keys.Complete):
		return m.completeSelected()
	case key.Matches(msg, m.keys.Delete):
		return m.deleteSelected()
	case key.Matches(msg, m.keys.Refresh):
		m.Status = StatusBar{Text: "reloaded"}
		return m, m.loadCmd()
	case key.Matches(msg, m.keys.PageDown):
		return m.scrollDetail(1), nil
	case key.Matches(msg, m.keys.PageUp):
		return m.scrollDetail(-1), nil
	}
	return m, nil
}

// paneHeight is the number of content lines each pane may use. Zero means
// the terminal size is not known yet and nothing is clipped.
func (m Model) paneHeight() int {
	if m.height <= 0 {
		return 0
	}
	return max(m.height-chromeLines, minPaneHeight)
}

// scrollDetail moves the right pane by half a page in dir.
func (m Model) scrollDetail(dir int) Model {
	h := m.paneHeight()
	if h == 0 {
		return m
	}
	m.detail.Height = h
	m.detail.SetContent(m.rightPane())
	m.detail.SetYOffset(m.detail.YOffset + dir*max(1, h/2))
	return m
}

func (m Model) rightPane() string {
	right := ""
	switch {
	case m.Dialog.Active():
		right = m.Dialog.view()
	case m.Palette.Active:
		right = m.commandInput.View() + "\n\nadd <name> p:<n> due:<date> -- <description>\ndone <id> • delete <id> • show active|completed"
	default:
		if selected, ok := m.Selected(); ok {
			right = views.RenderDetail(selected, m.markdownStyle, paneContentWidth)
		}
	}
	if m.HelpVisible {
		right += "\n\n" + m.helpModel.View(m.keys)
	}
	return right
}

func (m Model) View() string {
	if m.Quitting {
		return ""
	}
	all := m.Views()
	visible := all.For(m.Tab)
	h := m.paneHeight()

	left := views.RenderCards(visible, m.Cursor, cardWidth, views.CardsPerPage(h))
	if !m.Loaded {
		left = "loading…"
	}

	right := m.rightPane()
	if h > 0 {
		vp := m.detail
		vp.Width = paneContentWidth
		vp.Height = h
		if m.Dialog.Active() || m.Palette.Active {
			vp.YOffset = 0
		}
		vp.SetContent(right)
		right = vp.View()
	}

	footer := ""
	if !m.HelpVisible {
		footer = m.helpModel.View(m.keys)
	}

	return views.RenderApp(views.AppData{
		Header:     fmt.Sprintf("ToDo | %d open, %d done", len(all.Active), len(all.Completed)),
		Tabs:       views.RenderTabs(m.Tab, all),
		LeftPane:   left,
		RightPane:  right,
		StatusLine: m.Status.Text,
		IsError:    m.Status.IsError,
		Footer:     footer,
	})
}
