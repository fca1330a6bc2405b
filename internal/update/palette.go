package update

import (
	"fmt"
	"strings"

	"github.com/VictoriaLuise11/ToDoAufgabe9/internal/commands"
	"github.com/VictoriaLuise11/ToDoAufgabe9/internal/model"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) openPalette() Model {
	m.Palette.Active = true
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Focus()
	m.Status = StatusBar{Text: "command palette active"}
	return m
}

func (m Model) closePalette() Model {
	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Blur()
	return m
}

func (m Model) handlePaletteKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m = m.closePalette()
		m.Status = StatusBar{Text: "command palette closed"}
		return m, nil
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		return m.executePaletteCommand()
	}
	var cmd tea.Cmd
	m.commandInput, cmd = m.commandInput.Update(msg)
	m.Palette.Input = m.commandInput.Value()
	return m, cmd
}

func (m Model) executePaletteCommand() (Model, tea.Cmd) {
	raw := strings.TrimSpace(m.Palette.Input)
	m = m.closePalette()

	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}

	var next tea.Cmd
	res, err := commands.Execute(cmd, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			todo, err := model.ParseForm(model.Form{
				Name:        a.Name,
				Priority:    a.Priority,
				EndDate:     a.EndDate,
				Description: a.Description,
			})
			if err != nil {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: strings.ReplaceAll(err.Error(), "\n", "; ")}
			}
			next = m.insertCmd(todo)
			return commands.Result{Message: fmt.Sprintf("adding %s", todo.Name)}, nil
		},
		Done: func(a commands.TargetArgs) (commands.Result, error) {
			todo, ok := m.findByID(a.ID)
			if !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("no todo #%d", a.ID)}
			}
			if todo.Done {
				return commands.Result{Message: fmt.Sprintf("#%d is already completed", a.ID)}, nil
			}
			next = m.updateCmd("complete", todo.Complete())
			return commands.Result{Message: fmt.Sprintf("completing #%d", a.ID)}, nil
		},
		Delete: func(a commands.TargetArgs) (commands.Result, error) {
			if _, ok := m.findByID(a.ID); !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("no todo #%d", a.ID)}
			}
			next = m.deleteCmd(a.ID)
			return commands.Result{Message: fmt.Sprintf("deleting #%d", a.ID)}, nil
		},
		Show: func(s commands.ShowArgs) (commands.Result, error) {
			m.Tab = model.TabActive
			if s.Subject == "completed" {
				m.Tab = model.TabCompleted
			}
			m.Cursor = 0
			return commands.Result{Message: fmt.Sprintf("showing %s", strings.ToLower(m.Tab.String()))}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}
	m.Status = StatusBar{Text: res.Message}
	return m, next
}
