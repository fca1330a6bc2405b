package update

import (
	"fmt"

	"github.com/VictoriaLuise11/ToDoAufgabe9/internal/model"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) loadCmd() tea.Cmd {
	store, ctx := m.store, m.ctx
	return func() tea.Msg {
		return todosLoadedMsg{todos: store.ListAll(ctx)}
	}
}

// mutate runs one store call and then re-reads the whole table so both tabs
// are rebuilt from a fresh fetch.
func (m Model) mutate(action string, op func(Store) bool) tea.Cmd {
	store, ctx := m.store, m.ctx
	return func() tea.Msg {
		ok := op(store)
		return mutationDoneMsg{action: action, ok: ok, todos: store.ListAll(ctx)}
	}
}

func (m Model) insertCmd(t model.ToDo) tea.Cmd {
	ctx := m.ctx
	return m.mutate("add", func(s Store) bool { return s.Insert(ctx, t) })
}

func (m Model) updateCmd(action string, t model.ToDo) tea.Cmd {
	ctx := m.ctx
	return m.mutate(action, func(s Store) bool { return s.Update(ctx, t) })
}

func (m Model) deleteCmd(id int64) tea.Cmd {
	ctx := m.ctx
	return m.mutate("delete", func(s Store) bool { return s.Delete(ctx, id) })
}

func (m Model) completeSelected() (Model, tea.Cmd) {
	selected, ok := m.Selected()
	if !ok {
		m.Status = StatusBar{Text: "nothing selected"}
		return m, nil
	}
	if selected.Done {
		m.Status = StatusBar{Text: fmt.Sprintf("#%d is already completed", selected.ID)}
		return m, nil
	}
	return m, m.updateCmd("complete", selected.Complete())
}

func (m Model) deleteSelected() (Model, tea.Cmd) {
	selected, ok := m.Selected()
	if !ok {
		m.Status = StatusBar{Text: "nothing selected"}
		return m, nil
	}
	return m, m.deleteCmd(selected.ID)
}

func (m Model) editSelected() Model {
	selected, ok := m.Selected()
	if !ok {
		m.Status = StatusBar{Text: "nothing selected"}
		return m
	}
	m.Dialog.open(DialogEdit, selected, model.FormFrom(selected))
	return m
}

func (m Model) applyMutation(msg mutationDoneMsg) Model {
	m.todos = msg.todos
	m.Loaded = true
	m.clampCursor()
	if msg.ok {
		m.Status = StatusBar{Text: pastTense(msg.action)}
		return m
	}
	m.Status = StatusBar{Text: fmt.Sprintf("could not %s todo, see log", msg.action), IsError: true}
	return m
}

func pastTense(action string) string {
	switch action {
	case "add":
		return "todo added"
	case "update":
		return "todo updated"
	case "complete":
		return "todo completed"
	case "delete":
		return "todo deleted"
	default:
		return action + " done"
	}
}
