package update

import (
	"github.com/VictoriaLuise11/ToDoAufgabe9/internal/model"
	"github.com/VictoriaLuise11/ToDoAufgabe9/internal/views"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type DialogMode int

const (
	DialogClosed DialogMode = iota
	DialogAdd
	DialogEdit
)

const (
	fieldName = iota
	fieldPriority
	fieldEndDate
	fieldDescription
	fieldCount
)

// Dialog is the add/edit form. In edit mode target holds the record being
// changed so that its id and state survive the save.
type Dialog struct {
	Mode   DialogMode
	Focus  int
	Err    string
	target model.ToDo
	inputs [fieldCount]textinput.Model
}

func newDialog() Dialog {
	var d Dialog
	labels := [fieldCount]string{"Name", "Priority (number)", "Deadline (YYYY-MM-DD)", "Description"}
	for i := range d.inputs {
		in := textinput.New()
		in.Prompt = labels[i] + ": "
		in.CharLimit = 256
		in.Width = 40
		d.inputs[i] = in
	}
	d.inputs[fieldPriority].CharLimit = 10
	return d
}

func (d Dialog) Active() bool {
	return d.Mode != DialogClosed
}

func (d *Dialog) open(mode DialogMode, target model.ToDo, form model.Form) {
	d.Mode = mode
	d.target = target
	d.Err = ""
	d.inputs[fieldName].SetValue(form.Name)
	d.inputs[fieldPriority].SetValue(form.Priority)
	d.inputs[fieldEndDate].SetValue(form.EndDate)
	d.inputs[fieldDescription].SetValue(form.Description)
	for i := range d.inputs {
		d.inputs[i].CursorEnd()
	}
	d.setFocus(fieldName)
}

func (d *Dialog) close() {
	d.Mode = DialogClosed
	d.Err = ""
	for i := range d.inputs {
		d.inputs[i].Blur()
		d.inputs[i].SetValue("")
	}
}

func (d *Dialog) setFocus(i int) {
	d.Focus = (i + fieldCount) % fieldCount
	for j := range d.inputs {
		if j == d.Focus {
			d.inputs[j].Focus()
			continue
		}
		d.inputs[j].Blur()
	}
}

func (d Dialog) Form() model.Form {
	return model.Form{
		Name:        d.inputs[fieldName].Value(),
		Priority:    d.inputs[fieldPriority].Value(),
		EndDate:     d.inputs[fieldEndDate].Value(),
		Description: d.inputs[fieldDescription].Value(),
	}
}

// result validates the form. Add produces a new active record; edit keeps
// the target's id and state.
func (d Dialog) result() (model.ToDo, error) {
	if d.Mode == DialogEdit {
		return d.target.Apply(d.Form())
	}
	return model.ParseForm(d.Form())
}

func (d Dialog) view() string {
	title := "New ToDo"
	if d.Mode == DialogEdit {
		title = "Edit ToDo"
	}
	fields := make([]string, 0, fieldCount)
	for _, in := range d.inputs {
		fields = append(fields, in.View())
	}
	return views.RenderDialog(title, fields, d.Err)
}

func (m Model) handleDialogKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		text := "add cancelled"
		if m.Dialog.Mode == DialogEdit {
			text = "edit cancelled"
		}
		m.Dialog.close()
		m.Status = StatusBar{Text: text}
		return m, nil
	case "tab", "down":
		m.Dialog.setFocus(m.Dialog.Focus + 1)
		return m, nil
	case "shift+tab", "up":
		m.Dialog.setFocus(m.Dialog.Focus - 1)
		return m, nil
	case "enter":
		return m.saveDialog()
	}
	var cmd tea.Cmd
	m.Dialog.inputs[m.Dialog.Focus], cmd = m.Dialog.inputs[m.Dialog.Focus].Update(msg)
	return m, cmd
}

func (m Model) saveDialog() (Model, tea.Cmd) {
	todo, err := m.Dialog.result()
	if err != nil {
		m.Dialog.Err = err.Error()
		m.Status = StatusBar{Text: "form is incomplete", IsError: true}
		return m, nil
	}
	mode := m.Dialog.Mode
	m.Dialog.close()
	if mode == DialogEdit {
		return m, m.updateCmd("update", todo)
	}
	return m, m.insertCmd(todo)
}
