package update

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/VictoriaLuise11/ToDoAufgabe9/internal/model"
	tea "github.com/charmbracelet/bubbletea"
)

type memStore struct {
	todos   []model.ToDo
	nextID  int64
	fail    bool
	lists   int
	updates int
}

func (s *memStore) ListAll(context.Context) []model.ToDo {
	s.lists++
	return append([]model.ToDo(nil), s.todos...)
}

func (s *memStore) Insert(_ context.Context, t model.ToDo) bool {
	if s.fail {
		return false
	}
	s.nextID++
	t.ID = s.nextID
	s.todos = append(s.todos, t)
	return true
}

func (s *memStore) Update(_ context.Context, t model.ToDo) bool {
	s.updates++
	if s.fail {
		return false
	}
	for i := range s.todos {
		if s.todos[i].ID == t.ID {
			s.todos[i] = t
			return true
		}
	}
	return false
}

func (s *memStore) Delete(_ context.Context, id int64) bool {
	if s.fail {
		return false
	}
	for i := range s.todos {
		if s.todos[i].ID == id {
			s.todos = append(s.todos[:i], s.todos[i+1:]...)
			return true
		}
	}
	return false
}

func seededStore() *memStore {
	return &memStore{
		todos: []model.ToDo{
			{ID: 1, Name: "Buy milk", Priority: 1, EndDate: "2025-01-01", Description: "2%"},
			{ID: 2, Name: "File taxes", Priority: 2, EndDate: "2025-04-15", Description: "forms", Done: true},
			{ID: 3, Name: "Call mom", Priority: 3, EndDate: "2025-01-05", Description: "sunday"},
		},
		nextID: 3,
	}
}

// step feeds msg into m and runs any returned command once, the way the
// bubbletea runtime would for store calls.
func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	updated, cmd := m.Update(msg)
	next := updated.(Model)
	if cmd == nil {
		return next
	}
	out := cmd()
	switch out.(type) {
	case todosLoadedMsg, mutationDoneMsg:
		updated, _ = next.Update(out)
		return updated.(Model)
	}
	return next
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// typeText drops the commands text inputs return; they are cursor blink
// timers.
func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		updated, _ := m.Update(runes(string(r)))
		m = updated.(Model)
	}
	return m
}

func loaded(t *testing.T, store Store) Model {
	t.Helper()
	m := NewModel(context.Background(), store, Options{MarkdownStyle: "notty"})
	msg := m.Init()()
	updated, _ := m.Update(msg)
	return updated.(Model)
}

func TestNewModelDefaults(t *testing.T) {
	m := NewModel(context.Background(), &memStore{}, Options{Notice: StatusBar{Text: "database seeded"}})
	if m.Tab != model.TabActive {
		t.Fatalf("expected active tab, got %v", m.Tab)
	}
	if m.Loaded || m.Dialog.Active() || m.Palette.Active {
		t.Fatalf("unexpected initial state: %+v", m)
	}
	if m.Status.Text != "database seeded" {
		t.Fatalf("notice not shown: %+v", m.Status)
	}
}

func TestInitLoadsAndPartitions(t *testing.T) {
	m := loaded(t, seededStore())
	if !m.Loaded {
		t.Fatal("expected loaded model")
	}
	if got := m.Visible(); len(got) != 2 || got[0].ID != 1 || got[1].ID != 3 {
		t.Fatalf("unexpected active view: %#v", got)
	}

	m = step(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.Tab != model.TabCompleted {
		t.Fatalf("expected completed tab, got %v", m.Tab)
	}
	if got := m.Visible(); len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("unexpected completed view: %#v", got)
	}

	m = step(t, m, runes("1"))
	if m.Tab != model.TabActive {
		t.Fatalf("expected active tab after 1, got %v", m.Tab)
	}
}

func TestCursorMovementIsClamped(t *testing.T) {
	m := loaded(t, seededStore())
	m = step(t, m, runes("k"))
	if m.Cursor != 0 {
		t.Fatalf("cursor moved above top: %d", m.Cursor)
	}
	m = step(t, m, runes("j"))
	m = step(t, m, runes("j"))
	if m.Cursor != 1 {
		t.Fatalf("cursor moved past end: %d", m.Cursor)
	}
	selected, ok := m.Selected()
	if !ok || selected.ID != 3 {
		t.Fatalf("unexpected selection: %#v", selected)
	}
}

func TestAddDialogInsertsAndRefetches(t *testing.T) {
	store := &memStore{}
	m := loaded(t, store)
	listsBefore := store.lists

	m = step(t, m, runes("a"))
	if m.Dialog.Mode != DialogAdd {
		t.Fatalf("expected add dialog, got %v", m.Dialog.Mode)
	}
	m = typeText(t, m, "Buy milk")
	m = step(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(t, m, "1")
	m = step(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(t, m, "2025-01-01")
	m = step(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(t, m, "2%")
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.Dialog.Active() {
		t.Fatal("dialog should close after save")
	}
	if store.lists != listsBefore+1 {
		t.Fatalf("expected one refetch after insert, got %d", store.lists-listsBefore)
	}
	got := m.Visible()
	if len(got) != 1 {
		t.Fatalf("expected one active todo, got %#v", got)
	}
	want := model.ToDo{ID: 1, Name: "Buy milk", Priority: 1, EndDate: "2025-01-01", Description: "2%"}
	if got[0] != want {
		t.Fatalf("unexpected todo: %#v", got[0])
	}
	if m.Status.Text != "todo added" || m.Status.IsError {
		t.Fatalf("unexpected status: %+v", m.Status)
	}
}

func TestAddDialogRejectsInvalidForm(t *testing.T) {
	store := &memStore{}
	m := loaded(t, store)
	m = step(t, m, runes("a"))
	m = typeText(t, m, "Buy milk")
	m = step(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(t, m, "high")
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if !m.Dialog.Active() {
		t.Fatal("dialog should stay open on invalid input")
	}
	if !strings.Contains(m.Dialog.Err, "priority must be an integer") {
		t.Fatalf("unexpected dialog error: %q", m.Dialog.Err)
	}
	if len(store.todos) != 0 {
		t.Fatalf("invalid form reached the store: %#v", store.todos)
	}

	m = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.Dialog.Active() {
		t.Fatal("esc should close the dialog")
	}
	if m.Status.Text != "add cancelled" {
		t.Fatalf("unexpected status after cancelling add: %+v", m.Status)
	}

	m = step(t, m, runes("e"))
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.Status.Text != "nothing selected" {
		t.Fatalf("edit on empty list should not open a dialog: %+v", m.Status)
	}
}

func TestEscReportsWhichDialogWasCancelled(t *testing.T) {
	m := loaded(t, seededStore())
	m = step(t, m, runes("e"))
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.Status.Text != "edit cancelled" {
		t.Fatalf("unexpected status after cancelling edit: %+v", m.Status)
	}
	m = step(t, m, runes("a"))
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.Status.Text != "add cancelled" {
		t.Fatalf("unexpected status after cancelling add: %+v", m.Status)
	}
}

func TestEditKeepsIDAndState(t *testing.T) {
	store := seededStore()
	m := loaded(t, store)
	m = step(t, m, runes("2"))
	m = step(t, m, runes("e"))
	if m.Dialog.Mode != DialogEdit {
		t.Fatalf("expected edit dialog, got %v", m.Dialog.Mode)
	}
	if form := m.Dialog.Form(); form.Name != "File taxes" || form.Priority != "2" {
		t.Fatalf("dialog not prefilled: %+v", form)
	}
	m = typeText(t, m, " now")
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	got, ok := m.findByID(2)
	if !ok || got.Name != "File taxes now" || !got.Done {
		t.Fatalf("unexpected edited todo: %#v", got)
	}
	if m.Status.Text != "todo updated" {
		t.Fatalf("unexpected status: %+v", m.Status)
	}
}

func TestCompleteMovesTodoToCompletedTab(t *testing.T) {
	m := loaded(t, seededStore())
	m = step(t, m, runes("c"))

	views := m.Views()
	if len(views.Active) != 1 || views.Active[0].ID != 3 {
		t.Fatalf("unexpected active view: %#v", views.Active)
	}
	if len(views.Completed) != 2 {
		t.Fatalf("unexpected completed view: %#v", views.Completed)
	}

	m = step(t, m, runes("2"))
	m = step(t, m, runes("c"))
	if !strings.Contains(m.Status.Text, "already completed") {
		t.Fatalf("expected already completed status, got %+v", m.Status)
	}
}

func TestDeleteSelected(t *testing.T) {
	store := seededStore()
	m := loaded(t, store)
	m = step(t, m, runes("j"))
	m = step(t, m, runes("d"))

	if _, ok := m.findByID(3); ok {
		t.Fatal("deleted todo still present")
	}
	if m.Cursor != 0 {
		t.Fatalf("cursor not clamped after delete: %d", m.Cursor)
	}
	if len(store.todos) != 2 {
		t.Fatalf("store not updated: %#v", store.todos)
	}
}

func TestStoreFailureIsReported(t *testing.T) {
	store := seededStore()
	m := loaded(t, store)
	store.fail = true
	m = step(t, m, runes("d"))
	if !m.Status.IsError || !strings.Contains(m.Status.Text, "could not delete") {
		t.Fatalf("expected error status, got %+v", m.Status)
	}
	if len(m.Visible()) != 2 {
		t.Fatalf("list changed after failed delete: %#v", m.Visible())
	}
}

func TestActionsOnEmptyList(t *testing.T) {
	m := loaded(t, &memStore{})
	for _, k := range []string{"c", "d", "e"} {
		updated, cmd := m.Update(runes(k))
		m = updated.(Model)
		if cmd != nil {
			t.Fatalf("key %q on empty list returned a command", k)
		}
		if m.Status.Text != "nothing selected" {
			t.Fatalf("key %q: unexpected status %+v", k, m.Status)
		}
	}
}

func TestPaletteAddAndShow(t *testing.T) {
	store := &memStore{}
	m := loaded(t, store)
	m = step(t, m, runes("/"))
	if !m.Palette.Active {
		t.Fatal("expected palette active")
	}
	m = typeText(t, m, "add Buy milk p:1 due:2025-01-01 -- 2%")
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.Palette.Active {
		t.Fatal("palette should close after enter")
	}
	if len(store.todos) != 1 || store.todos[0].Name != "Buy milk" || store.todos[0].Description != "2%" {
		t.Fatalf("unexpected store contents: %#v", store.todos)
	}

	m = step(t, m, runes("/"))
	m = typeText(t, m, "done 1")
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = step(t, m, runes("/"))
	m = typeText(t, m, "show completed")
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Tab != model.TabCompleted {
		t.Fatalf("expected completed tab, got %v", m.Tab)
	}
	if got := m.Visible(); len(got) != 1 || !got[0].Done {
		t.Fatalf("unexpected completed view: %#v", got)
	}
}

func TestPaletteErrors(t *testing.T) {
	m := loaded(t, seededStore())
	cases := map[string]string{
		"frobnicate":   "unknown_command",
		"done 99":      "no todo #99",
		"add Buy milk": "invalid_argument",
	}
	for input, want := range cases {
		m = step(t, m, runes("/"))
		m = typeText(t, m, input)
		m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
		if !m.Status.IsError || !strings.Contains(m.Status.Text, want) {
			t.Fatalf("input %q: expected error containing %q, got %+v", input, want, m.Status)
		}
	}
}

func TestHelpToggleAndQuit(t *testing.T) {
	m := loaded(t, seededStore())
	m = step(t, m, runes("?"))
	if !m.HelpVisible {
		t.Fatal("expected help visible")
	}
	updated, cmd := m.Update(runes("q"))
	next := updated.(Model)
	if !next.Quitting || cmd == nil {
		t.Fatal("expected quit")
	}
	if next.View() != "" {
		t.Fatal("expected empty view after quit")
	}
}

func TestViewRendersTabsAndSelection(t *testing.T) {
	m := loaded(t, seededStore())
	out := m.View()
	for _, want := range []string{"Active (2)", "Completed (1)", "Buy milk", "Call mom", "2 open, 1 done"} {
		if !strings.Contains(out, want) {
			t.Fatalf("view missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "File taxes") {
		t.Fatalf("completed todo rendered on active tab:\n%s", out)
	}
}

func TestStatusMessages(t *testing.T) {
	m := loaded(t, seededStore())
	m = step(t, m, SetStatusMsg{Text: "ready"})
	if m.Status.Text != "ready" || m.Status.IsError {
		t.Fatalf("unexpected status: %+v", m.Status)
	}
	m = step(t, m, ClearStatusMsg{})
	if m.Status.Text != "" {
		t.Fatalf("expected cleared status, got %+v", m.Status)
	}
	m = step(t, m, SwitchTabMsg{Tab: model.TabCompleted})
	if m.Tab != model.TabCompleted {
		t.Fatalf("expected completed tab, got %v", m.Tab)
	}
}

func TestPaletteDoneOnCompletedTodoLeavesItAlone(t *testing.T) {
	store := seededStore()
	m := loaded(t, store)
	m = step(t, m, runes("/"))
	m = typeText(t, m, "done 2")
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.Status.IsError || m.Status.Text != "#2 is already completed" {
		t.Fatalf("unexpected status: %+v", m.Status)
	}
	if store.updates != 0 {
		t.Fatalf("completed todo was rewritten %d times", store.updates)
	}
}

func manyTodos(n int) *memStore {
	s := &memStore{nextID: int64(n)}
	for i := 1; i <= n; i++ {
		s.todos = append(s.todos, model.ToDo{
			ID:          int64(i),
			Name:        fmt.Sprintf("task-%02d", i),
			Priority:    1,
			EndDate:     "2025-01-01",
			Description: "d",
		})
	}
	return s
}

func TestViewFitsTerminalHeight(t *testing.T) {
	m := loaded(t, manyTodos(30))
	m = step(t, m, tea.WindowSizeMsg{Width: 120, Height: 24})
	for range 29 {
		m = step(t, m, runes("j"))
	}
	if m.Cursor != 29 {
		t.Fatalf("expected cursor on last todo, got %d", m.Cursor)
	}

	lines := strings.Split(m.View(), "\n")
	if len(lines) > 24 {
		t.Fatalf("view is %d lines on a 24 line terminal", len(lines))
	}
	if !strings.Contains(lines[0], "ToDo | 30 open") {
		t.Fatalf("header scrolled away, first line %q", lines[0])
	}
	out := strings.Join(lines, "\n")
	if !strings.Contains(out, "task-30") {
		t.Fatal("selected todo not visible")
	}
	if strings.Contains(out, "task-01") {
		t.Fatal("first page still rendered while the cursor is on the last one")
	}

	m = step(t, m, runes("k"))
	for range 28 {
		m = step(t, m, runes("k"))
	}
	if out := m.View(); !strings.Contains(out, "task-01") || strings.Contains(out, "task-30") {
		t.Fatal("moving back to the top should show the first page")
	}
}

func TestDetailPaneScrolls(t *testing.T) {
	store := &memStore{todos: []model.ToDo{{
		ID:          1,
		Name:        "Read",
		Priority:    1,
		EndDate:     "2025-01-01",
		Description: strings.Repeat("paragraph\n\n", 40) + "the end",
	}}, nextID: 1}
	m := loaded(t, store)
	m = step(t, m, tea.WindowSizeMsg{Width: 120, Height: 20})

	if strings.Contains(m.View(), "the end") {
		t.Fatal("long description should be clipped to the pane")
	}
	for range 20 {
		m = step(t, m, tea.KeyMsg{Type: tea.KeyPgDown})
	}
	if m.detail.YOffset == 0 {
		t.Fatal("page down did not scroll the detail pane")
	}
	if !strings.Contains(m.View(), "the end") {
		t.Fatal("end of the description not reachable")
	}
	if lines := strings.Count(m.View(), "\n") + 1; lines > 20 {
		t.Fatalf("view is %d lines on a 20 line terminal", lines)
	}

	for range 20 {
		m = step(t, m, tea.KeyMsg{Type: tea.KeyPgUp})
	}
	if m.detail.YOffset != 0 {
		t.Fatalf("page up should return to the top, offset %d", m.detail.YOffset)
	}
}
