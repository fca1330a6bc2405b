package views

import (
	"fmt"
	"strings"

	"github.com/VictoriaLuise11/ToDoAufgabe9/internal/model"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

type AppData struct {
	Header     string
	Tabs       string
	LeftPane   string
	RightPane  string
	StatusLine string
	IsError    bool
	Footer     string
}

var (
	headerStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	statusStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	panelStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	footerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	tabStyle         = lipgloss.NewStyle().Padding(0, 2).Foreground(lipgloss.Color("8"))
	activeTabStyle   = tabStyle.Bold(true).Foreground(lipgloss.Color("12")).Underline(true)
	cardStyle        = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("8")).Padding(0, 1)
	selectedCard     = cardStyle.BorderForeground(lipgloss.Color("12"))
	cardTitleStyle   = lipgloss.NewStyle().Bold(true)
	cardDetailStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	completedMarker  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render("✓")
	dialogTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
)

const paneWidth = 58

func RenderApp(data AppData) string {
	left := panelStyle.Width(paneWidth).Render(data.LeftPane)
	right := panelStyle.Width(paneWidth).Render(data.RightPane)
	row := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	status := statusStyle.Render(data.StatusLine)
	if data.IsError {
		status = errorStyle.Render(data.StatusLine)
	}

	lines := []string{headerStyle.Render(data.Header)}
	if data.Tabs != "" {
		lines = append(lines, data.Tabs)
	}
	lines = append(lines, row, status)
	if data.Footer != "" {
		lines = append(lines, footerStyle.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

// RenderTabs draws the Active/Completed tab row with per-tab counts.
func RenderTabs(selected model.Tab, views model.Views) string {
	tabs := make([]string, 0, 2)
	for _, tab := range []model.Tab{model.TabActive, model.TabCompleted} {
		label := fmt.Sprintf("%s (%d)", tab, len(views.For(tab)))
		if tab == selected {
			tabs = append(tabs, activeTabStyle.Render(label))
			continue
		}
		tabs = append(tabs, tabStyle.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// CardHeight is the number of lines one rendered card occupies.
const CardHeight = 4

// RenderCard draws t as a fixed-height card; long text is cut at the card
// edge rather than wrapped.
func RenderCard(t model.ToDo, selected bool, width int) string {
	line := lipgloss.NewStyle().MaxWidth(width - 4)
	title := cardTitleStyle.Render(t.Name)
	if t.Done {
		title = completedMarker + " " + title
	}
	lines := []string{
		line.Render(title),
		line.Render(cardDetailStyle.Render(fmt.Sprintf("#%d  priority %d  due %s", t.ID, t.Priority, t.EndDate))),
	}
	style := cardStyle
	if selected {
		style = selectedCard
	}
	return style.Width(width).Render(strings.Join(lines, "\n"))
}

// CardsPerPage is how many cards fit in height lines, leaving one line for
// the page indicator. A height of zero or less means no limit.
func CardsPerPage(height int) int {
	if height <= 0 {
		return 0
	}
	return max(1, (height-1)/CardHeight)
}

// RenderCards draws the page of todos that contains cursor. perPage <= 0
// draws every card.
func RenderCards(todos []model.ToDo, cursor, width, perPage int) string {
	if len(todos) == 0 {
		return cardDetailStyle.Render("nothing here")
	}
	start, end := 0, len(todos)
	if perPage > 0 && perPage < len(todos) {
		start = (cursor / perPage) * perPage
		end = min(start+perPage, len(todos))
	}
	cards := make([]string, 0, end-start+1)
	for i := start; i < end; i++ {
		cards = append(cards, RenderCard(todos[i], i == cursor, width))
	}
	if end-start < len(todos) {
		cards = append(cards, cardDetailStyle.Render(fmt.Sprintf("%d-%d of %d", start+1, end, len(todos))))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

// RenderDetail shows every field of t with the description as markdown
// wrapped at width columns.
func RenderDetail(t model.ToDo, markdownStyle string, width int) string {
	state := "active"
	if t.Done {
		state = "completed"
	}
	md := fmt.Sprintf("# %s\n\n- **Priority:** %d\n- **Deadline:** %s\n- **State:** %s\n\n%s\n",
		t.Name, t.Priority, t.EndDate, state, t.Description)
	return RenderMarkdown(md, markdownStyle, width)
}

func RenderDialog(title string, fields []string, errText string) string {
	lines := []string{dialogTitleStyle.Render(title), ""}
	lines = append(lines, fields...)
	if errText != "" {
		lines = append(lines, "", errorStyle.Render(errText))
	}
	lines = append(lines, "", footerStyle.Render("tab next field • enter save • esc cancel"))
	return strings.Join(lines, "\n")
}

// RenderMarkdown renders md with a glamour standard style. width <= 0 keeps
// glamour's default wrap.
func RenderMarkdown(md, style string, width int) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	if style == "" {
		style = "dark"
	}
	opts := []glamour.TermRendererOption{glamour.WithStandardStyle(style)}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
