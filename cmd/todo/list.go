package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/VictoriaLuise11/ToDoAufgabe9/internal/model"
	"github.com/VictoriaLuise11/ToDoAufgabe9/internal/views"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// todoJSON is the --json row shape; field names follow the table columns.
type todoJSON struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Priority    int    `json:"priority"`
	EndDate     string `json:"enddate"`
	Description string `json:"description"`
	State       bool   `json:"state"`
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List active todos",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one todo with its description rendered as markdown",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

var (
	listCompleted bool
	listAll       bool
	listJSON      bool
)

func init() {
	listCmd.Flags().BoolVar(&listCompleted, "completed", false, "list completed todos instead")
	listCmd.Flags().BoolVar(&listAll, "all", false, "list every todo")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "print JSON")
	listCmd.MarkFlagsMutuallyExclusive("completed", "all")
	rootCmd.AddCommand(listCmd, showCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	a, err := openApp(cmd, false)
	if err != nil {
		return err
	}
	defer a.Close()
	a.warnUnavailable(cmd.ErrOrStderr())

	todos := a.todos.ListAll(cmd.Context())
	switch {
	case listAll:
	case listCompleted:
		todos = model.Partition(todos).Completed
	default:
		todos = model.Partition(todos).Active
	}

	out := cmd.OutOrStdout()
	if listJSON {
		rows := make([]todoJSON, 0, len(todos))
		for _, t := range todos {
			rows = append(rows, todoJSON{
				ID:          t.ID,
				Name:        t.Name,
				Priority:    t.Priority,
				EndDate:     t.EndDate,
				Description: t.Description,
				State:       t.Done,
			})
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	if len(todos) == 0 {
		fmt.Fprintln(out, "no todos")
		return nil
	}
	for _, t := range todos {
		mark := " "
		if t.Done {
			mark = "x"
		}
		fmt.Fprintf(out, "#%d [%s] %s (priority %d, due %s)\n", t.ID, mark, t.Name, t.Priority, t.EndDate)
	}
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	ids, err := parseIDs(args)
	if err != nil {
		return err
	}
	a, err := openApp(cmd, false)
	if err != nil {
		return err
	}
	defer a.Close()
	a.warnUnavailable(cmd.ErrOrStderr())

	t, ok := a.todos.Get(cmd.Context(), ids[0])
	if !ok {
		return fmt.Errorf("no todo #%d", ids[0])
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, views.RenderDetail(t, markdownStyle(out, a.cfg.Markdown.Style), 0))
	return nil
}

// markdownStyle keeps the configured style for terminals and drops to plain
// text when output is piped or redirected.
func markdownStyle(w io.Writer, configured string) string {
	if f, ok := w.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return configured
	}
	return "notty"
}
