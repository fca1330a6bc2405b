package main

import (
	"fmt"

	"github.com/VictoriaLuise11/ToDoAufgabe9/internal/model"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an active todo",
	Args:  cobra.NoArgs,
	RunE:  runAdd,
}

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Change the fields of a todo; its state is kept",
	Args:  cobra.ExactArgs(1),
	RunE:  runEdit,
}

var doneCmd = &cobra.Command{
	Use:     "done <id>...",
	Aliases: []string{"complete"},
	Short:   "Mark todos as completed",
	Args:    cobra.MinimumNArgs(1),
	RunE:    runDone,
}

var deleteCmd = &cobra.Command{
	Use:     "delete <id>...",
	Aliases: []string{"rm"},
	Short:   "Delete todos",
	Args:    cobra.MinimumNArgs(1),
	RunE:    runDelete,
}

var (
	addForm  model.Form
	editForm model.Form
)

func formFlags(fs *pflag.FlagSet, f *model.Form) {
	fs.StringVar(&f.Name, "name", "", "todo name")
	fs.StringVar(&f.Priority, "priority", "", "priority, an integer")
	fs.StringVar(&f.EndDate, "due", "", "deadline, e.g. 2025-01-31")
	fs.StringVar(&f.Description, "description", "", "description, markdown is rendered in the UI")
}

func init() {
	formFlags(addCmd.Flags(), &addForm)
	formFlags(editCmd.Flags(), &editForm)
	rootCmd.AddCommand(addCmd, editCmd, doneCmd, deleteCmd)
}

func runAdd(cmd *cobra.Command, _ []string) error {
	t, err := model.ParseForm(addForm)
	if err != nil {
		return err
	}
	a, err := openApp(cmd, false)
	if err != nil {
		return err
	}
	defer a.Close()
	a.warnUnavailable(cmd.ErrOrStderr())

	if !a.todos.Insert(cmd.Context(), t) {
		return fmt.Errorf("could not add %q", t.Name)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "added %s\n", t.Name)
	return nil
}

// runEdit overlays only the flags that were given on the stored record.
func runEdit(cmd *cobra.Command, args []string) error {
	ids, err := parseIDs(args)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if !flags.Changed("name") && !flags.Changed("priority") && !flags.Changed("due") && !flags.Changed("description") {
		return errNoChanges
	}

	a, err := openApp(cmd, false)
	if err != nil {
		return err
	}
	defer a.Close()
	a.warnUnavailable(cmd.ErrOrStderr())

	current, ok := a.todos.Get(cmd.Context(), ids[0])
	if !ok {
		return fmt.Errorf("no todo #%d", ids[0])
	}
	form := model.FormFrom(current)
	if flags.Changed("name") {
		form.Name = editForm.Name
	}
	if flags.Changed("priority") {
		form.Priority = editForm.Priority
	}
	if flags.Changed("due") {
		form.EndDate = editForm.EndDate
	}
	if flags.Changed("description") {
		form.Description = editForm.Description
	}
	updated, err := current.Apply(form)
	if err != nil {
		return err
	}
	if !a.todos.Update(cmd.Context(), updated) {
		return fmt.Errorf("could not update #%d", updated.ID)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "updated #%d\n", updated.ID)
	return nil
}

func runDone(cmd *cobra.Command, args []string) error {
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

	out := cmd.OutOrStdout()
	for _, id := range ids {
		t, ok := a.todos.Get(cmd.Context(), id)
		if !ok {
			return fmt.Errorf("no todo #%d", id)
		}
		if t.Done {
			fmt.Fprintf(out, "#%d already completed\n", id)
			continue
		}
		if !a.todos.Update(cmd.Context(), t.Complete()) {
			return fmt.Errorf("could not complete #%d", id)
		}
		fmt.Fprintf(out, "completed #%d\n", id)
	}
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
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

	out := cmd.OutOrStdout()
	for _, id := range ids {
		if _, ok := a.todos.Get(cmd.Context(), id); !ok {
			return fmt.Errorf("no todo #%d", id)
		}
		if !a.todos.Delete(cmd.Context(), id) {
			return fmt.Errorf("could not delete #%d", id)
		}
		fmt.Fprintf(out, "deleted #%d\n", id)
	}
	return nil
}
