package main

import (
	"github.com/VictoriaLuise11/ToDoAufgabe9/internal/storage"
	"github.com/VictoriaLuise11/ToDoAufgabe9/internal/update"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func runTUI(cmd *cobra.Command, _ []string) error {
	a, err := openApp(cmd, true)
	if err != nil {
		return err
	}
	defer a.Close()

	opts := update.Options{
		Notice:        bootstrapNotice(a.repo.Bootstrap()),
		MarkdownStyle: a.cfg.Markdown.Style,
	}
	program := tea.NewProgram(
		update.NewModel(cmd.Context(), a.todos, opts),
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
	)
	if _, err := program.Run(); err != nil {
		a.logger.Error("terminal ui exited", "err", err)
		return err
	}
	return nil
}

func bootstrapNotice(res storage.BootstrapResult) update.StatusBar {
	switch res.Status {
	case storage.BootstrapCopied:
		return update.StatusBar{Text: res.String()}
	case storage.BootstrapFailed:
		return update.StatusBar{Text: res.String(), IsError: true}
	default:
		return update.StatusBar{}
	}
}
