package storage

import (
	"context"
	"log/slog"

	"github.com/VictoriaLuise11/ToDoAufgabe9/internal/model"
)

// Controller is the boolean CRUD surface the UI consumes. Every failure is
// logged and absorbed: callers see false or a short list, never an error.
type Controller struct {
	repo   Repository
	logger *slog.Logger
}

func NewController(repo Repository, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Controller{repo: repo, logger: logger.With("component", "todo-controller")}
}

// ListAll returns every stored todo. On a read error it returns whatever was
// read before the failure.
func (c *Controller) ListAll(ctx context.Context) []model.ToDo {
	todos, err := c.repo.ListToDos(ctx)
	if todos == nil {
		todos = []model.ToDo{}
	}
	if err != nil {
		c.logger.Error("list todos", "err", err, "loaded", len(todos))
		return todos
	}
	c.logger.Debug("listed todos", "count", len(todos))
	return todos
}

func (c *Controller) Insert(ctx context.Context, t model.ToDo) bool {
	id, err := c.repo.InsertToDo(ctx, t)
	if err != nil {
		c.logger.Error("insert todo", "name", t.Name, "err", err)
		return false
	}
	t.ID = id
	c.logger.Debug("inserted todo", "id", id, "name", t.Name)
	return t.IsPersisted()
}

func (c *Controller) Update(ctx context.Context, t model.ToDo) bool {
	if err := c.repo.UpdateToDo(ctx, t); err != nil {
		c.logger.Error("update todo", "id", t.ID, "err", err)
		return false
	}
	c.logger.Debug("updated todo", "id", t.ID, "done", t.Done)
	return true
}

func (c *Controller) Delete(ctx context.Context, id int64) bool {
	if err := c.repo.DeleteToDo(ctx, id); err != nil {
		c.logger.Error("delete todo", "id", id, "err", err)
		return false
	}
	c.logger.Debug("deleted todo", "id", id)
	return true
}

// Get is used by the CLI to look up a single record for edits.
func (c *Controller) Get(ctx context.Context, id int64) (model.ToDo, bool) {
	t, err := c.repo.GetToDo(ctx, id)
	if err != nil {
		c.logger.Error("get todo", "id", id, "err", err)
		return model.ToDo{}, false
	}
	return t, true
}
