package storage

import (
	"context"
	"errors"

	"github.com/VictoriaLuise11/ToDoAufgabe9/internal/model"
)

var ErrNotFound = errors.New("storage: not found")

type Repository interface {
	ListToDos(ctx context.Context) ([]model.ToDo, error)
	GetToDo(ctx context.Context, id int64) (model.ToDo, error)
	InsertToDo(ctx context.Context, in model.ToDo) (int64, error)
	UpdateToDo(ctx context.Context, in model.ToDo) error
	DeleteToDo(ctx context.Context, id int64) error
}
