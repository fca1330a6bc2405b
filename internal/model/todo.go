package model

import (
	"errors"
	"strings"
)

var (
	ErrNameRequired        = errors.New("model: todo name is required")
	ErrInvalidPriority     = errors.New("model: priority must be an integer")
	ErrEndDateRequired     = errors.New("model: todo end date is required")
	ErrDescriptionRequired = errors.New("model: todo description is required")
)

// ToDo is a single task record. ID is assigned by storage on insert and
// is zero for records that have not been persisted yet.
type ToDo struct {
	ID          int64
	Name        string
	Priority    int
	EndDate     string
	Description string
	Done        bool
}

func (t ToDo) IsPersisted() bool {
	return t.ID > 0
}

// Complete returns a copy of t marked as completed.
func (t ToDo) Complete() ToDo {
	t.Done = true
	return t
}

// Validate applies the checks the add and edit dialogs enforce before a
// record is handed to storage. Storage itself accepts any values.
func (t ToDo) Validate() error {
	var errs []error
	if strings.TrimSpace(t.Name) == "" {
		errs = append(errs, ErrNameRequired)
	}
	if strings.TrimSpace(t.EndDate) == "" {
		errs = append(errs, ErrEndDateRequired)
	}
	if strings.TrimSpace(t.Description) == "" {
		errs = append(errs, ErrDescriptionRequired)
	}
	return errors.Join(errs...)
}
