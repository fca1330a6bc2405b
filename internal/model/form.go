package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Form holds the raw text a user typed into the add or edit dialog.
type Form struct {
	Name        string
	Priority    string
	EndDate     string
	Description string
}

func FormFrom(t ToDo) Form {
	return Form{
		Name:        t.Name,
		Priority:    strconv.Itoa(t.Priority),
		EndDate:     t.EndDate,
		Description: t.Description,
	}
}

// ParseForm turns dialog input into a new, active ToDo. All failing fields
// are reported together.
func ParseForm(f Form) (ToDo, error) {
	return ToDo{}.Apply(f)
}

// Apply overwrites the editable fields of t from f. ID and Done are kept.
func (t ToDo) Apply(f Form) (ToDo, error) {
	var errs []error
	priority, err := strconv.Atoi(strings.TrimSpace(f.Priority))
	if err != nil {
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidPriority, f.Priority))
	}
	out := t
	out.Name = strings.TrimSpace(f.Name)
	out.Priority = priority
	out.EndDate = strings.TrimSpace(f.EndDate)
	out.Description = strings.TrimSpace(f.Description)
	if vErr := out.Validate(); vErr != nil {
		errs = append(errs, vErr)
	}
	if len(errs) > 0 {
		return t, errors.Join(errs...)
	}
	return out, nil
}
