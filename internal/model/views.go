package model

type Tab int

const (
	TabActive Tab = iota
	TabCompleted
)

func (t Tab) String() string {
	switch t {
	case TabActive:
		return "Active"
	case TabCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}

func (t Tab) Next() Tab {
	if t == TabActive {
		return TabCompleted
	}
	return TabActive
}

// Views is the active/completed partition of one list fetch.
type Views struct {
	Active    []ToDo
	Completed []ToDo
}

// Partition splits todos by their Done flag, keeping the input order.
// Every record lands in exactly one of the two slices.
func Partition(todos []ToDo) Views {
	out := Views{
		Active:    make([]ToDo, 0, len(todos)),
		Completed: make([]ToDo, 0),
	}
	for _, t := range todos {
		if t.Done {
			out.Completed = append(out.Completed, t)
			continue
		}
		out.Active = append(out.Active, t)
	}
	return out
}

func (v Views) For(tab Tab) []ToDo {
	if tab == TabCompleted {
		return v.Completed
	}
	return v.Active
}
