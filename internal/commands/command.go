package commands

import (
	"fmt"
	"strconv"
	"strings"
)

type Type string

const (
	TypeAdd    Type = "add"
	TypeDone   Type = "done"
	TypeDelete Type = "delete"
	TypeShow   Type = "show"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// AddArgs carries the raw field text; validation happens in the handler the
// same way it does for the add dialog.
type AddArgs struct {
	Name        string
	Priority    string
	EndDate     string
	Description string
}

type TargetArgs struct {
	ID int64
}

type ShowArgs struct {
	Subject string
}

type Command struct {
	Type   Type
	Raw    string
	Add    *AddArgs
	Done   *TargetArgs
	Delete *TargetArgs
	Show   *ShowArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeAdd:
		return parseAdd(input, args)
	case TypeDone, "complete":
		target, err := parseTarget(TypeDone, args)
		if err != nil {
			return Command{}, err
		}
		return Command{Type: TypeDone, Raw: input, Done: target}, nil
	case TypeDelete, "rm":
		target, err := parseTarget(TypeDelete, args)
		if err != nil {
			return Command{}, err
		}
		return Command{Type: TypeDelete, Raw: input, Delete: target}, nil
	case TypeShow:
		return parseShow(input, args)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

// parseAdd reads "add <name words> [p:<priority>] [due:<date>] [-- <description>]".
func parseAdd(raw string, args []string) (Command, error) {
	out := AddArgs{}
	name := make([]string, 0, len(args))
	for i, arg := range args {
		lower := strings.ToLower(arg)
		switch {
		case arg == "--":
			out.Description = strings.Join(args[i+1:], " ")
			return finishAdd(raw, out, name)
		case strings.HasPrefix(lower, "p:"):
			out.Priority = arg[len("p:"):]
		case strings.HasPrefix(lower, "due:"):
			out.EndDate = arg[len("due:"):]
		default:
			name = append(name, arg)
		}
	}
	return finishAdd(raw, out, name)
}

func finishAdd(raw string, out AddArgs, name []string) (Command, error) {
	out.Name = strings.TrimSpace(strings.Join(name, " "))
	if out.Name == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a name"}
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &out}, nil
}

func parseTarget(kind Type, args []string) (*TargetArgs, error) {
	if len(args) != 1 {
		return nil, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s requires exactly one id", kind)}
	}
	id, err := strconv.ParseInt(strings.TrimPrefix(args[0], "#"), 10, 64)
	if err != nil || id <= 0 {
		return nil, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s: invalid id %q", kind, args[0])}
	}
	return &TargetArgs{ID: id}, nil
}

func parseShow(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "show requires active or completed"}
	}
	subject := strings.ToLower(args[0])
	switch subject {
	case "active", "open":
		subject = "active"
	case "completed", "done":
		subject = "completed"
	default:
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("show: unknown view %q", args[0])}
	}
	return Command{Type: TypeShow, Raw: raw, Show: &ShowArgs{Subject: subject}}, nil
}
