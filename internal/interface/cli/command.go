package cli

import (
	"strings"
	"unicode"
)

// ══════════════════════════════════════════════════════════════════════════════
// TOP-LEVEL COMMANDS
// ══════════════════════════════════════════════════════════════════════════════

// Command is a top-level shell command.
type Command int

const (
	CommandUnknown Command = iota
	CommandEmpty
	CommandExit
	CommandBack
	CommandAddStudents
	CommandAddPoints
	CommandFind
	CommandList
	CommandStatistics
	CommandNotify
)

// String returns the command as typed by the user.
func (c Command) String() string {
	switch c {
	case CommandEmpty:
		return "empty"
	case CommandExit:
		return "exit"
	case CommandBack:
		return "back"
	case CommandAddStudents:
		return "add students"
	case CommandAddPoints:
		return "add points"
	case CommandFind:
		return "find"
	case CommandList:
		return "list"
	case CommandStatistics:
		return "statistics"
	case CommandNotify:
		return "notify"
	default:
		return "unknown"
	}
}

// ParseCommand lower-cases the line, splits it into a command word and an
// argument and resolves the command. Only "add" takes an argument; any
// other command with an argument is unknown, and so is "help".
func ParseCommand(line string) Command {
	line = strings.ToLower(strings.TrimSpace(line))
	if line == "" {
		return CommandEmpty
	}

	name, arg := line, ""
	if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
		name, arg = line[:i], strings.TrimSpace(line[i:])
	}

	if name == "add" {
		switch arg {
		case "students":
			return CommandAddStudents
		case "points":
			return CommandAddPoints
		default:
			return CommandUnknown
		}
	}

	if arg != "" {
		return CommandUnknown
	}

	switch name {
	case "exit":
		return CommandExit
	case "back":
		return CommandBack
	case "find":
		return CommandFind
	case "list":
		return CommandList
	case "statistics":
		return CommandStatistics
	case "notify":
		return CommandNotify
	default:
		return CommandUnknown
	}
}

// isBack reports whether a sub-shell line asks to return to the parent.
func isBack(line string) bool {
	return strings.EqualFold(strings.TrimSpace(line), "back")
}
