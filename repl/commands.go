package repl

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var ErrUnknownCommand = errors.New("unknown command")

// Command is one word the repl understands
type Command struct {
	Name string
	// Argument synopsis shown by help, e.g. "<command> [args...]"
	Usage string
	Help  string
	// Run gets the words following the command name
	Run func(args []string, r *Repl) (string, error)
}

// Commands dispatches input lines by their first word
type Commands []Command

// Handler returns a MessageHandler running the matching command. "help"
// lists all commands. Unknown commands are reported back, not treated as
// errors.
func (cmds Commands) Handler() MessageHandler {
	return func(input string, r *Repl) (string, error) {
		words := strings.Fields(input)
		if len(words) == 0 {
			return "", nil
		}
		if words[0] == "help" {
			return cmds.help(), nil
		}
		idx := slices.IndexFunc(cmds, func(c Command) bool { return c.Name == words[0] })
		if idx < 0 {
			return fmt.Sprintf("%s: %q, try help", ErrUnknownCommand, words[0]), nil
		}
		return cmds[idx].Run(words[1:], r)
	}
}

func (cmds Commands) help() string {
	var b strings.Builder
	b.WriteString("Commands:")
	for _, c := range cmds {
		fmt.Fprintf(&b, "\n\t%s", c.Name)
		if c.Usage != "" {
			fmt.Fprintf(&b, " %s", c.Usage)
		}
		fmt.Fprintf(&b, ": %s", c.Help)
	}
	b.WriteString("\n\thelp: Show this message")
	return b.String()
}
