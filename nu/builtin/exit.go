package builtin

import (
	"fmt"
	"strconv"
)

func init() {
	add("exit", "exit the shell with a status code", Exit)
}

// Exit converts exit invocations. Extra arguments beyond the status code
// are dropped; a non-numeric status degrades to 1.
func Exit(args []string) string {
	if len(args) == 0 {
		return "exit"
	}
	if code, err := strconv.Atoi(args[0]); err == nil {
		return fmt.Sprintf("exit %d", code)
	}
	return "exit 1"
}
