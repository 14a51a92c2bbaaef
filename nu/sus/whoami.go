package sus

import (
	"fmt"

	"github.com/posix2nu/posix2nu/nu/quote"
)

func init() {
	add("whoami", "print the effective user name", Whoami)
}

// Whoami converts whoami to an environment lookup with a system
// fallback. Arguments pass through unchanged.
func Whoami(args []string) string {
	if len(args) == 0 {
		return "$env.USER? | default (whoami)"
	}
	return fmt.Sprintf("whoami %s", quote.Words(args))
}
