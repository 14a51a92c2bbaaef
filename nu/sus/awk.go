package sus

import (
	"fmt"

	"github.com/posix2nu/posix2nu/nu/quote"
)

func init() {
	add("awk", "pattern scanning and processing", Awk)
}

// Awk passes awk through as an external command. The awk language is
// too far from pipeline form to translate, so only the arguments get
// requoted.
func Awk(args []string) string {
	if len(args) == 0 {
		return "^awk"
	}
	return fmt.Sprintf("^awk %s", quote.Words(args))
}
