package sus

import (
	"fmt"
	"strings"

	"github.com/pborman/getopt/v2"

	"github.com/posix2nu/posix2nu/nu/quote"
)

func init() {
	add("mkdir", "make directories", Mkdir)
}

// Mkdir converts mkdir invocations. The target mkdir creates parents
// by default, so -p becomes a comment.
func Mkdir(args []string) string {
	if len(args) == 0 {
		return "mkdir"
	}

	opts := getopt.New()
	parents := opts.BoolLong("parents", 'p', "create parent directories")
	opts.StringLong("mode", 'm', "", "file mode")
	verbose := opts.BoolLong("verbose", 'v', "print created directories")

	if err := opts.Getopt(append([]string{"mkdir"}, args...), nil); err != nil {
		return fmt.Sprintf("mkdir %s", quote.Words(args))
	}

	directories := opts.Args()
	if len(directories) == 0 {
		return "mkdir"
	}

	var sb strings.Builder
	sb.WriteString("mkdir")

	if *verbose {
		sb.WriteString(" --verbose")
	}
	for _, dir := range directories {
		fmt.Fprintf(&sb, " %s", quote.Word(dir))
	}
	if *parents {
		sb.WriteString(" # creates parent directories automatically")
	}

	return sb.String()
}
