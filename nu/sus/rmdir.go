package sus

import (
	"fmt"
	"strings"

	"github.com/pborman/getopt/v2"

	"github.com/posix2nu/posix2nu/nu/quote"
)

func init() {
	add("rmdir", "remove empty directories", Rmdir)
}

// Rmdir converts rmdir invocations to rm. There is no empty-only
// removal on the other side, so a note flags the behavior difference.
func Rmdir(args []string) string {
	if len(args) == 0 {
		return "rm"
	}

	opts := getopt.New()
	parents := opts.BoolLong("parents", 'p', "remove parent directories too")
	ignoreNonEmpty := opts.BoolLong("ignore-fail-on-non-empty", 0, "")
	verbose := opts.BoolLong("verbose", 'v', "print removed directories")

	if err := opts.Getopt(append([]string{"rmdir"}, args...), nil); err != nil {
		return fmt.Sprintf("rm %s", quote.Words(args))
	}

	directories := opts.Args()
	if len(directories) == 0 {
		return "rm"
	}

	var sb strings.Builder
	sb.WriteString("rm")

	if *verbose {
		sb.WriteString(" --verbose")
	}
	if *parents {
		sb.WriteString(" --recursive")
	}
	for _, dir := range directories {
		fmt.Fprintf(&sb, " %s", quote.Word(dir))
	}
	if !*ignoreNonEmpty {
		sb.WriteString(" # Note: rmdir only removes empty directories")
	}

	return sb.String()
}
