package sus

import (
	"fmt"

	"github.com/pborman/getopt/v2"

	"github.com/posix2nu/posix2nu/nu/quote"
)

func init() {
	add("tee", "duplicate standard input to files", Tee)
}

// Tee converts tee invocations. The flag grammar is plain enough for
// a standard option parser; anything it rejects passes through
// untouched.
func Tee(args []string) string {
	if len(args) == 0 {
		return "tee"
	}

	opts := getopt.New()
	appendFlag := opts.BoolLong("append", 'a', "append to files")
	opts.BoolLong("ignore-interrupts", 'i', "ignore interrupt signals")
	help := opts.BoolLong("help", 0, "")
	version := opts.BoolLong("version", 0, "")

	if err := opts.Getopt(append([]string{"tee"}, args...), nil); err != nil {
		return fmt.Sprintf("tee %s", quote.Words(args))
	}
	if *help {
		return "tee --help"
	}
	if *version {
		return "tee --version"
	}

	files := opts.Args()
	if len(files) == 0 {
		return "tee"
	}

	if *appendFlag {
		return fmt.Sprintf("tee -a %s", quote.Words(files))
	}
	return fmt.Sprintf("tee %s", quote.Words(files))
}
