package sus

import (
	"strings"

	"github.com/posix2nu/posix2nu/nu/quote"
)

func init() {
	add("ls", "list directory contents", Ls)
}

// Ls converts ls invocations, mapping the common POSIX flags onto Nushell's
// ls flags. Combined short flags are enumerated explicitly; anything not
// recognized is carried as an inline comment rather than dropped.
func Ls(args []string) string {
	if len(args) == 0 {
		return "ls"
	}

	var nuArgs []string
	var paths []string

	for _, arg := range args {
		switch arg {
		case "-l":
			nuArgs = append(nuArgs, "--long")
		case "-a":
			nuArgs = append(nuArgs, "--all")
		case "-h":
			nuArgs = append(nuArgs, "--help")
		case "-la", "-al":
			nuArgs = append(nuArgs, "--long", "--all")
		case "-lh", "-hl":
			nuArgs = append(nuArgs, "--long", "--help")
		case "-ah", "-ha":
			nuArgs = append(nuArgs, "--all", "--help")
		case "-lah", "-alh", "-hla", "-hal", "-ahl", "-lha":
			nuArgs = append(nuArgs, "--long", "--all", "--help")
		case "-1", "-F", "-G":
			// Nushell's table output covers these.
		case "-d":
			nuArgs = append(nuArgs, "--directory")
		case "-R":
			nuArgs = append(nuArgs, "--recursive")
		case "-r":
			nuArgs = append(nuArgs, "--reverse")
		case "-t":
			nuArgs = append(nuArgs, "--sort-by", "modified")
		case "-S":
			nuArgs = append(nuArgs, "--sort-by", "size")
		case "-i":
			// Inode numbers: no Nushell column for them.
			nuArgs = append(nuArgs, "# --show-inode")
		case "--color", "--color=auto", "--color=always", "--color=never":
			// Nushell handles coloring itself.
		default:
			if strings.HasPrefix(arg, "-") {
				nuArgs = append(nuArgs, "# Unknown flag: "+arg)
			} else {
				paths = append(paths, quote.Word(arg))
			}
		}
	}

	result := "ls"
	if len(nuArgs) > 0 {
		result += " " + strings.Join(nuArgs, " ")
	}
	if len(paths) > 0 {
		result += " " + strings.Join(paths, " ")
	}
	return result
}
