package sus

import (
	"fmt"
	"strings"

	"github.com/posix2nu/posix2nu/nu/quote"
)

func init() {
	add("stat", "display file status", Stat)
}

// Stat converts stat invocations. A -c format specifier selects one
// column from the stat record.
func Stat(args []string) string {
	if len(args) == 0 {
		return "stat"
	}

	var files []string
	var format string
	terse := false
	zeroTerminated := false

	for i := 0; i < len(args); {
		arg := args[i]
		switch {
		case arg == "-c" || arg == "--format":
			if i+1 < len(args) {
				format = args[i+1]
				i += 2
			} else {
				i++
			}
		case arg == "--printf":
			if i+1 < len(args) {
				i += 2
			} else {
				i++
			}
		case arg == "-L" || arg == "--dereference":
			i++
		case arg == "-f" || arg == "--file-system":
			i++
		case arg == "-t" || arg == "--terse":
			terse = true
			i++
		case arg == "-z" || arg == "--zero":
			zeroTerminated = true
			i++
		case arg == "--help":
			return "stat --help"
		case arg == "--version":
			return "stat --version"
		case !strings.HasPrefix(arg, "-"):
			files = append(files, arg)
			i++
		default:
			// Unknown flag, skip.
			i++
		}
	}

	if len(files) == 0 {
		return "stat"
	}

	if len(files) == 1 {
		result := fmt.Sprintf("%s | stat", quote.Word(files[0]))
		if format != "" {
			result = applyStatFormat(result, format)
		}
		if terse {
			result += " | select name size mode modified"
		}
		return result
	}

	result := fmt.Sprintf("[%s] | each { |file| $file | stat", quote.Words(files))
	if format != "" {
		result = applyStatFormat(result, format)
	}
	if terse {
		result += " | select name size mode modified"
	}
	result += " }"

	if zeroTerminated {
		result += " | str join (char null)"
	} else {
		result += " | to json -r"
	}
	return result
}

// applyStatFormat maps stat format specifiers to stat record columns.
func applyStatFormat(result, format string) string {
	columns := map[string]string{
		"%n": "name",
		"%s": "size",
		"%f": "mode",
		"%F": "type",
		"%a": "mode",
		"%A": "mode",
		"%u": "uid",
		"%g": "gid",
		"%U": "user",
		"%G": "group",
		"%h": "nlink",
		"%i": "inode",
		"%m": "modified",
		"%c": "changed",
		"%x": "accessed",
		"%y": "modified",
		"%z": "changed",
	}
	if column, ok := columns[format]; ok {
		return fmt.Sprintf("%s | get %s", result, column)
	}
	return result
}
