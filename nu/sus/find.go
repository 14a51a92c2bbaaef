package sus

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/posix2nu/posix2nu/nu/quote"
)

func init() {
	add("find", "search for files in a directory hierarchy", FindCmd)
}

// FindCmd converts find invocations to recursive ls globs with where
// filters. Time and permission predicates degrade to comments inside
// the where clause.
func FindCmd(args []string) string {
	if len(args) == 0 {
		return "find"
	}

	path := "."
	var namePattern, fileType, execCommand, sizeFilter, timeFilter, permFilter string
	printAction := true
	var maxDepth *int

	for i := 0; i < len(args); {
		arg := args[i]
		switch {
		case arg == "-name":
			if i+1 < len(args) {
				namePattern = args[i+1]
				i += 2
			} else {
				i++
			}
		case arg == "-type":
			if i+1 < len(args) {
				fileType = args[i+1]
				i += 2
			} else {
				i++
			}
		case arg == "-exec":
			var execParts []string
			i++
			for i < len(args) && args[i] != ";" && args[i] != `\;` {
				execParts = append(execParts, args[i])
				i++
			}
			if len(execParts) > 0 {
				execCommand = strings.Join(execParts, " ")
				printAction = false
			}
			if i < len(args) {
				i++
			}
		case arg == "-print" || arg == "-print0":
			printAction = true
			i++
		case arg == "-maxdepth":
			if i+1 < len(args) {
				if n, err := strconv.Atoi(args[i+1]); err == nil {
					maxDepth = &n
				}
				i += 2
			} else {
				i++
			}
		case arg == "-mindepth":
			if i+1 < len(args) {
				i += 2
			} else {
				i++
			}
		case arg == "-size":
			if i+1 < len(args) {
				sizeFilter = args[i+1]
				i += 2
			} else {
				i++
			}
		case arg == "-newer" || arg == "-newermt" || arg == "-mtime" || arg == "-atime" || arg == "-ctime":
			if i+1 < len(args) {
				timeFilter = fmt.Sprintf("%s %s", arg, args[i+1])
				i += 2
			} else {
				i++
			}
		case arg == "-perm":
			if i+1 < len(args) {
				permFilter = args[i+1]
				i += 2
			} else {
				i++
			}
		case arg == "-delete":
			execCommand = "rm"
			printAction = false
			i++
		case !strings.HasPrefix(arg, "-"):
			path = arg
			i++
		default:
			// Unknown predicate, skip.
			i++
		}
	}

	var sb strings.Builder

	if path == "." {
		sb.WriteString("ls")
	} else {
		fmt.Fprintf(&sb, "ls %s", quote.Word(path))
	}

	if maxDepth == nil || *maxDepth > 1 {
		sb.WriteString("/**/*")
	}
	if maxDepth != nil && *maxDepth > 1 {
		fmt.Fprintf(&sb, " # max depth %d", *maxDepth)
	}

	var filters []string

	if namePattern != "" {
		if strings.ContainsAny(namePattern, "*?") {
			regex := strings.ReplaceAll(namePattern, "*", ".*")
			regex = strings.ReplaceAll(regex, "?", ".")
			filters = append(filters, fmt.Sprintf("name =~ %s", quote.Word(regex)))
		} else {
			filters = append(filters, fmt.Sprintf("name == %s", quote.Word(namePattern)))
		}
	}

	if fileType != "" {
		typeName := map[string]string{
			"f": "file",
			"d": "dir",
			"l": "symlink",
			"b": "block",
			"c": "char",
			"p": "fifo",
			"s": "socket",
		}[fileType]
		if typeName == "" {
			typeName = "unknown"
		}
		filters = append(filters, fmt.Sprintf("type == %q", typeName))
	}

	if sizeFilter != "" {
		switch {
		case strings.HasPrefix(sizeFilter, "+"):
			filters = append(filters, fmt.Sprintf("size > %s", parseSizeValue(sizeFilter[1:])))
		case strings.HasPrefix(sizeFilter, "-"):
			filters = append(filters, fmt.Sprintf("size < %s", parseSizeValue(sizeFilter[1:])))
		default:
			filters = append(filters, fmt.Sprintf("size == %s", parseSizeValue(sizeFilter)))
		}
	}

	if timeFilter != "" {
		filters = append(filters, fmt.Sprintf("# time filter: %s", timeFilter))
	}
	if permFilter != "" {
		filters = append(filters, fmt.Sprintf("# permission filter: %s", permFilter))
	}

	if len(filters) > 0 {
		sb.WriteString(" | where ")
		sb.WriteString(strings.Join(filters, " and "))
	}

	if execCommand != "" {
		if execCommand == "rm" {
			sb.WriteString(" | each { |file| rm $file.name }")
		} else {
			cmd := strings.ReplaceAll(execCommand, "{}", "$file.name")
			fmt.Fprintf(&sb, " | each { |file| %s }", cmd)
		}
	} else if printAction {
		sb.WriteString(" | get name")
	}

	return sb.String()
}

// parseSizeValue expands suffixed sizes like 1M or 500k into byte
// counts. Blocks are 512 bytes and words are 2.
func parseSizeValue(sizeStr string) string {
	sizeStr = strings.TrimSpace(sizeStr)
	if sizeStr == "" {
		return "0"
	}

	numberPart := sizeStr
	unit := ""
	last := sizeStr[len(sizeStr)-1]
	if last < '0' || last > '9' {
		numberPart = sizeStr[:len(sizeStr)-1]
		unit = strings.ToLower(sizeStr[len(sizeStr)-1:])
	}

	number, err := strconv.ParseInt(numberPart, 10, 64)
	if err != nil {
		number = 0
	}

	var multiplier int64 = 1
	switch unit {
	case "k":
		multiplier = 1024
	case "m":
		multiplier = 1024 * 1024
	case "g":
		multiplier = 1024 * 1024 * 1024
	case "t":
		multiplier = 1024 * 1024 * 1024 * 1024
	case "c":
		multiplier = 1
	case "w":
		multiplier = 2
	case "b":
		multiplier = 512
	}

	return strconv.FormatInt(number*multiplier, 10)
}
