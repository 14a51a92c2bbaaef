package sus

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/posix2nu/posix2nu/nu/quote"
)

func init() {
	add("sed", "stream editor for filtering and transforming text", Sed)
}

// Sed converts sed invocations. The script is split into address plus
// command plus arguments and each command maps to a pipeline stage.
// Hold space commands have no pipeline equivalent and degrade to
// comments.
func Sed(args []string) string {
	if len(args) == 0 {
		return "sed"
	}

	var script string
	var files []string
	inPlace := false
	quiet := false
	separateFiles := false
	backupSuffix := ""

	for i := 0; i < len(args); {
		arg := args[i]
		switch {
		case arg == "-e" || arg == "--expression":
			if i+1 < len(args) {
				if script != "" {
					script += ";"
				}
				script += args[i+1]
				i += 2
			} else {
				i++
			}
		case arg == "-f" || arg == "--file":
			if i+1 < len(args) {
				script += fmt.Sprintf("# script from file: %s", args[i+1])
				i += 2
			} else {
				i++
			}
		case arg == "-i" || arg == "--in-place":
			inPlace = true
			i++
		case arg == "-n" || arg == "--quiet" || arg == "--silent":
			quiet = true
			i++
		case arg == "-r" || arg == "-E" || arg == "--regexp-extended":
			// Extended regex syntax changes nothing downstream.
			i++
		case arg == "-s" || arg == "--separate":
			separateFiles = true
			i++
		case arg == "-l" || arg == "--line-length":
			if i+1 < len(args) {
				i += 2
			} else {
				i++
			}
		case strings.HasPrefix(arg, "-i"):
			inPlace = true
			backupSuffix = arg[2:]
			i++
		case !strings.HasPrefix(arg, "-"):
			if script == "" {
				script = arg
			} else {
				files = append(files, arg)
			}
			i++
		default:
			// Unknown flag, skip.
			i++
		}
	}

	if script == "" {
		return "sed"
	}

	commands := parseSedScript(script)

	var sb strings.Builder

	switch len(files) {
	case 0:
		sb.WriteString("lines")
	case 1:
		fmt.Fprintf(&sb, "open %s | lines", quote.Word(files[0]))
	default:
		if separateFiles {
			fmt.Fprintf(&sb, "ls %s | each { |file| open $file.name | lines }", quote.Words(files))
		} else {
			fmt.Fprintf(&sb, "[%s] | each { |file| open $file | lines } | flatten", quote.Words(files))
		}
	}

	for _, command := range commands {
		sb.WriteString(convertSedCommand(command))
	}

	if quiet {
		sb.WriteString(" # quiet mode - only explicit prints")
	}

	if inPlace {
		if len(files) > 0 {
			sb.WriteString(" | save")
			if backupSuffix != "" {
				fmt.Fprintf(&sb, " --backup %s", quote.Word(backupSuffix))
			}
			fmt.Fprintf(&sb, " %s", quote.Word(files[0]))
		} else {
			sb.WriteString(" # in-place editing requires file input")
		}
	}

	return sb.String()
}

// sedCommand is one script command in [address]command[arguments]
// form.
type sedCommand struct {
	Address   string
	Command   rune
	Arguments string
}

// parseSedScript splits a script on top-level semicolons.
func parseSedScript(script string) []sedCommand {
	var commands []sedCommand
	var current strings.Builder
	braceDepth := 0

	flush := func() {
		text := strings.TrimSpace(current.String())
		if text != "" {
			if cmd, ok := parseSingleSedCommand(text); ok {
				commands = append(commands, cmd)
			}
		}
		current.Reset()
	}

	for _, ch := range script {
		switch {
		case ch == ';' && braceDepth == 0:
			flush()
		case ch == '{':
			braceDepth++
			current.WriteRune(ch)
		case ch == '}':
			braceDepth--
			current.WriteRune(ch)
		default:
			current.WriteRune(ch)
		}
	}
	flush()

	return commands
}

// parseSingleSedCommand scans for the first command letter; everything
// before it is the address.
func parseSingleSedCommand(text string) (sedCommand, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return sedCommand{}, false
	}

	var address strings.Builder
	for i, ch := range trimmed {
		switch ch {
		case 's', 'd', 'p', 'q', 'n', 'N', 'h', 'H', 'g', 'G', 'x', 'l', '=',
			'a', 'i', 'c', 'r', 'w', 'y', 'b', 't', 'T':
			return sedCommand{
				Address:   strings.TrimSpace(address.String()),
				Command:   ch,
				Arguments: strings.TrimSpace(trimmed[i+1:]),
			}, true
		default:
			address.WriteRune(ch)
		}
	}
	return sedCommand{}, false
}

func convertSedCommand(command sedCommand) string {
	var sb strings.Builder

	if command.Address != "" {
		sb.WriteString(convertSedAddress(command.Address))
	}

	switch command.Command {
	case 's':
		if subst, ok := parseSubstitute(command.Arguments); ok {
			fmt.Fprintf(&sb, " | each { |line| $line | str replace %s %s }",
				quote.Word(subst.Pattern), quote.Word(subst.Replacement))
			if subst.Global {
				sb.WriteString(" # global replacement")
			}
		} else {
			fmt.Fprintf(&sb, " # substitute: %s", command.Arguments)
		}
	case 'd':
		sb.WriteString(" | where false")
	case 'p':
		sb.WriteString(" | each { |line| print $line; $line }")
	case 'q':
		sb.WriteString(" | first")
		if command.Arguments != "" {
			if count, err := strconv.Atoi(command.Arguments); err == nil {
				fmt.Fprintf(&sb, " %d", count)
			}
		}
	case 'n':
		sb.WriteString(" | skip 1")
	case 'N':
		sb.WriteString(` | window 2 | each { |pair| $pair | str join "\n" }`)
	case 'h':
		sb.WriteString(" # hold space operation")
	case 'H':
		sb.WriteString(" # hold space append operation")
	case 'g':
		sb.WriteString(" # get from hold space")
	case 'G':
		sb.WriteString(" # get append from hold space")
	case 'x':
		sb.WriteString(" # exchange with hold space")
	case 'l':
		sb.WriteString(" | each { |line| $line | debug }")
	case '=':
		sb.WriteString(" | enumerate | each { |item| print $item.index; $item.item }")
	case 'a':
		fmt.Fprintf(&sb, ` | each { |line| [$line %s] | str join "\n" }`, quote.Word(command.Arguments))
	case 'i':
		fmt.Fprintf(&sb, ` | each { |line| [%s $line] | str join "\n" }`, quote.Word(command.Arguments))
	case 'c':
		fmt.Fprintf(&sb, " | each { |line| %s }", quote.Word(command.Arguments))
	case 'r':
		fmt.Fprintf(&sb, ` | each { |line| [$line (open %s)] | str join "\n" }`, quote.Word(command.Arguments))
	case 'w':
		fmt.Fprintf(&sb, " | tee { save %s }", quote.Word(command.Arguments))
	case 'y':
		if trans, ok := parseTransliterate(command.Arguments); ok {
			fmt.Fprintf(&sb, " | each { |line| $line | str replace --all %s %s }",
				quote.Word(trans.From), quote.Word(trans.To))
		} else {
			fmt.Fprintf(&sb, " # transliterate: %s", command.Arguments)
		}
	case 'b':
		fmt.Fprintf(&sb, " # branch: %s", command.Arguments)
	case 't':
		fmt.Fprintf(&sb, " # test: %s", command.Arguments)
	case 'T':
		fmt.Fprintf(&sb, " # test not: %s", command.Arguments)
	default:
		fmt.Fprintf(&sb, " # unknown command: %c", command.Command)
	}

	return sb.String()
}

func convertSedAddress(address string) string {
	switch {
	case address == "$":
		return " | last"
	case isDigits(address):
		lineNum, _ := strconv.Atoi(address)
		if lineNum > 0 {
			return fmt.Sprintf(" | nth %d", lineNum-1)
		}
		return ""
	case strings.Contains(address, ","):
		parts := strings.Split(address, ",")
		if len(parts) != 2 {
			return ""
		}
		start := 0
		if n, err := strconv.Atoi(parts[0]); err == nil && n > 0 {
			start = n - 1
		}
		if parts[1] == "$" {
			return fmt.Sprintf(" | skip %d", start)
		}
		if end, err := strconv.Atoi(parts[1]); err == nil {
			count := 0
			if end > start+1 {
				count = end - start - 1
			}
			return fmt.Sprintf(" | skip %d | first %d", start, count+1)
		}
		return ""
	case strings.HasPrefix(address, "/") && strings.HasSuffix(address, "/") && len(address) >= 2:
		pattern := address[1 : len(address)-1]
		return fmt.Sprintf(" | where $it =~ %s", quote.Word(pattern))
	default:
		return fmt.Sprintf(" # address: %s", address)
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

type substituteCommand struct {
	Pattern     string
	Replacement string
	Global      bool
	Print       bool
	WriteFile   string
}

// parseSubstitute reads s/pattern/replacement/flags with any
// delimiter character.
func parseSubstitute(args string) (substituteCommand, bool) {
	if args == "" {
		return substituteCommand{}, false
	}

	delimiter := string(args[0])
	parts := strings.Split(args[1:], delimiter)
	if len(parts) < 2 {
		return substituteCommand{}, false
	}

	flags := ""
	if len(parts) > 2 {
		flags = parts[2]
	}

	writeFile := ""
	if wPos := strings.Index(flags, "w"); wPos >= 0 {
		writeFile = strings.TrimSpace(flags[wPos+1:])
	}

	return substituteCommand{
		Pattern:     parts[0],
		Replacement: parts[1],
		Global:      strings.Contains(flags, "g"),
		Print:       strings.Contains(flags, "p"),
		WriteFile:   writeFile,
	}, true
}

type transliterateCommand struct {
	From string
	To   string
}

func parseTransliterate(args string) (transliterateCommand, bool) {
	if args == "" {
		return transliterateCommand{}, false
	}

	delimiter := string(args[0])
	parts := strings.Split(args[1:], delimiter)
	if len(parts) < 2 {
		return transliterateCommand{}, false
	}

	return transliterateCommand{From: parts[0], To: parts[1]}, true
}
