package builtin

func init() {
	add("pwd", "print the working directory", Pwd)
}

// Pwd converts pwd invocations. Nushell's pwd is logical; -P resolves
// symlinks through `path expand`.
func Pwd(args []string) string {
	if len(args) == 0 {
		return "pwd"
	}

	logical := true
	for _, arg := range args {
		switch arg {
		case "-L", "--logical":
			logical = true
		case "-P", "--physical":
			logical = false
		}
	}

	if logical {
		return "pwd"
	}
	return "pwd | path expand"
}
