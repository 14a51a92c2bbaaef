package builtin

func init() {
	add("true", "succeed, ignoring arguments", True)
	add("false", "fail, ignoring arguments", False)
}

// True and False ignore all arguments, as their Nushell counterparts do.

func True(args []string) string {
	return "true"
}

func False(args []string) string {
	return "false"
}
