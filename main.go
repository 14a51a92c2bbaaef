package main

import "github.com/posix2nu/posix2nu/cmd"

func main() {
	cmd.Execute()
}
