package main

import "github.com/mini-sh/minish/cmd"

func main() {
	cmd.Execute()
}
