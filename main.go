package main

import "github.com/kamal-hamza/mx-cli/cmd"

func main() {
	cmd.Execute()
}
