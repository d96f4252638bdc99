package main

import "github.com/itsmostafa/gosummary/cmd"

func main() {
	cmd.Execute()
}
