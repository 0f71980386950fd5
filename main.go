package main

import "github.com/lepinkainen/gamecrawl/cmd"

var execute = cmd.Execute

func main() {
	execute()
}
