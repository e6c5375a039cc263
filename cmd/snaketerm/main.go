package main

import (
	"github.com/snaketerm/engine/cmd/snaketerm/commands"
)

func main() {
	commands.Execute()
}
