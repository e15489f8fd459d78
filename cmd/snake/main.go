package main

import (
	"github.com/snakearcade/snake/cmd/snake/commands"
)

func main() {
	commands.Execute()
}
