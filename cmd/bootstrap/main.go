// main.go - Entry point for the bootstrap command

package main

import "go-traits-backend/cmd/bootstrap/commands"

func main() {
	commands.Execute()
}
