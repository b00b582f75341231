package main

import "github.com/alexiusacademia/gotank/cmd"

func main() {
	cmd.Execute()
}
