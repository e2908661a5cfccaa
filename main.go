package main

import "github.com/samuelfneumann/gridsarsa/cmd"

func main() {
	cmd.Execute()
}
