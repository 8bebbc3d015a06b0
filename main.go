package main

import "github.com/nwrenn27-sketch/finplan/cmd"

func main() {
	cmd.Execute()
}
