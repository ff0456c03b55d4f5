package main

import "github.com/endorses/pawcap/cmd"

func main() {
	cmd.Execute()
}
