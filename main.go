package main

import (
	"linetemp/cmd"
)

func main() {
	cmd.Execute()
}
