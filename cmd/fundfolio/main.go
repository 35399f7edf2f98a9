package main

import (
	"fundfolio/cmd"
)

func main() {
	cmd.Execute()
}
