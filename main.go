package main

import (
	"os"

	"lait/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
