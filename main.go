package main

import (
	"github.com/castellanops/cumulus/cmd"
)

func main() {
	cmd.Execute()
}
