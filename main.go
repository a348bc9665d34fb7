package main

import (
	"github.com/0xERR0R/domainextractor/cmd"
)

func main() {
	cmd.Execute()
}
