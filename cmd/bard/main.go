package main

import (
	"os"

	"github.com/davidhbaek/bard/internal/bard"
)

func main() {
	os.Exit(bard.CLI(os.Args[1:]))
}
