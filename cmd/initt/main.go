package main

import (
	"os"

	"github.com/inizio/initt/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
