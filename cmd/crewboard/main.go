// crewboard is the terminal client for the weekly job and crew board.
package main

import (
	"os"
	_ "time/tzdata"

	"crewboard/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
