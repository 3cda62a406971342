// Command evrate reports per-event-type record frequencies from a log file.
package main

import (
	"os"

	"github.com/ccollicutt/evrate/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
