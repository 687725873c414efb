package main

import (
	"os"

	"github.com/vigilhq/vigil/src/cli/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
