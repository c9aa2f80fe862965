package main

import (
	"os"

	"github.com/hunt3rkillerz/snyk-to-sarif/cmd/snyk-to-sarif/convert"
	"github.com/hunt3rkillerz/snyk-to-sarif/cmd/snyk-to-sarif/internal/cmd"
)

func main() {
	exitCode := cmd.Run(os.Args, os.Stdin, os.Stdout, os.Stderr, []cmd.CommandBuilder{
		convert.Command,
	})

	os.Exit(exitCode)
}
