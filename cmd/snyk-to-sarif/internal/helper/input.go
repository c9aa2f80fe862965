// Package helper provides helper functions for the snyk-to-sarif CLI.
package helper

import (
	"fmt"
	"io"
	"os"

	"github.com/hunt3rkillerz/snyk-to-sarif/internal/cmdlogger"
	"github.com/hunt3rkillerz/snyk-to-sarif/internal/snyk"
	"golang.org/x/term"
)

// ReadInput returns the contents of inputPath, or everything piped to stdin
// if no path was given.
//
// A terminal is never read from, since nobody would be piping a report into it.
func ReadInput(inputPath string, stdin io.Reader) ([]byte, error) {
	if inputPath != "" {
		data, err := os.ReadFile(inputPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read input file: %w", err)
		}

		cmdlogger.Debugf("Read %d bytes from %s", len(data), inputPath)

		return data, nil
	}

	if stdin == nil {
		return nil, snyk.ErrNoInput
	}

	if stdinAsFile, ok := stdin.(*os.File); ok && term.IsTerminal(int(stdinAsFile.Fd())) {
		return nil, snyk.ErrNoInput
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("failed to read from stdin: %w", err)
	}

	cmdlogger.Debugf("Read %d bytes from stdin", len(data))

	return data, nil
}
