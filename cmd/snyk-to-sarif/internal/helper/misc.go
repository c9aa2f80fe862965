package helper

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/hunt3rkillerz/snyk-to-sarif/internal/cmdreporter"
	"github.com/hunt3rkillerz/snyk-to-sarif/internal/convert"
	"golang.org/x/term"
)

// PrintResult renders the report in the given format to outputPath, or to
// stdout if no path was given.
//
// The output file is only created once the report has been rendered, so a
// failure never leaves a partial file behind.
func PrintResult(stdout io.Writer, outputPath, format string, pretty bool, report convert.Report) error {
	if outputPath != "" { // Output is definitely a file
		buf := &bytes.Buffer{}

		if err := cmdreporter.PrintResult(report, format, buf, 0, pretty); err != nil {
			return err
		}

		if err := os.WriteFile(outputPath, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}

		return nil
	}

	// Output might be a terminal
	termWidth := 0
	if stdoutAsFile, ok := stdout.(*os.File); ok {
		width, _, err := term.GetSize(int(stdoutAsFile.Fd()))
		if err == nil {
			termWidth = width
		}
	}

	return cmdreporter.PrintResult(report, format, stdout, termWidth, pretty)
}
