package cmdreporter

import (
	"io"

	"github.com/hunt3rkillerz/snyk-to-sarif/internal/convert"
)

type resultPrinter interface {
	// PrintResult prints the convert.Report per the logic of the
	// actual reporter
	PrintResult(report convert.Report) error
}

func PrintResult(
	report convert.Report,
	format string,
	writer io.Writer,
	terminalWidth int,
	pretty bool,
) error {
	r, err := newResultPrinter(format, writer, terminalWidth, pretty)

	if err != nil {
		return err
	}

	return r.PrintResult(report)
}
