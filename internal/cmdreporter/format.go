package cmdreporter

import (
	"fmt"
	"io"
)

var format = []string{"sarif", "table", "markdown", "gh-annotations"}

func Format() []string {
	return format
}

func newResultPrinter(format string, writer io.Writer, terminalWidth int, pretty bool) (resultPrinter, error) {
	switch format {
	case "sarif":
		return &sarifReporter{writer, pretty}, nil
	case "table":
		return &tableReporter{writer, false, terminalWidth}, nil
	case "markdown":
		return &tableReporter{writer, true, terminalWidth}, nil
	case "gh-annotations":
		return &ghAnnotationsReporter{writer}, nil
	default:
		return nil, fmt.Errorf("%v is not a valid format", format)
	}
}
