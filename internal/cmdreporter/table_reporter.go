package cmdreporter

import (
	"fmt"
	"io"

	"github.com/hunt3rkillerz/snyk-to-sarif/internal/cmdlogger"
	"github.com/hunt3rkillerz/snyk-to-sarif/internal/convert"
	"github.com/hunt3rkillerz/snyk-to-sarif/internal/output"
)

type tableReporter struct {
	writer   io.Writer
	markdown bool
	// 0 indicates not a terminal output
	terminalWidth int
}

func (r *tableReporter) PrintResult(report convert.Report) error {
	if len(report.Results) == 0 && !cmdlogger.HasErrored() {
		fmt.Fprintf(r.writer, "No issues found\n")
		return nil
	}

	if r.markdown {
		output.PrintMarkdownTableResults(report, r.writer)
	} else {
		output.PrintTableResults(report, r.writer, r.terminalWidth)
	}

	return nil
}
