package cmdreporter

import (
	"io"

	"github.com/hunt3rkillerz/snyk-to-sarif/internal/convert"
	"github.com/hunt3rkillerz/snyk-to-sarif/internal/output"
)

type sarifReporter struct {
	writer io.Writer
	pretty bool
}

func (r *sarifReporter) PrintResult(report convert.Report) error {
	return output.PrintSARIFReport(report, r.writer, r.pretty)
}
