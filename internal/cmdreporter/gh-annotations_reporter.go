package cmdreporter

import (
	"io"

	"github.com/hunt3rkillerz/snyk-to-sarif/internal/convert"
	"github.com/hunt3rkillerz/snyk-to-sarif/internal/output"
)

type ghAnnotationsReporter struct {
	writer io.Writer
}

func (r *ghAnnotationsReporter) PrintResult(report convert.Report) error {
	return output.PrintGHAnnotationReport(report, r.writer)
}
