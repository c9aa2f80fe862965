package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/hunt3rkillerz/snyk-to-sarif/internal/convert"
)

// escapeData escapes the characters GitHub treats specially in the message of
// a workflow command
func escapeData(s string) string {
	s = strings.ReplaceAll(s, "%", "%25")
	s = strings.ReplaceAll(s, "\r", "%0D")
	s = strings.ReplaceAll(s, "\n", "%0A")

	return s
}

// escapeProperty escapes the characters GitHub treats specially in the
// properties of a workflow command
func escapeProperty(s string) string {
	s = escapeData(s)
	s = strings.ReplaceAll(s, ":", "%3A")
	s = strings.ReplaceAll(s, ",", "%2C")

	return s
}

// PrintGHAnnotationReport prints Github specific annotations to outputWriter,
// one per finding
func PrintGHAnnotationReport(report convert.Report, outputWriter io.Writer) error {
	levels := report.RuleLevels()

	for _, result := range report.Results {
		command := "warning"
		if levels[result.RuleID] == convert.LevelError {
			command = "error"
		}

		properties := []string{"file=" + escapeProperty(result.Location.URI)}
		if result.Location.HasRegion() {
			properties = append(properties, fmt.Sprintf("line=%d", result.Location.StartLine))
		}
		properties = append(properties, "title="+escapeProperty(result.RuleID))

		_, err := fmt.Fprintf(
			outputWriter,
			"::%s %s::%s\n",
			command,
			strings.Join(properties, ","),
			escapeData(result.Message),
		)
		if err != nil {
			return err
		}
	}

	return nil
}
