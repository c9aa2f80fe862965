package output

import (
	"fmt"
	"io"

	"github.com/hunt3rkillerz/snyk-to-sarif/internal/convert"
	"github.com/jedib0t/go-pretty/v6/table"
)

// PrintMarkdownTableResults prints the converted findings as a markdown table.
func PrintMarkdownTableResults(report convert.Report, outputWriter io.Writer) {
	levels := report.RuleLevels()

	outputTable := table.NewWriter()
	outputTable.SetOutputMirror(outputWriter)
	outputTable.AppendHeader(table.Row{"Rule", "Level", "Location", "Message"})

	for _, result := range report.Results {
		outputTable.AppendRow(table.Row{
			result.RuleID,
			levels[result.RuleID],
			locationString(result.Location),
			result.Message,
		})
	}

	if outputTable.Length() != 0 {
		outputTable.RenderMarkdown()
		fmt.Fprintln(outputWriter)
	}

	fmt.Fprintln(outputWriter, summary(report, levels))
}
