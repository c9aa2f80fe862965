package output

import (
	"fmt"
	"io"

	"github.com/hunt3rkillerz/snyk-to-sarif/internal/convert"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// PrintTableResults prints the converted findings into a human friendly table.
func PrintTableResults(report convert.Report, outputWriter io.Writer, terminalWidth int) {
	if terminalWidth <= 0 {
		text.DisableColors()
	}

	levels := report.RuleLevels()

	outputTable := newTable(outputWriter, terminalWidth)
	outputTable = tableBuilder(outputTable, report, levels)
	if outputTable.Length() != 0 {
		outputTable.Render()
	}

	fmt.Fprintln(outputWriter, summary(report, levels))
}

func newTable(outputWriter io.Writer, terminalWidth int) table.Writer {
	outputTable := table.NewWriter()
	outputTable.SetOutputMirror(outputWriter)

	// use fancy characters if we're outputting to a terminal
	if terminalWidth > 0 {
		outputTable.SetStyle(table.StyleRounded)
		outputTable.SetAllowedRowLength(terminalWidth)
	}

	outputTable.Style().Options.DoNotColorBordersAndSeparators = true
	outputTable.Style().Color.Row = text.Colors{text.Reset, text.BgHiBlack}
	outputTable.Style().Color.RowAlternate = text.Colors{text.Reset, text.BgBlack}

	return outputTable
}

func tableBuilder(outputTable table.Writer, report convert.Report, levels map[string]string) table.Writer {
	outputTable.AppendHeader(table.Row{"Rule", "Level", "Location", "Message"})

	for _, result := range report.Results {
		outputTable.AppendRow(table.Row{
			text.Bold.Sprint(result.RuleID),
			levels[result.RuleID],
			locationString(result.Location),
			result.Message,
		})
	}

	return outputTable
}

func locationString(location convert.Location) string {
	if !location.HasRegion() {
		return location.URI
	}

	return fmt.Sprintf("%s:%d", location.URI, location.StartLine)
}

func summary(report convert.Report, levels map[string]string) string {
	errorCount := 0
	for _, result := range report.Results {
		if levels[result.RuleID] == convert.LevelError {
			errorCount++
		}
	}

	return fmt.Sprintf(
		"%d %s (%d %s, %d %s) across %d %s.",
		len(report.Results),
		Form(len(report.Results), "finding", "findings"),
		errorCount,
		Form(errorCount, "error", "errors"),
		len(report.Results)-errorCount,
		Form(len(report.Results)-errorCount, "warning", "warnings"),
		len(report.Rules),
		Form(len(report.Rules), "rule", "rules"),
	)
}
