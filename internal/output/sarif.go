package output

import (
	"fmt"
	"io"

	"github.com/hunt3rkillerz/snyk-to-sarif/internal/convert"
	"github.com/owenrumney/go-sarif/v2/sarif"
)

// SchemaURI is the JSON schema the produced report declares itself against.
const SchemaURI = "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/master/Schemata/sarif-schema-2.1.0.json"

const (
	toolName           = "Snyk"
	toolInformationURI = "https://snyk.io"
)

// BuildSARIFReport assembles a SARIF 2.1.0 report with a single run whose tool
// driver carries every rule of the given report.
func BuildSARIFReport(report convert.Report) (*sarif.Report, error) {
	sarifReport, err := sarif.New(sarif.Version210)
	if err != nil {
		return nil, err
	}
	sarifReport.Schema = SchemaURI

	run := sarif.NewRunWithInformationURI(toolName, toolInformationURI)

	for _, r := range report.Rules {
		rule := run.AddRule(r.ID).
			WithShortDescription(sarif.NewMultiformatMessageString(r.ShortDescription)).
			WithFullDescription(sarif.NewMultiformatMessageString(r.FullDescription)).
			WithMarkdownHelp(r.HelpMarkdown).
			WithTextHelp(r.HelpText)

		rule.DefaultConfiguration = &sarif.ReportingConfiguration{Level: r.Level}
		rule.Properties = map[string]interface{}{"tags": r.Tags}
	}

	for _, r := range report.Results {
		physicalLocation := sarif.NewPhysicalLocation().
			WithArtifactLocation(sarif.NewSimpleArtifactLocation(r.Location.URI))

		if r.Location.HasRegion() {
			physicalLocation = physicalLocation.WithRegion(
				sarif.NewRegion().
					WithStartLine(r.Location.StartLine).
					WithStartColumn(r.Location.StartColumn),
			)
		}

		run.CreateResultForRule(r.RuleID).
			WithMessage(sarif.NewTextMessage(r.Message)).
			AddLocation(sarif.NewLocationWithPhysicalLocation(physicalLocation))
	}

	sarifReport.AddRun(run)

	return sarifReport, nil
}

// PrintSARIFReport writes the report as SARIF to outputWriter, indented if
// pretty is set
func PrintSARIFReport(report convert.Report, outputWriter io.Writer, pretty bool) error {
	sarifReport, err := BuildSARIFReport(report)
	if err != nil {
		return err
	}

	if pretty {
		err = sarifReport.PrettyWrite(outputWriter)
	} else {
		err = sarifReport.Write(outputWriter)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(outputWriter)

	return nil
}
