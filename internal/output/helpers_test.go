package output_test

import "github.com/hunt3rkillerz/snyk-to-sarif/internal/convert"

// mixedReport has one dependency finding and one infrastructure-as-code
// finding, each with its own rule
func mixedReport() convert.Report {
	return convert.Report{
		Rules: []convert.Rule{
			{
				ID:               "SNYK-JS-LODASH-567746",
				ShortDescription: "Prototype Pollution - lodash",
				FullDescription:  "The dependency lodash introduces a Prototype Pollution vulnerability",
				HelpMarkdown:     "## Overview\nlodash is vulnerable",
				HelpText:         "",
				Level:            convert.LevelError,
				Tags:             []string{"CWE-400", "security"},
			},
			{
				ID:               "SNYK-CC-TF-45",
				ShortDescription: "CloudTrail logs are not encrypted",
				FullDescription:  "Logs are not encrypted with a customer managed key",
				HelpMarkdown:     "## Overview\nLogs are not encrypted",
				HelpText:         "",
				Level:            convert.LevelWarning,
				Tags:             []string{"security", "CWE-1032"},
			},
		},
		Results: []convert.Result{
			{
				RuleID:   "SNYK-JS-LODASH-567746",
				Message:  "This adds a vulnerable dependency lodash which introduces a high severity security flaw",
				Location: convert.Location{URI: "package-lock.json"},
			},
			{
				RuleID:   "SNYK-CC-TF-45",
				Message:  "CloudTrail logs are not encrypted",
				Location: convert.Location{URI: "infra/main.tf", StartLine: 52, StartColumn: 1},
			},
		},
	}
}
