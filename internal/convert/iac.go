package convert

import (
	"fmt"

	"github.com/hunt3rkillerz/snyk-to-sarif/internal/snyk"
)

// SecurityMisconfigurationTag is the CWE category covering OWASP's
// "Security Misconfiguration", used for every infrastructure-as-code rule.
const SecurityMisconfigurationTag = "CWE-1032"

func iacHelpMarkdown(desc snyk.IaCDescription) string {
	return fmt.Sprintf(
		"## Overview\n%s\n\n## Impact\n\n%s\n\n## Remediation\n\n%s",
		desc.Issue,
		desc.Impact,
		desc.Resolve,
	)
}

func iacRule(issue snyk.IaCIssue) Rule {
	return Rule{
		ID:               issue.ID,
		ShortDescription: issue.Title,
		FullDescription:  issue.IaCDescription.Issue,
		HelpMarkdown:     iacHelpMarkdown(issue.IaCDescription),
		HelpText:         "",
		Level:            levelForSeverity(issue.Severity),
		Tags:             []string{SecurityTag, SecurityMisconfigurationTag},
	}
}

func iacResult(issue snyk.IaCIssue, targetFile string) Result {
	location := Location{URI: targetFile}

	// SARIF regions are 1-based; anything else is reported against the file.
	if issue.LineNumber > 0 {
		location.StartLine = issue.LineNumber
		location.StartColumn = 1
	}

	return Result{
		RuleID:   issue.ID,
		Message:  issue.Title,
		Location: location,
	}
}

// convertIaC skips issues that have been ignored in Snyk and produces a rule
// and a result for every other issue.
func convertIaC(report snyk.IaCReport) (*RuleSet, []Result) {
	rules := NewRuleSet()
	results := make([]Result, 0, len(report.InfrastructureAsCodeIssues))

	for _, issue := range report.InfrastructureAsCodeIssues {
		if issue.IsIgnored {
			continue
		}

		rules.Put(iacRule(issue))
		results = append(results, iacResult(issue, report.TargetFile))
	}

	return rules, results
}
