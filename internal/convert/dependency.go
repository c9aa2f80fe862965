package convert

import (
	"fmt"
	"slices"

	"github.com/hunt3rkillerz/snyk-to-sarif/internal/snyk"
)

func dependencyRule(vuln snyk.Vulnerability) Rule {
	tags := slices.Clone(vuln.CWEs())
	tags = append(tags, SecurityTag)

	return Rule{
		ID:               vuln.ID,
		ShortDescription: vuln.Title + " - " + vuln.PackageName,
		FullDescription:  fmt.Sprintf("The dependency %s introduces a %s vulnerability", vuln.PackageName, vuln.Title),
		HelpMarkdown:     vuln.Description,
		HelpText:         "",
		Level:            levelForSeverity(vuln.Severity),
		Tags:             tags,
	}
}

func dependencyResult(vuln snyk.Vulnerability, targetFile string) Result {
	return Result{
		RuleID: vuln.ID,
		Message: fmt.Sprintf(
			"This adds a vulnerable dependency %s which introduces a %s severity security flaw",
			vuln.PackageName,
			vuln.Severity,
		),
		Location: Location{URI: targetFile},
	}
}

// convertDependencies produces one rule per distinct vulnerability id and one
// result per vulnerability entry. Dependency findings are file-level only.
func convertDependencies(report snyk.DependencyReport) (*RuleSet, []Result) {
	rules := NewRuleSet()
	results := make([]Result, 0, len(report.Vulnerabilities))

	for _, vuln := range report.Vulnerabilities {
		rules.Put(dependencyRule(vuln))
		results = append(results, dependencyResult(vuln, report.DisplayTargetFile))
	}

	return rules, results
}
