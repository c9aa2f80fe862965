// Package snyk models the JSON reports produced by `snyk test --json` and
// `snyk iac test --json`, and classifies a project document into one of them.
package snyk

import "encoding/json"

// Document is the raw JSON object describing a single scanned project.
type Document []byte

// Field names used to tell the report shapes apart and to locate their findings.
const (
	VulnerabilitiesField = "vulnerabilities"
	IaCIssuesField       = "infrastructureAsCodeIssues"
)

// Identifiers holds the external identifiers Snyk attaches to a vulnerability.
// Only the ones that end up in the report are decoded.
type Identifiers struct {
	CWE []string `json:"CWE"`
}

// Vulnerability is a single entry of a dependency report.
type Vulnerability struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	PackageName string       `json:"packageName"`
	Description string       `json:"description"`
	Severity    string       `json:"severity"`
	Identifiers *Identifiers `json:"identifiers"`
}

// CWEs returns the CWE identifiers of the vulnerability, if it has any.
func (v Vulnerability) CWEs() []string {
	if v.Identifiers == nil {
		return nil
	}

	return v.Identifiers.CWE
}

// IaCDescription is the narrative attached to an infrastructure-as-code issue.
type IaCDescription struct {
	Issue   string `json:"issue"`
	Impact  string `json:"impact"`
	Resolve string `json:"resolve"`
}

// IaCIssue is a single misconfiguration found in an infrastructure-as-code file.
type IaCIssue struct {
	ID             string         `json:"id"`
	Title          string         `json:"title"`
	Severity       string         `json:"severity"`
	LineNumber     int            `json:"lineNumber"`
	IaCDescription IaCDescription `json:"iacDescription"`
	IsIgnored      bool           `json:"isIgnored"`
}

// DependencyReport is the result of an open-source dependency scan.
type DependencyReport struct {
	Vulnerabilities   []Vulnerability `json:"vulnerabilities"`
	DisplayTargetFile string          `json:"displayTargetFile"`
}

// IaCReport is the result of an infrastructure-as-code scan.
type IaCReport struct {
	InfrastructureAsCodeIssues []IaCIssue `json:"infrastructureAsCodeIssues"`
	TargetFile                 string     `json:"targetFile"`
}

// cliFailure is what the Snyk CLI prints in place of a report when a scan
// could not be run.
type cliFailure struct {
	OK    *bool  `json:"ok"`
	Error string `json:"error"`
}

// FailureMessage returns the error reported by the Snyk CLI if the document is
// a failed scan rather than a report.
func (d Document) FailureMessage() (string, bool) {
	var f cliFailure
	if err := json.Unmarshal(d, &f); err != nil {
		return "", false
	}

	if f.OK == nil || *f.OK || f.Error == "" {
		return "", false
	}

	return f.Error, true
}
