// Package convert maps Snyk project reports onto SARIF rules and results.
//
// Nothing in this package performs I/O or logs; the caller supplies already
// split documents and decides what to do with the returned [Report].
package convert

// SARIF levels produced by the converter.
const (
	LevelError   = "error"
	LevelWarning = "warning"
)

// SecurityTag is attached to every rule.
const SecurityTag = "security"

// Rule describes one kind of finding.
type Rule struct {
	ID               string
	ShortDescription string
	FullDescription  string
	HelpMarkdown     string
	HelpText         string
	Level            string
	Tags             []string
}

// Location points at the file a finding was reported against. StartLine and
// StartColumn are zero for findings that apply to the whole file.
type Location struct {
	URI         string
	StartLine   int
	StartColumn int
}

// HasRegion reports whether the location is narrowed down to a line.
func (l Location) HasRegion() bool {
	return l.StartLine > 0
}

// Result is one occurrence of a rule.
type Result struct {
	RuleID   string
	Message  string
	Location Location
}

// Report is the merged output of every converted project.
type Report struct {
	Rules   []Rule
	Results []Result
}

// RuleLevels maps the id of every rule in the report onto its level. Results
// whose rule is not in the report have no entry.
func (r Report) RuleLevels() map[string]string {
	levels := make(map[string]string, len(r.Rules))
	for _, rule := range r.Rules {
		levels[rule.ID] = rule.Level
	}

	return levels
}

// levelForSeverity maps a Snyk severity onto a SARIF level. Only "high" is
// treated as an error.
func levelForSeverity(severity string) string {
	if severity == "high" {
		return LevelError
	}

	return LevelWarning
}
