// Package config manages the configuration for snyk-to-sarif.
package config

import (
	"slices"
	"time"

	"github.com/hunt3rkillerz/snyk-to-sarif/internal/cmdlogger"
	"github.com/hunt3rkillerz/snyk-to-sarif/internal/convert"
	"github.com/hunt3rkillerz/snyk-to-sarif/internal/output"
)

var ConfigName = "snyk-to-sarif.toml"

type Config struct {
	IgnoredRules []*IgnoreEntry `toml:"IgnoredRules"`
	// The path to config file that this config was loaded from,
	// set after having successfully parsed the file
	LoadPath string `toml:"-"`
}

type IgnoreEntry struct {
	ID          string    `toml:"id"`
	IgnoreUntil time.Time `toml:"ignoreUntil,omitempty"`
	Reason      string    `toml:"reason,omitempty"`

	Used bool `toml:"-"`
}

func (ie *IgnoreEntry) MarkAsUsed() {
	ie.Used = true
}

func (c *Config) UnusedIgnoredRules() []*IgnoreEntry {
	unused := make([]*IgnoreEntry, 0, len(c.IgnoredRules))

	for _, entry := range c.IgnoredRules {
		if !entry.Used {
			unused = append(unused, entry)
		}
	}

	return unused
}

func (c *Config) ShouldIgnore(ruleID string) (bool, *IgnoreEntry) {
	index := slices.IndexFunc(c.IgnoredRules, func(e *IgnoreEntry) bool { return e.ID == ruleID })
	if index == -1 {
		return false, &IgnoreEntry{}
	}
	ignoredLine := c.IgnoredRules[index]

	return shouldIgnoreTimestamp(ignoredLine.IgnoreUntil), ignoredLine
}

// Filter returns a copy of the report without the rules that should be
// ignored, along with every result of those rules
func (c *Config) Filter(report convert.Report) convert.Report {
	ignored := make(map[string]*IgnoreEntry)
	rules := make([]convert.Rule, 0, len(report.Rules))

	for _, rule := range report.Rules {
		ignore, ignoreLine := c.ShouldIgnore(rule.ID)
		if ignore {
			ignoreLine.MarkAsUsed()
			ignored[rule.ID] = ignoreLine

			continue
		}
		rules = append(rules, rule)
	}

	if len(ignored) == 0 {
		return report
	}

	results := make([]convert.Result, 0, len(report.Results))
	hidden := make(map[string]int, len(ignored))

	for _, result := range report.Results {
		if _, ok := ignored[result.RuleID]; ok {
			hidden[result.RuleID]++

			continue
		}
		results = append(results, result)
	}

	for _, rule := range report.Rules {
		ignoreLine, ok := ignored[rule.ID]
		if !ok {
			continue
		}

		reason := ignoreLine.Reason
		if reason == "" {
			reason = "(no reason given)"
		}

		cmdlogger.Infof(
			"%s and %d %s have been filtered out because: %s",
			rule.ID,
			hidden[rule.ID],
			output.Form(hidden[rule.ID], "result", "results"),
			reason,
		)
	}

	return convert.Report{Rules: rules, Results: results}
}

func shouldIgnoreTimestamp(ignoreUntil time.Time) bool {
	if ignoreUntil.IsZero() {
		// If IgnoreUntil is not set, should ignore.
		return true
	}
	// Should ignore if IgnoreUntil is still after current time
	// Takes timezone offsets into account if it is specified. otherwise it's using local time
	return ignoreUntil.After(time.Now())
}

func (c *Config) warnAboutDuplicates() {
	seen := make(map[string]struct{})

	for _, rule := range c.IgnoredRules {
		if _, ok := seen[rule.ID]; ok {
			cmdlogger.Warnf("warning: %s has multiple ignores for %s - only the first will be used!", c.LoadPath, rule.ID)
		}
		seen[rule.ID] = struct{}{}
	}
}
