package helper_test

import "github.com/hunt3rkillerz/snyk-to-sarif/internal/convert"

func snykReport() convert.Report {
	return convert.Report{
		Rules:   []convert.Rule{{ID: "SNYK-1", Level: convert.LevelError, Tags: []string{"security"}}},
		Results: []convert.Result{{RuleID: "SNYK-1", Message: "m", Location: convert.Location{URI: "go.mod"}}},
	}
}
