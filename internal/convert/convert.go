package convert

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hunt3rkillerz/snyk-to-sarif/internal/snyk"
	"github.com/tidwall/gjson"
)

// ErrShapeDefect is returned when a document does not carry the list of
// findings its shape requires.
var ErrShapeDefect = errors.New("document is not a usable snyk report")

// ConvertProject turns a single project document into its rules and results.
func ConvertProject(doc snyk.Document) (*RuleSet, []Result, error) {
	switch shape := snyk.Classify(doc); shape {
	case snyk.ShapeIaC:
		var report snyk.IaCReport
		if err := decodeReport(doc, snyk.IaCIssuesField, &report); err != nil {
			return nil, nil, err
		}

		rules, results := convertIaC(report)

		return rules, results, nil
	case snyk.ShapeDependency:
		var report snyk.DependencyReport
		if err := decodeReport(doc, snyk.VulnerabilitiesField, &report); err != nil {
			return nil, nil, err
		}

		rules, results := convertDependencies(report)

		return rules, results, nil
	default:
		return nil, nil, fmt.Errorf("%w: unsupported shape %s", ErrShapeDefect, shape)
	}
}

// decodeReport checks that listField holds an array before decoding the whole
// document into report.
func decodeReport(doc snyk.Document, listField string, report any) error {
	list := gjson.GetBytes(doc, listField)

	switch {
	case !list.Exists() || list.Type == gjson.Null:
		if msg, failed := doc.FailureMessage(); failed {
			return fmt.Errorf("%w: snyk reported an error instead of results: %s", ErrShapeDefect, msg)
		}

		return fmt.Errorf(
			"%w: neither %q nor %q were found",
			ErrShapeDefect,
			snyk.VulnerabilitiesField,
			snyk.IaCIssuesField,
		)
	case !list.IsArray():
		return fmt.Errorf("%w: %q must be a list but was %s", ErrShapeDefect, listField, list.Type)
	}

	if err := json.Unmarshal(doc, report); err != nil {
		return fmt.Errorf("%w: %w", ErrShapeDefect, err)
	}

	return nil
}
