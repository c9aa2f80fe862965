package convert

import (
	"fmt"
	"runtime"

	"github.com/hunt3rkillerz/snyk-to-sarif/internal/snyk"
	"golang.org/x/sync/errgroup"
)

type projectOutput struct {
	rules   *RuleSet
	results []Result
	err     error
}

// Aggregate converts every document and merges the output into one report.
//
// Documents are converted concurrently but merged strictly in input order:
// results are concatenated, and when two documents define the same rule id
// the later document's rule wins. If any document cannot be converted, no
// report is returned and the error of the first such document is.
func Aggregate(docs []snyk.Document) (Report, error) {
	outputs := make([]projectOutput, len(docs))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, doc := range docs {
		g.Go(func() error {
			rules, results, err := ConvertProject(doc)
			if err != nil {
				err = fmt.Errorf("project %d: %w", i, err)
			}
			outputs[i] = projectOutput{rules: rules, results: results, err: err}

			return err
		})
	}

	if g.Wait() != nil {
		for _, out := range outputs {
			if out.err != nil {
				return Report{}, out.err
			}
		}
	}

	merged := NewRuleSet()
	results := make([]Result, 0)

	for _, out := range outputs {
		merged.Merge(out.rules)
		results = append(results, out.results...)
	}

	return Report{
		Rules:   merged.Rules(),
		Results: results,
	}, nil
}
