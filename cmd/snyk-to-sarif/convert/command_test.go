package convert_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hunt3rkillerz/snyk-to-sarif/cmd/snyk-to-sarif/internal/testcmd"
	"github.com/hunt3rkillerz/snyk-to-sarif/internal/output"
	"github.com/hunt3rkillerz/snyk-to-sarif/internal/testutility"
	"github.com/tidwall/gjson"
)

func ruleIDs(t *testing.T, sarif string) []string {
	t.Helper()

	if !gjson.Valid(sarif) {
		t.Fatalf("output is not valid JSON:\n%s", sarif)
	}

	ids := make([]string, 0)
	for _, id := range gjson.Get(sarif, "runs.0.tool.driver.rules.#.id").Array() {
		ids = append(ids, id.String())
	}

	return ids
}

func TestCommand_Conversions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tc          testcmd.Case
		wantRuleIDs []string
		wantResults int64
		check       func(t *testing.T, sarif string)
	}{
		{
			tc: testcmd.Case{
				Name: "dependency scan from a file",
				Args: []string{"", "--input", "./testdata/dependency.json"},
				Exit: 0,
			},
			wantRuleIDs: []string{"SNYK-JS-LODASH-567746", "SNYK-JS-MINIMIST-559764", "npm:ms:20170412"},
			wantResults: 4,
			check: func(t *testing.T, sarif string) {
				t.Helper()

				if got := gjson.Get(sarif, "$schema").String(); got != output.SchemaURI {
					t.Errorf("$schema = %q", got)
				}
				if got := gjson.Get(sarif, "runs.0.results.0.locations.0.physicalLocation.artifactLocation.uri").String(); got != "package-lock.json" {
					t.Errorf("uri = %q", got)
				}
			},
		},
		{
			tc: testcmd.Case{
				Name: "dependency scan from a file using the convert command and short flag",
				Args: []string{"", "convert", "-i", "./testdata/dependency.json"},
				Exit: 0,
			},
			wantRuleIDs: []string{"SNYK-JS-LODASH-567746", "SNYK-JS-MINIMIST-559764", "npm:ms:20170412"},
			wantResults: 4,
		},
		{
			tc: testcmd.Case{
				Name:  "iac scan from stdin",
				Args:  []string{""},
				Stdin: string(testutility.LoadFixture(t, "./testdata/iac.json")),
				Exit:  0,
			},
			wantRuleIDs: []string{"SNYK-CC-TF-1", "SNYK-CC-TF-45"},
			wantResults: 2,
			check: func(t *testing.T, sarif string) {
				t.Helper()

				lines := gjson.Get(sarif, "runs.0.results.#.locations.0.physicalLocation.region.startLine").Raw
				if lines != "[14,52]" {
					t.Errorf("start lines = %s, want [14,52]", lines)
				}
			},
		},
		{
			tc: testcmd.Case{
				Name: "multiple projects",
				Args: []string{"", "-i", "./testdata/multi.json"},
				Exit: 0,
			},
			wantRuleIDs: []string{"SNYK-X", "SNYK-A", "SNYK-CC-K8S-1"},
			wantResults: 4,
			check: func(t *testing.T, sarif string) {
				t.Helper()

				rule := gjson.Get(sarif, "runs.0.tool.driver.rules.0")
				if got := rule.Get("shortDescription.text").String(); got != "New Title - left-pad" {
					t.Errorf("shortDescription = %q", got)
				}
				if got := rule.Get("defaultConfiguration.level").String(); got != "error" {
					t.Errorf("level = %q", got)
				}
			},
		},
		{
			tc: testcmd.Case{
				Name:  "empty list of projects",
				Args:  []string{""},
				Stdin: "[]",
				Exit:  0,
			},
			wantRuleIDs: []string{},
			wantResults: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.tc.Name, func(t *testing.T) {
			t.Parallel()

			stdout, stderr := testcmd.Run(t, tt.tc)

			if diff := cmp.Diff(tt.wantRuleIDs, ruleIDs(t, stdout)); diff != "" {
				t.Errorf("rule ids mismatch (-want +got):\n%s", diff)
			}
			if got := gjson.Get(stdout, "runs.0.results.#").Int(); got != tt.wantResults {
				t.Errorf("got %d results, want %d", got, tt.wantResults)
			}
			if stderr != "" {
				t.Errorf("did not expect anything on stderr, got:\n%s", stderr)
			}

			if tt.check != nil {
				tt.check(t, stdout)
			}
		})
	}
}

func TestCommand_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tc         testcmd.Case
		wantStderr string
	}{
		{
			tc: testcmd.Case{
				Name: "no input",
				Args: []string{""},
				Exit: 128,
			},
			wantStderr: "No data or input file provided, --help for usage information.",
		},
		{
			tc: testcmd.Case{
				Name:  "blank stdin",
				Args:  []string{"", "convert"},
				Stdin: "  \n\t",
				Exit:  128,
			},
			wantStderr: "No data or input file provided",
		},
		{
			tc: testcmd.Case{
				Name: "input is not json",
				Args: []string{"", "-i", "./testdata/not-json.txt"},
				Exit: 129,
			},
			wantStderr: "the input data does not appear to be valid",
		},
		{
			tc: testcmd.Case{
				Name:  "input is a list of non objects",
				Args:  []string{""},
				Stdin: `[{"vulnerabilities": []}, 42]`,
				Exit:  129,
			},
			wantStderr: "the input data does not appear to be valid",
		},
		{
			tc: testcmd.Case{
				Name: "input file does not exist",
				Args: []string{"", "-i", "./testdata/does-not-exist.json"},
				Exit: 127,
			},
			wantStderr: "failed to read input file",
		},
		{
			tc: testcmd.Case{
				Name: "snyk failed to scan",
				Args: []string{"", "-i", "./testdata/failed.json"},
				Exit: 127,
			},
			wantStderr: "project 0: document is not a usable snyk report: snyk reported an error instead of results: Could not detect supported target files in /src/empty",
		},
		{
			tc: testcmd.Case{
				Name:  "one bad project among many",
				Args:  []string{""},
				Stdin: `[{"vulnerabilities": []}, {"vulnerabilities": "none"}]`,
				Exit:  127,
			},
			wantStderr: `project 1: document is not a usable snyk report: "vulnerabilities" must be a list`,
		},
		{
			tc: testcmd.Case{
				Name: "unsupported format",
				Args: []string{"", "-i", "./testdata/dependency.json", "--format", "xml"},
				Exit: 127,
			},
			wantStderr: `unsupported output format "xml" - must be one of: sarif, table, markdown, gh-annotations`,
		},
		{
			tc: testcmd.Case{
				Name: "invalid verbosity",
				Args: []string{"", "-i", "./testdata/dependency.json", "--verbosity", "loud"},
				Exit: 127,
			},
			wantStderr: `invalid verbosity level "loud"`,
		},
		{
			tc: testcmd.Case{
				Name: "config override does not exist",
				Args: []string{"", "-i", "./testdata/dependency.json", "--config", "./testdata/does-not-exist.toml"},
				Exit: 127,
			},
			wantStderr: "failed to read config file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.tc.Name, func(t *testing.T) {
			t.Parallel()

			stdout, stderr := testcmd.Run(t, tt.tc)

			if !strings.Contains(stderr, tt.wantStderr) {
				t.Errorf("stderr does not contain %q:\n%s", tt.wantStderr, stderr)
			}
			if gjson.Get(stdout, "runs").Exists() {
				t.Errorf("did not expect a report on stdout, got:\n%s", stdout)
			}
		})
	}
}

func TestCommand_Config(t *testing.T) {
	t.Parallel()

	stdout, stderr := testcmd.Run(t, testcmd.Case{
		Name: "config next to the input",
		Args: []string{"", "-i", "./testdata/with-config/results.json"},
		Exit: 0,
	})

	if diff := cmp.Diff([]string{"SNYK-JS-MINIMIST-559764"}, ruleIDs(t, stdout)); diff != "" {
		t.Errorf("rule ids mismatch (-want +got):\n%s", diff)
	}
	if got := gjson.Get(stdout, "runs.0.results.#").Int(); got != 1 {
		t.Errorf("got %d results, want 1", got)
	}

	stderr = strings.ReplaceAll(stderr, "\\", "/")
	for _, want := range []string{
		"Loaded filter from: testdata/with-config/snyk-to-sarif.toml\n",
		"SNYK-JS-LODASH-567746 and 1 result have been filtered out because: only used by the build tooling\n",
		"testdata/with-config/snyk-to-sarif.toml has unused ignores:\n - SNYK-NOT-PRESENT\n",
	} {
		if !strings.Contains(stderr, want) {
			t.Errorf("stderr does not contain %q:\n%s", want, stderr)
		}
	}
}

func TestCommand_InvalidConfig(t *testing.T) {
	t.Parallel()

	stdout, stderr := testcmd.Run(t, testcmd.Case{
		Name: "invalid config override",
		Args: []string{"", "-i", "./testdata/dependency.json", "--config", "./testdata/invalid-config.toml"},
		Exit: 130,
	})

	// the config is ignored, but the conversion still happens
	if got := len(ruleIDs(t, stdout)); got != 3 {
		t.Errorf("got %d rules, want 3", got)
	}

	want := "Ignored invalid config file at ./testdata/invalid-config.toml because: unknown keys in config file: IgnoredRules.until"
	if !strings.Contains(stderr, want) {
		t.Errorf("stderr does not contain %q:\n%s", want, stderr)
	}
}

func TestCommand_SARIFSnapshots(t *testing.T) {
	t.Parallel()

	tests := []testcmd.Case{
		{
			Name: "dependency scan",
			Args: []string{"", "-i", "./testdata/dependency.json"},
			Exit: 0,
		},
		{
			Name: "iac scan pretty printed",
			Args: []string{"", "-i", "./testdata/iac.json", "--pretty"},
			Exit: 0,
		},
		{
			Name:         "multiple projects",
			Args:         []string{"", "-i", "./testdata/multi.json", "--format", "sarif"},
			Exit:         0,
			ReplaceRules: []testcmd.JSONReplaceRule{testcmd.ShortenHelpMarkdown},
		},
		{
			Name:         "ignored rules are filtered out",
			Args:         []string{"", "-i", "./testdata/with-config/results.json"},
			Exit:         0,
			ReplaceRules: []testcmd.JSONReplaceRule{testcmd.OnlyRuleIDsRule},
		},
		{
			Name: "snyk failed to scan",
			Args: []string{"", "-i", "./testdata/failed.json"},
			Exit: 127,
		},
	}

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			t.Parallel()

			testcmd.RunAndMatchSnapshots(t, tt)
		})
	}
}

func TestCommand_HumanFormats(t *testing.T) {
	t.Parallel()

	tests := []testcmd.Case{
		{
			Name: "table",
			Args: []string{"", "-i", "./testdata/iac.json", "--format", "table"},
			Exit: 0,
		},
		{
			Name: "table with multiple projects",
			Args: []string{"", "-i", "./testdata/multi.json", "--format", "table"},
			Exit: 0,
		},
		{
			Name: "markdown",
			Args: []string{"", "-i", "./testdata/iac.json", "-f", "markdown"},
			Exit: 0,
		},
		{
			Name: "github annotations",
			Args: []string{"", "-i", "./testdata/iac.json", "--format=gh-annotations"},
			Exit: 0,
		},
		{
			Name: "github annotations for dependencies",
			Args: []string{"", "-i", "./testdata/dependency.json", "--format=gh-annotations"},
			Exit: 0,
		},
		{
			Name:  "no findings as a table",
			Args:  []string{"", "--format", "table"},
			Stdin: `{"vulnerabilities": [], "displayTargetFile": "package.json"}`,
			Exit:  0,
		},
		{
			Name: "table with an invalid config",
			Args: []string{"", "-i", "./testdata/iac.json", "--format", "table", "--config", "./testdata/invalid-config.toml"},
			Exit: 130,
		},
	}

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			t.Parallel()

			testcmd.RunAndMatchSnapshots(t, tt)
		})
	}
}

func TestCommand_OutputFile(t *testing.T) {
	t.Parallel()

	outputPath := filepath.Join(t.TempDir(), "snyk.sarif")

	stdout, stderr := testcmd.Run(t, testcmd.Case{
		Name: "output to a file",
		Args: []string{"", "-i", "./testdata/iac.json", "-o", outputPath, "--pretty"},
		Exit: 0,
	})

	if stdout != "" || stderr != "" {
		t.Errorf("expected no output, got stdout %q and stderr %q", stdout, stderr)
	}

	data, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("output file was not written: %v", err)
	}

	if diff := cmp.Diff([]string{"SNYK-CC-TF-1", "SNYK-CC-TF-45"}, ruleIDs(t, string(data))); diff != "" {
		t.Errorf("rule ids mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(string(data), "\n  \"runs\"") {
		t.Errorf("expected the output to be indented")
	}
}

func TestCommand_NoOutputFileOnFailure(t *testing.T) {
	t.Parallel()

	outputPath := filepath.Join(t.TempDir(), "snyk.sarif")

	testcmd.Run(t, testcmd.Case{
		Name: "failed conversion",
		Args: []string{"", "-i", "./testdata/failed.json", "-o", outputPath},
		Exit: 127,
	})

	if _, err := os.Stat(outputPath); !os.IsNotExist(err) {
		t.Errorf("expected no output file to be created, got %v", err)
	}
}

func TestCommand_Verbosity(t *testing.T) {
	t.Parallel()

	_, stderr := testcmd.Run(t, testcmd.Case{
		Name: "debug logs",
		Args: []string{"", "-i", "./testdata/multi.json", "--verbosity", "debug"},
		Exit: 0,
	})

	for _, want := range []string{
		"Converting 3 projects\n",
		"Produced 3 rules and 4 results\n",
	} {
		if !strings.Contains(stderr, want) {
			t.Errorf("stderr does not contain %q:\n%s", want, stderr)
		}
	}
}
