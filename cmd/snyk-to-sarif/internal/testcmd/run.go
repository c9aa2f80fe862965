package testcmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/hunt3rkillerz/snyk-to-sarif/cmd/snyk-to-sarif/internal/cmd"
	"github.com/hunt3rkillerz/snyk-to-sarif/internal/testutility"
	"github.com/urfave/cli/v3"
)

// CommandsUnderTest should be set in TestMain by every cmd package test
var CommandsUnderTest []cmd.CommandBuilder

// fetchCommandsToTest returns the commands that should be tested, ensuring that
// the default "convert" command is included to avoid a panic
func fetchCommandsToTest() []cmd.CommandBuilder {
	for _, builder := range CommandsUnderTest {
		command := builder(nil, nil, nil)

		if command.Name == "convert" {
			return CommandsUnderTest
		}
	}

	return append(CommandsUnderTest, func(_ io.Reader, _, _ io.Writer) *cli.Command {
		return &cli.Command{
			Name: "convert",
			Action: func(_ context.Context, _ *cli.Command) error {
				return errors.New("<this test is unexpectedly calling the default convert command>")
			},
		}
	})
}

// Run runs the CLI with the arguments and stdin of the given case, checking
// that it exits with the expected code, and returns what it wrote to stdout
// and stderr
func Run(t *testing.T, tc Case) (string, string) {
	t.Helper()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	var stdin io.Reader
	if tc.Stdin != "" {
		stdin = strings.NewReader(tc.Stdin)
	}

	ec := cmd.Run(tc.Args, stdin, stdout, stderr, fetchCommandsToTest())

	if ec != tc.Exit {
		t.Errorf("cli exited with code %d, not %d", ec, tc.Exit)
		t.Logf("stdout:\n%s", stdout.String())
		t.Logf("stderr:\n%s", stderr.String())
	}

	return stdout.String(), stderr.String()
}

// RunAndMatchSnapshots runs the CLI with the given case and matches what it
// wrote to stdout and stderr against snapshots, normalizing any SARIF first
func RunAndMatchSnapshots(t *testing.T, tc Case) {
	t.Helper()

	stdout, stderr := Run(t, tc)

	if tc.isOutputtingJSON() && strings.TrimSpace(stdout) != "" {
		stdout = normalizeJSON(t, stdout, tc.ReplaceRules...)
	}

	testutility.NewSnapshot().MatchText(t, stdout)
	testutility.NewSnapshot().WithWindowsReplacements(map[string]string{
		"\\": "/",
	}).MatchText(t, stderr)
}

// normalizeJSON runs the given JSONReplaceRules on the given JSON input and returns the normalized JSON string
func normalizeJSON(t *testing.T, jsonInput string, jsonReplaceRules ...JSONReplaceRule) string {
	t.Helper()

	for _, rule := range jsonReplaceRules {
		jsonInput = replaceJSONInput(t, jsonInput, rule.Path, rule.ReplaceFunc)
	}

	jsonFormatted := bytes.Buffer{}
	err := json.Indent(&jsonFormatted, []byte(jsonInput), "", "  ")

	if err != nil {
		t.Fatalf("Failed to marshal JSON: %s", err)
	}

	return jsonFormatted.String()
}
