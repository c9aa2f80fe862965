package cmd

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/urfave/cli/v3"
)

func Test_insertDefaultCommand(t *testing.T) {
	t.Parallel()

	commands := []*cli.Command{
		{Name: "default"},
		{Name: "helpers.go"},
		{Name: "other"},
	}
	defaultCommand := "default"

	tests := []struct {
		originalArgs []string
		wantArgs     []string
	}{
		// test when default command is specified
		{
			originalArgs: []string{"", "default", "--input", "file"},
			wantArgs:     []string{"", "default", "--input", "file"},
		},
		// test when command is not specified
		{
			originalArgs: []string{"", "--input", "file"},
			wantArgs:     []string{"", "default", "--input", "file"},
		},
		// test when command is also a filename
		{
			originalArgs: []string{"", "helpers.go"},
			wantArgs:     []string{"", "helpers.go"},
		},
		// test when command is not valid
		{
			originalArgs: []string{"", "invalid"},
			wantArgs:     []string{"", "default", "invalid"},
		},
		// test when only the binary is given
		{
			originalArgs: []string{"snyk-to-sarif"},
			wantArgs:     []string{"snyk-to-sarif"},
		},
		// test when command is a built-in option
		{
			originalArgs: []string{"", "--version"},
			wantArgs:     []string{"", "--version"},
		},
		{
			originalArgs: []string{"", "-h"},
			wantArgs:     []string{"", "-h"},
		},
		{
			originalArgs: []string{"", "help"},
			wantArgs:     []string{"", "help"},
		},
	}

	for _, tt := range tests {
		stderr := &bytes.Buffer{}

		argsActual := insertDefaultCommand(tt.originalArgs, commands, defaultCommand, stderr)
		if !reflect.DeepEqual(argsActual, tt.wantArgs) {
			t.Errorf("Test Failed. Details:\n"+
				"Args (Got):  %s\n"+
				"Args (Want): %s\n", argsActual, tt.wantArgs)
		}
	}
}

func Test_insertDefaultCommand_DoesNotModifyArgs(t *testing.T) {
	t.Parallel()

	args := []string{"snyk-to-sarif", "-i", "results.json"}

	got := insertDefaultCommand(args, []*cli.Command{{Name: "convert"}}, "convert", &bytes.Buffer{})

	if !reflect.DeepEqual(got, []string{"snyk-to-sarif", "convert", "-i", "results.json"}) {
		t.Errorf("insertDefaultCommand() = %v", got)
	}
	if !reflect.DeepEqual(args, []string{"snyk-to-sarif", "-i", "results.json"}) {
		t.Errorf("original args were modified: %v", args)
	}
}

func Test_warnIfCommandAmbiguous(t *testing.T) {
	t.Parallel()

	stderr := &bytes.Buffer{}
	warnIfCommandAmbiguous("helpers.go", "convert", stderr)

	if !strings.HasPrefix(stderr.String(), "Warning: `helpers.go` exists as both a subcommand") {
		t.Errorf("expected a warning, got %q", stderr.String())
	}

	stderr.Reset()
	warnIfCommandAmbiguous("does-not-exist", "convert", stderr)

	if stderr.Len() != 0 {
		t.Errorf("did not expect a warning, got %q", stderr.String())
	}
}
