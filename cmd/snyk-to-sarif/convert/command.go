// Package convert implements the `convert` command for snyk-to-sarif.
package convert

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/hunt3rkillerz/snyk-to-sarif/cmd/snyk-to-sarif/internal/helper"
	"github.com/hunt3rkillerz/snyk-to-sarif/internal/cmdlogger"
	"github.com/hunt3rkillerz/snyk-to-sarif/internal/cmdreporter"
	"github.com/hunt3rkillerz/snyk-to-sarif/internal/config"
	"github.com/hunt3rkillerz/snyk-to-sarif/internal/convert"
	"github.com/hunt3rkillerz/snyk-to-sarif/internal/output"
	"github.com/hunt3rkillerz/snyk-to-sarif/internal/snyk"
	"github.com/urfave/cli/v3"
)

func Command(stdin io.Reader, stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:        "convert",
		Usage:       "converts the JSON output of a Snyk scan into SARIF",
		Description: "converts the JSON output of `snyk test --json` or `snyk iac test --json`, read from a file or stdin, into a SARIF 2.1.0 report.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:      "input",
				Aliases:   []string{"i"},
				Usage:     "the Snyk JSON file to convert; read from stdin if not set",
				TakesFile: true,
			},
			&cli.StringFlag{
				Name:      "output",
				Aliases:   []string{"o"},
				Usage:     "saves the result to the given file path",
				TakesFile: true,
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "sets the output format; value can be: " + strings.Join(cmdreporter.Format(), ", "),
				Value:   "sarif",
				Action: func(_ context.Context, _ *cli.Command, s string) error {
					if slices.Contains(cmdreporter.Format(), s) {
						return nil
					}

					return fmt.Errorf("unsupported output format \"%s\" - must be one of: %s", s, strings.Join(cmdreporter.Format(), ", "))
				},
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "indent the SARIF output",
			},
			&cli.StringFlag{
				Name:      "config",
				Usage:     "set/override config file",
				TakesFile: true,
			},
			&cli.StringFlag{
				Name:  "verbosity",
				Usage: "specify the level of information that should be provided during runtime; value can be: " + strings.Join(cmdlogger.Levels(), ", "),
				Value: "info",
				Action: func(_ context.Context, _ *cli.Command, s string) error {
					lvl, err := cmdlogger.ParseLevel(s)

					if err != nil {
						return err
					}

					cmdlogger.SetLevel(lvl)

					return nil
				},
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return action(ctx, cmd, stdin, stdout)
		},
	}
}

func action(_ context.Context, cmd *cli.Command, stdin io.Reader, stdout io.Writer) error {
	format := cmd.String("format")
	outputPath := cmd.String("output")
	inputPath := cmd.String("input")

	// anything machine readable on stdout must not be mixed with logs
	if outputPath == "" && format != "table" && format != "markdown" {
		cmdlogger.SendEverythingToStderr()
	}

	configManager := config.NewManager()
	if configPath := cmd.String("config"); configPath != "" {
		if err := configManager.UseOverride(configPath); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("failed to read config file: %w", err)
			}

			cmdlogger.Errorf("%s at %s because: %v", cmdlogger.InvalidConfigPrefix, configPath, err)
		}
	}

	data, err := helper.ReadInput(inputPath, stdin)
	if err != nil {
		return err
	}

	docs, err := snyk.ParseInput(data)
	if err != nil {
		return err
	}

	cmdlogger.Debugf("Converting %d %s", len(docs), output.Form(len(docs), "project", "projects"))

	report, err := convert.Aggregate(docs)
	if err != nil {
		return err
	}

	cfg := configManager.Get(inputPath)
	report = cfg.Filter(report)

	for path, entries := range configManager.UnusedIgnores() {
		cmdlogger.Infof("%s has unused ignores:", path)
		for _, entry := range entries {
			cmdlogger.Infof(" - %s", entry.ID)
		}
	}

	cmdlogger.Debugf("Produced %d rules and %d results", len(report.Rules), len(report.Results))

	return helper.PrintResult(stdout, outputPath, format, cmd.Bool("pretty"), report)
}
