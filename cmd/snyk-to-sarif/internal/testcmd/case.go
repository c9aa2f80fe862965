// Package testcmd runs the snyk-to-sarif CLI in-process for tests.
package testcmd

import "strings"

type Case struct {
	Name string
	Args []string
	// Stdin is piped to the command when not empty
	Stdin string
	Exit  int

	// ReplaceRules are only used for SARIF output
	ReplaceRules []JSONReplaceRule
}

// isOutputtingJSON reports whether the case writes a SARIF report to stdout
func (c Case) isOutputtingJSON() bool {
	for i, arg := range c.Args {
		switch {
		case arg == "-o" || arg == "--output" || strings.HasPrefix(arg, "--output="):
			return false
		case arg == "-f" || arg == "--format":
			if i+1 < len(c.Args) && c.Args[i+1] != "sarif" {
				return false
			}
		case strings.HasPrefix(arg, "--format="):
			if arg != "--format=sarif" {
				return false
			}
		}
	}

	return true
}
