// Package version holds the release version of snyk-to-sarif.
package version

// ToolVersion is the current release version, you should update this when releasing a new version
const ToolVersion = "1.2.0"
