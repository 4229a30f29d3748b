package internal

import (
	"fmt"
	"runtime"
	"strings"
)

const (

	// Program name, used for the CLI, log groups, and configuration lookup.
	Name = "xpack"

	// Placeholder for link-time variables that were not set.
	undefined = "(undefined)"

	// Reported instead of a version for builds made outside the release pipeline.
	localBuild = "(local)"

	// Branch whose name is omitted from version strings.
	releaseBranch = "main"
)

// Set via -X at link time. xpack stamps these the same way it stamps the
// applications it packages (see the stamp section of the configuration).
var (
	version   = "" // Release version (e.g., "v0.4.1").
	stage     = "" // Branch the release was cut from.
	gitCommit = "" // Commit hash of the release.

	rawQuiet   = "false" // Default for --quiet.
	rawDebug   = "false" // Default for --debug.
	rawVerbose = "false" // Default for --verbose.
)

// Returns the release version without a leading "v".
func Version() string {
	v := strings.ToLower(strings.TrimSpace(version))
	if v == "" {
		return undefined
	}
	return strings.TrimPrefix(v, "v")
}

// Returns the release branch in lower case.
func Stage() string {
	s := strings.TrimSpace(stage)
	if s == "" {
		return undefined
	}
	return strings.ToLower(s)
}

// Returns the release commit hash.
func GitCommit() string {
	if c := strings.TrimSpace(gitCommit); c != "" {
		return c
	}
	return undefined
}

// Reports whether any of the release variables is missing.
func IsLocal() bool {
	for _, v := range []string{version, stage, gitCommit} {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}

// Returns "<version>[+<stage>] <commit> [<os>/<arch>]", or "(local)" when
// the release variables were not stamped.
func VersionString() string {
	if IsLocal() {
		return localBuild
	}

	suffix := ""
	if s := Stage(); s != releaseBranch {
		suffix = "+" + s
	}

	return fmt.Sprintf("%s%s %s [%s/%s]", Version(), suffix, GitCommit(), runtime.GOOS, runtime.GOARCH)
}
