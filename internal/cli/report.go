package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/cruciblehq/xpack/internal/build"
)

// Prints per-target outcomes and the final summary to the console.
type reporter struct {
	out io.Writer                // Successful targets and the summary.
	err io.Writer                // Failed targets and their diagnostics.
	bar *progressbar.ProgressBar // Nil when not attached to a terminal.
}

// Creates a new [reporter] for total targets.
//
// When interactive, a progress bar is drawn on errOut and cleared before
// each line is printed.
func newReporter(out, errOut io.Writer, total int, interactive bool) *reporter {
	r := &reporter{out: out, err: errOut}
	if interactive {
		r.bar = progressbar.NewOptions(total,
			progressbar.OptionSetWriter(errOut),
			progressbar.OptionSetDescription("building"),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}
	return r
}

// Reports a finished target.
func (r *reporter) complete(t *build.TargetResult) {
	if r.bar != nil {
		r.bar.Clear()
	}

	switch t.Status {
	case build.StatusSucceeded:
		fmt.Fprintf(r.out, "%s ✔️\n", t.Target)
	case build.StatusCancelled:
		fmt.Fprintf(r.err, "%s ⏹ cancelled\n", t.Target)
	default:
		fmt.Fprintf(r.err, "%s ❌\n", t.Target)
		if t.Diagnostic != "" {
			fmt.Fprintln(r.err, indent(t.Diagnostic))
		} else if t.Err != nil {
			fmt.Fprintln(r.err, indent(t.Err.Error()))
		}
	}

	if r.bar != nil {
		r.bar.Add(1)
	}
}

// Prints the aggregate outcome of the build.
func (r *reporter) summary(result *build.Result) {
	if r.bar != nil {
		r.bar.Finish()
	}

	failed := len(result.Failed())
	ok := len(result.Targets) - failed
	elapsed := result.Duration.Round(time.Millisecond)

	if failed == 0 {
		fmt.Fprintf(r.out, "%d targets built in %s, output in %s\n", ok, elapsed, result.Output)
		return
	}
	fmt.Fprintf(r.err, "%d of %d targets failed (%d succeeded) in %s\n", failed, len(result.Targets), ok, elapsed)
}

// Indents every line of s by two spaces.
func indent(s string) string {
	return "  " + strings.ReplaceAll(s, "\n", "\n  ")
}
