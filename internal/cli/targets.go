package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/cruciblehq/xpack/internal/build"
	"github.com/cruciblehq/xpack/internal/project"
)

// Represents the 'xpack targets' command.
type TargetsCmd struct {
	ProjectFlags
}

// Lists each configured target with its artifact path.
//
// When a previous build left a manifest in the output directory, the
// recorded status and digest of each target are shown as well.
func (c *TargetsCmd) Run(ctx context.Context) error {
	root, cfg, err := c.load()
	if err != nil {
		return err
	}

	targets, err := cfg.ParseTargets()
	if err != nil {
		return err
	}

	output := project.Resolve(root, cfg.Output)

	recorded := make(map[string]build.Artifact)
	if m, err := build.ReadManifest(output); err == nil {
		for _, a := range m.Artifacts {
			recorded[a.Target] = a
		}
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TARGET\tARTIFACT\tSTATUS\tDIGEST")
	for _, t := range targets {
		_, exe := build.ArtifactPath(output, cfg, t)
		rel, err := filepath.Rel(root, exe)
		if err != nil {
			rel = exe
		}

		status, dgst := "-", "-"
		if a, ok := recorded[t.String()]; ok {
			status = string(a.Status)
			if a.Digest != "" {
				dgst = a.Digest.Encoded()
				dgst = dgst[:min(12, len(dgst))]
			}
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", t, rel, status, dgst)
	}
	return w.Flush()
}
