package build

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/opencontainers/go-digest"
	ocispec "github.com/opencontainers/image-spec/specs-go/v1"

	"github.com/cruciblehq/xpack/internal/paths"
	"github.com/cruciblehq/xpack/internal/project"
)

// Name of the manifest file written to the output root.
const ManifestName = "manifest.json"

// Summary of a build, written next to the target directories.
type Manifest struct {
	RunID     string     `json:"run_id"`
	App       string     `json:"app"`
	Binary    string     `json:"binary"`
	Version   string     `json:"version,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	Artifacts []Artifact `json:"artifacts"`
}

// A single target entry in the [Manifest]. Paths are relative to the
// output root and use forward slashes. The platform is recorded as an OCI
// platform descriptor.
type Artifact struct {
	Target   string           `json:"target"`
	Platform ocispec.Platform `json:"platform"`
	Status   Status           `json:"status"`
	Path     string           `json:"path,omitempty"`
	Bundle   string           `json:"bundle,omitempty"`
	Size     int64            `json:"size,omitempty"`
	Digest   digest.Digest    `json:"digest,omitempty"`
	Error    string           `json:"error,omitempty"`
}

// Builds the manifest for a finished build.
func newManifest(result *Result, cfg *project.Config, now time.Time) *Manifest {
	m := &Manifest{
		RunID:     result.RunID,
		App:       cfg.Name,
		Binary:    cfg.Binary,
		Version:   cfg.Stamp.Version,
		CreatedAt: now.UTC(),
		Artifacts: make([]Artifact, 0, len(result.Targets)),
	}

	for _, t := range result.Targets {
		a := Artifact{
			Target:   t.Target.String(),
			Platform: t.Target.Platform(),
			Status:   t.Status,
			Size:     t.Size,
			Digest:   t.Digest,
		}
		if t.Status == StatusSucceeded {
			a.Path = relPath(result.Output, t.Artifact)
			a.Bundle = relPath(result.Output, t.Bundle)
		}
		if t.Err != nil {
			a.Error = t.Err.Error()
		}
		m.Artifacts = append(m.Artifacts, a)
	}

	return m
}

// Writes the manifest to the output root and returns its path.
func writeManifest(result *Result, cfg *project.Config, now time.Time) (string, error) {
	data, err := json.MarshalIndent(newManifest(result, cfg, now), "", "  ")
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFileSystemOperation, err)
	}

	path := filepath.Join(result.Output, ManifestName)
	if err := os.WriteFile(path, append(data, '\n'), paths.DefaultFileMode); err != nil {
		return "", fmt.Errorf("%w: %w", ErrFileSystemOperation, err)
	}

	return path, nil
}

// Reads a manifest written by a previous build.
func ReadManifest(output string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(output, ManifestName))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileSystemOperation, err)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileSystemOperation, err)
	}
	return &m, nil
}

// Returns p relative to base with forward slashes, or an empty string when
// p is empty or not under base.
func relPath(base, p string) string {
	if p == "" {
		return ""
	}
	rel, err := filepath.Rel(base, p)
	if err != nil {
		return ""
	}
	return filepath.ToSlash(rel)
}
