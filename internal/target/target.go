package target

import (
	"fmt"
	"strings"

	"github.com/containerd/platforms"
	ocispec "github.com/opencontainers/image-spec/specs-go/v1"
)

const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
)

const (

	// Omit the symbol table and DWARF debug information.
	StripFlags = "-s -w"

	// Build a GUI subsystem executable so no console window is opened.
	WindowsGUIFlag = "-H=windowsgui"
)

// Operating systems xpack can package for.
var supportedOS = map[string]bool{
	Windows: true,
	Darwin:  true,
	Linux:   true,
}

// A cross-compilation target.
type Target struct {
	platform ocispec.Platform
}

// Parses an "os/arch[/variant]" specifier.
//
// The operating system must be given explicitly; unlike a bare platform
// string, "amd64" alone does not default to the host OS.
func Parse(spec string) (Target, error) {
	spec = strings.TrimSpace(spec)
	if strings.Count(spec, "/") < 1 {
		return Target{}, fmt.Errorf("%w: %q: expected os/arch", ErrInvalidTarget, spec)
	}

	p, err := platforms.Parse(spec)
	if err != nil {
		return Target{}, fmt.Errorf("%w: %w", ErrInvalidTarget, err)
	}

	if !supportedOS[p.OS] {
		return Target{}, fmt.Errorf("%w: %q: operating system %q", ErrUnsupportedTarget, spec, p.OS)
	}

	return Target{platform: p}, nil
}

// Parses a list of specifiers, rejecting duplicates after normalization.
func ParseAll(specs []string) ([]Target, error) {
	seen := make(map[string]bool, len(specs))
	targets := make([]Target, 0, len(specs))

	for _, spec := range specs {
		t, err := Parse(spec)
		if err != nil {
			return nil, err
		}
		if seen[t.String()] {
			return nil, fmt.Errorf("%w: %q listed more than once", ErrInvalidTarget, t.String())
		}
		seen[t.String()] = true
		targets = append(targets, t)
	}

	return targets, nil
}

// Returns the GOOS value.
func (t Target) OS() string {
	return t.platform.OS
}

// Returns the GOARCH value.
func (t Target) Arch() string {
	return t.platform.Architecture
}

// Returns the architecture variant (e.g., "v7"), or an empty string.
func (t Target) Variant() string {
	return t.platform.Variant
}

// Returns the OCI platform descriptor.
func (t Target) Platform() ocispec.Platform {
	return t.platform
}

// Formats the target as "os/arch[/variant]".
func (t Target) String() string {
	return platforms.Format(t.platform)
}

// Converts the target to a filesystem-safe slug.
//
// Replaces slashes with dashes (e.g., "darwin/arm64" becomes "darwin-arm64").
func (t Target) Slug() string {
	return strings.ReplaceAll(t.String(), "/", "-")
}

// Whether the target is Windows.
func (t Target) IsWindows() bool {
	return t.OS() == Windows
}

// Whether the target is macOS, which receives an application bundle.
func (t Target) IsDarwin() bool {
	return t.OS() == Darwin
}

// Returns the executable file name suffix (".exe" on Windows).
func (t Target) Suffix() string {
	if t.IsWindows() {
		return ".exe"
	}
	return ""
}

// Returns the file name of an executable built for this target.
func (t Target) Executable(binary string) string {
	return binary + t.Suffix()
}

// Returns the linker flags for this target.
//
// base is used as-is (typically [StripFlags]); Windows targets additionally
// get [WindowsGUIFlag]. Extra flags are appended last.
func (t Target) LinkFlags(base string, extra ...string) string {
	flags := make([]string, 0, len(extra)+2)
	if base = strings.TrimSpace(base); base != "" {
		flags = append(flags, base)
	}
	if t.IsWindows() {
		flags = append(flags, WindowsGUIFlag)
	}
	for _, e := range extra {
		if e = strings.TrimSpace(e); e != "" {
			flags = append(flags, e)
		}
	}
	return strings.Join(flags, " ")
}

// Returns the environment entries that select this target in the Go
// toolchain.
func (t Target) Environ(cgo bool) []string {
	env := []string{
		"CGO_ENABLED=" + boolEnv(cgo),
		"GOOS=" + t.OS(),
		"GOARCH=" + t.Arch(),
	}
	if t.Arch() == "arm" && t.Variant() != "" {
		env = append(env, "GOARM="+strings.TrimPrefix(t.Variant(), "v"))
	}
	return env
}

func boolEnv(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
