package project

import (
	"path/filepath"

	"github.com/cruciblehq/xpack/internal/target"
)

// Packaging configuration for an application.
type Config struct {
	Name          string       `yaml:"name" toml:"name"`                     // Application name, used for directories and the bundle.
	Binary        string       `yaml:"binary" toml:"binary"`                 // Executable file name, without suffix.
	Output        string       `yaml:"output" toml:"output"`                 // Output root, relative to the project root.
	Package       string       `yaml:"package" toml:"package"`               // Package to build, relative to the project root.
	Targets       []string     `yaml:"targets" toml:"targets"`               // Targets as "os/arch".
	CGO           *bool        `yaml:"cgo" toml:"cgo"`                       // Value of CGO_ENABLED. Nil means enabled.
	LDFlags       string       `yaml:"ldflags" toml:"ldflags"`               // Base link flags for every target.
	Jobs          int          `yaml:"jobs" toml:"jobs"`                     // Concurrent compiler runs; 0 is unlimited.
	FailFast      bool         `yaml:"fail_fast" toml:"fail_fast"`           // Cancel remaining targets after the first failure.
	AllowWarnings bool         `yaml:"allow_warnings" toml:"allow_warnings"` // Treat diagnostics from a successful compile as warnings.
	EnvFile       string       `yaml:"env_file" toml:"env_file"`             // Dotenv file with extra compiler environment.
	Bundle        BundleConfig `yaml:"bundle" toml:"bundle"`
	Stamp         StampConfig  `yaml:"stamp" toml:"stamp"`
}

// Resources copied into the macOS application bundle.
type BundleConfig struct {
	InfoPlist string `yaml:"info_plist" toml:"info_plist"` // Bundle metadata, copied verbatim.
	Icon      string `yaml:"icon" toml:"icon"`             // Icon resource in .icns format.
}

// Link-time version stamping.
//
// When Package is set, "-X <package>.version" and "-X <package>.gitCommit"
// are added to the link flags of every target.
type StampConfig struct {
	Package string `yaml:"package" toml:"package"`
	Version string `yaml:"version" toml:"version"`
}

// Returns the built-in configuration.
func Default() *Config {
	return &Config{
		Name:    "SunsetTime",
		Binary:  "sunset-time",
		Output:  "dist",
		Package: ".",
		Targets: []string{
			"windows/amd64",
			"windows/386",
			"windows/arm64",
			"darwin/amd64",
			"darwin/arm64",
		},
		LDFlags: target.StripFlags,
		Bundle: BundleConfig{
			InfoPlist: "Info.plist",
			Icon:      filepath.Join("assets", "icon.icns"),
		},
	}
}

// Value of CGO_ENABLED for compiler runs.
func (c *Config) CGOEnabled() bool {
	return c.CGO == nil || *c.CGO
}

// Parses the configured targets.
func (c *Config) ParseTargets() ([]target.Target, error) {
	return target.ParseAll(c.Targets)
}

// Whether any configured target is macOS. Unparseable targets are ignored.
func (c *Config) HasDarwin() bool {
	for _, spec := range c.Targets {
		if t, err := target.Parse(spec); err == nil && t.IsDarwin() {
			return true
		}
	}
	return false
}

// Resolves p against the project root unless it is already absolute.
func Resolve(root, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, p)
}
