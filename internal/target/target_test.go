package target

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		slug    string
		wantErr error
	}{
		{name: "windows amd64", input: "windows/amd64", want: "windows/amd64", slug: "windows-amd64"},
		{name: "windows 386", input: "windows/386", want: "windows/386", slug: "windows-386"},
		{name: "darwin arm64", input: "darwin/arm64", want: "darwin/arm64", slug: "darwin-arm64"},
		{name: "arch alias", input: "linux/x86_64", want: "linux/amd64", slug: "linux-amd64"},
		{name: "os alias", input: "macos/arm64", want: "darwin/arm64", slug: "darwin-arm64"},
		{name: "surrounding space", input: " darwin/amd64 ", want: "darwin/amd64", slug: "darwin-amd64"},
		{name: "with variant", input: "linux/arm/v6", want: "linux/arm/v6", slug: "linux-arm-v6"},
		{name: "arch only", input: "amd64", wantErr: ErrInvalidTarget},
		{name: "empty", input: "", wantErr: ErrInvalidTarget},
		{name: "unsupported os", input: "freebsd/amd64", wantErr: ErrUnsupportedTarget},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.String() != tt.want {
				t.Errorf("String = %q, want %q", got.String(), tt.want)
			}
			if got.Slug() != tt.slug {
				t.Errorf("Slug = %q, want %q", got.Slug(), tt.slug)
			}
		})
	}
}

func TestParseAllRejectsDuplicates(t *testing.T) {
	_, err := ParseAll([]string{"darwin/amd64", "darwin/x86_64"})
	if !errors.Is(err, ErrInvalidTarget) {
		t.Fatalf("err = %v, want ErrInvalidTarget", err)
	}
}

func TestParseAllPreservesOrder(t *testing.T) {
	in := []string{"windows/arm64", "darwin/amd64", "windows/386"}
	targets, err := ParseAll(in)
	if err != nil {
		t.Fatal(err)
	}
	for i, tgt := range targets {
		if tgt.String() != in[i] {
			t.Errorf("targets[%d] = %q, want %q", i, tgt, in[i])
		}
	}
}

func TestExecutableSuffix(t *testing.T) {
	for _, spec := range []string{"windows/amd64", "windows/386", "windows/arm64", "darwin/amd64", "darwin/arm64", "linux/amd64"} {
		tgt, err := Parse(spec)
		if err != nil {
			t.Fatal(err)
		}
		name := tgt.Executable("sunset-time")
		if tgt.IsWindows() != strings.HasSuffix(name, ".exe") {
			t.Errorf("%s: Executable = %q", spec, name)
		}
	}
}

func TestLinkFlags(t *testing.T) {
	win, _ := Parse("windows/amd64")
	mac, _ := Parse("darwin/arm64")

	if got := win.LinkFlags(StripFlags); got != "-s -w -H=windowsgui" {
		t.Errorf("windows LinkFlags = %q", got)
	}
	if got := mac.LinkFlags(StripFlags); got != "-s -w" {
		t.Errorf("darwin LinkFlags = %q", got)
	}
	if strings.Contains(mac.LinkFlags(StripFlags, "-X main.version=1"), WindowsGUIFlag) {
		t.Error("darwin flags contain the console-hiding flag")
	}
	if got := mac.LinkFlags("", " ", "-X main.version=1"); got != "-X main.version=1" {
		t.Errorf("LinkFlags with empty parts = %q", got)
	}
}

func TestEnviron(t *testing.T) {
	tgt, _ := Parse("darwin/amd64")
	env := tgt.Environ(true)
	for _, want := range []string{"CGO_ENABLED=1", "GOOS=darwin", "GOARCH=amd64"} {
		if !slices.Contains(env, want) {
			t.Errorf("Environ = %v, missing %s", env, want)
		}
	}

	arm, _ := Parse("linux/arm/v6")
	env = arm.Environ(false)
	if !slices.Contains(env, "GOARM=6") || !slices.Contains(env, "CGO_ENABLED=0") {
		t.Errorf("Environ = %v, want GOARM=6 and CGO_ENABLED=0", env)
	}
}
