package paths

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigFilesOrder(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"xpack.toml", "xpack.yaml"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, DefaultFileMode); err != nil {
			t.Fatal(err)
		}
	}

	got := ConfigFiles(dir)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2 (%v)", len(got), got)
	}
	if filepath.Base(got[0]) != "xpack.yaml" {
		t.Fatalf("first = %q, want xpack.yaml", got[0])
	}
}

func TestConfigFilesIgnoresDirectories(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "xpack.yaml"), DefaultDirMode); err != nil {
		t.Fatal(err)
	}
	if got := ConfigFiles(dir); len(got) != 0 {
		t.Fatalf("ConfigFiles = %v, want none", got)
	}
}

func TestFindConfigPrefersRoot(t *testing.T) {
	dir := t.TempDir()
	want := filepath.Join(dir, "xpack.yml")
	if err := os.WriteFile(want, nil, DefaultFileMode); err != nil {
		t.Fatal(err)
	}
	if got := FindConfig(dir); got != want {
		t.Fatalf("FindConfig = %q, want %q", got, want)
	}
}

func TestConfigUnderProgramName(t *testing.T) {
	if filepath.Base(Config()) != programName {
		t.Fatalf("Config = %q, want .../%s", Config(), programName)
	}
}
