package bundle

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Creates a target directory holding a fake binary, plus bundle resources.
func setup(t *testing.T) (dir string, opts Options) {
	t.Helper()
	root := t.TempDir()
	dir = filepath.Join(root, "SunsetTime-darwin-arm64")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sunset-time"), []byte("\xcf\xfa\xed\xfe"), 0755))

	plist := filepath.Join(root, "Info.plist")
	icon := filepath.Join(root, "icon.icns")
	require.NoError(t, os.WriteFile(plist, []byte("<plist/>"), 0644))
	require.NoError(t, os.WriteFile(icon, []byte("icns"), 0644))

	return dir, Options{App: "SunsetTime", Binary: "sunset-time", InfoPlist: plist, Icon: icon}
}

func TestNewLayout(t *testing.T) {
	l := NewLayout("out", "SunsetTime", "sunset-time")
	assert.Equal(t, filepath.Join("out", "SunsetTime.app"), l.Root)
	assert.Equal(t, filepath.Join("out", "SunsetTime.app", "Contents", "Info.plist"), l.InfoPlist)
	assert.Equal(t, filepath.Join("out", "SunsetTime.app", "Contents", "Resources", "icon.icns"), l.Icon)
	assert.Equal(t, filepath.Join("out", "SunsetTime.app", "Contents", "MacOS", "sunset-time"), l.Executable)
}

func TestAssemble(t *testing.T) {
	dir, opts := setup(t)

	layout, err := Assemble(dir, opts)
	require.NoError(t, err)

	assert.NoFileExists(t, filepath.Join(dir, "sunset-time"), "pre-bundle binary should be moved")
	assert.FileExists(t, layout.Executable)

	plist, err := os.ReadFile(layout.InfoPlist)
	require.NoError(t, err)
	assert.Equal(t, "<plist/>", string(plist))

	icon, err := os.ReadFile(layout.Icon)
	require.NoError(t, err)
	assert.Equal(t, "icns", string(icon))

	info, err := os.Stat(layout.Executable)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())
}

func TestAssembleRequiresBinary(t *testing.T) {
	dir, opts := setup(t)
	require.NoError(t, os.Remove(filepath.Join(dir, opts.Binary)))

	_, err := Assemble(dir, opts)
	assert.ErrorIs(t, err, ErrMissingBinary)
	assert.NoDirExists(t, filepath.Join(dir, "SunsetTime.app"))
}

func TestAssembleMissingResource(t *testing.T) {
	dir, opts := setup(t)
	opts.Icon = filepath.Join(t.TempDir(), "missing.icns")

	_, err := Assemble(dir, opts)
	require.ErrorIs(t, err, ErrBundle)
	assert.ErrorIs(t, err, os.ErrNotExist)

	// No rollback: the binary stays where it was.
	assert.FileExists(t, filepath.Join(dir, opts.Binary))
}

func TestCopyFileTruncates(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	dst := filepath.Join(dir, "dst")
	require.NoError(t, os.WriteFile(src, []byte("data"), 0600))
	require.NoError(t, os.WriteFile(dst, []byte("longer old contents"), 0644))

	require.NoError(t, copyFile(src, dst))

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "data", string(got))
}

func TestMoveFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a")
	dst := filepath.Join(dir, "b")
	require.NoError(t, os.WriteFile(src, []byte("x"), 0644))

	require.NoError(t, moveFile(src, dst))
	assert.NoFileExists(t, src)
	assert.FileExists(t, dst)
}
