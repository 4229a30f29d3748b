package bundle

import "path/filepath"

const (
	bundleExt     = ".app"
	contentsDir   = "Contents"
	resourcesDir  = "Resources"
	executableDir = "MacOS"
	infoPlistName = "Info.plist"
	iconName      = "icon.icns"
)

// Paths inside an application bundle.
type Layout struct {
	Root       string // <dir>/<App>.app
	Contents   string // Root/Contents
	InfoPlist  string // Contents/Info.plist
	Resources  string // Contents/Resources
	Icon       string // Resources/icon.icns
	MacOS      string // Contents/MacOS
	Executable string // MacOS/<binary>
}

// Computes the layout of the bundle for app inside dir.
func NewLayout(dir, app, binary string) Layout {
	root := filepath.Join(dir, app+bundleExt)
	contents := filepath.Join(root, contentsDir)
	resources := filepath.Join(contents, resourcesDir)
	macos := filepath.Join(contents, executableDir)

	return Layout{
		Root:       root,
		Contents:   contents,
		InfoPlist:  filepath.Join(contents, infoPlistName),
		Resources:  resources,
		Icon:       filepath.Join(resources, iconName),
		MacOS:      macos,
		Executable: filepath.Join(macos, binary),
	}
}
