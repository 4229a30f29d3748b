// Package bundle assembles macOS application bundles.
//
// A bundle is a directory named "<App>.app" that Finder treats as a single
// double-clickable application:
//
//	<App>.app
//	  Contents
//	    Info.plist
//	    MacOS
//	      <binary>
//	    Resources
//	      icon.icns
//
// The metadata file and icon are copied verbatim. The compiled binary is
// moved, not copied, into Contents/MacOS, so its original location no
// longer exists after a successful [Assemble].
package bundle
