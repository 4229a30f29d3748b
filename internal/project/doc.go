// Package project loads and validates the packaging configuration of an
// application.
//
// The configuration names the application, its binary, the targets to
// cross-compile for, and the resources that make up the macOS bundle. It is
// read from xpack.yaml, xpack.yml, or xpack.toml in the project root, or
// from the user-level configuration directory, and falls back to built-in
// defaults. Fields absent from the file keep their default values.
//
// Validation runs before anything touches the output directory, so a typo
// in a target or a missing icon is reported without deleting the previous
// build.
//
// Example usage:
//
//	cfg, path, err := project.Load(root, "")
//	if err != nil {
//	    return err
//	}
//	if err := cfg.Validate(root); err != nil {
//	    return err
//	}
package project
