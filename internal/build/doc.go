// Package build cross-compiles an application for every configured target
// and packages the results.
//
// A build validates the project configuration, replaces the output root
// with an empty directory, and then runs one pipeline per target. Each
// pipeline compiles the application into "<output>/<App>-<os>-<arch>",
// checks the compiler's diagnostic output, and for darwin targets reshapes
// the directory into a macOS application bundle. Pipelines run
// concurrently; every pipeline is awaited and its outcome recorded, so a
// failing target never cuts the others short unless fail-fast is enabled.
// When all pipelines are done a manifest with the size and sha256 digest of
// every artifact is written to the output root.
//
// Compilation is delegated to the toolchain package and bundle assembly to
// the bundle package.
//
// Example usage:
//
//	result, err := build.Run(ctx, toolchain.NewGo(""), build.Options{
//	    Root:   ".",
//	    Config: cfg,
//	})
//	if result != nil {
//	    for _, t := range result.Targets {
//	        fmt.Println(t.Target, t.Status)
//	    }
//	}
//	if err != nil {
//	    return err
//	}
package build
