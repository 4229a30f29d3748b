// Package toolchain runs the Go compiler as a subprocess.
//
// A [Compiler] turns an [Invocation] (package, output path, link flags, and
// environment overrides) into a compiled binary. The [Go] implementation
// shells out to "go build", inheriting the process environment and
// overlaying the invocation's entries on top so that GOOS, GOARCH, and
// CGO_ENABLED select the cross-compilation target.
//
// Standard output and standard error are captured and returned in a
// [Result]. A non-zero exit code is not treated as an error; the caller
// decides how to interpret the exit code and any diagnostic output.
//
// Example usage:
//
//	gc := toolchain.NewGo("")
//	result, err := gc.Build(ctx, toolchain.Invocation{
//	    Dir:       ".",
//	    Package:   ".",
//	    Output:    "dist/app-darwin-arm64/app",
//	    LinkFlags: "-s -w",
//	    Env:       []string{"GOOS=darwin", "GOARCH=arm64"},
//	})
//	if err != nil {
//	    return err
//	}
package toolchain
