// Package target describes the operating system and architecture pairs an
// application is cross-compiled for.
//
// Targets are written as "os/arch" (optionally "os/arch/variant") and parsed
// into OCI platform descriptors, which normalizes aliases such as
// "x86_64" or "aarch64". Each target knows the file name suffix of its
// executables, the link flags it needs, and the environment that selects it
// in the Go toolchain.
//
// Example usage:
//
//	t, err := target.Parse("windows/amd64")
//	if err != nil {
//	    return err
//	}
//	name := t.Executable("sunset-time") // "sunset-time.exe"
package target
