// Provides platform-appropriate locations for xpack's own files.
//
// User-level configuration follows XDG conventions on Linux and the native
// conventions on macOS and Windows. The program name "xpack" is used as the
// subdirectory under each base path.
package paths
