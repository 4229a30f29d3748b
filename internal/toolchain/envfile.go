package toolchain

import (
	"fmt"
	"slices"

	"github.com/joho/godotenv"
)

// Reads a dotenv file into "KEY=value" entries.
//
// The entries are meant to be passed to [NewGo] so that every compiler run
// sees them (e.g., CC or CGO_LDFLAGS for a cross C toolchain). An empty path
// yields no entries.
func ReadEnvFile(path string) ([]string, error) {
	if path == "" {
		return nil, nil
	}

	vars, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrEnvFile, path, err)
	}

	env := make([]string, 0, len(vars))
	for k, v := range vars {
		env = append(env, k+"="+v)
	}
	slices.Sort(env)
	return env, nil
}
