package cli

import (
	"context"
	"fmt"

	"github.com/cruciblehq/xpack/internal"
)

// Represents the 'xpack version' command.
type VersionCmd struct{}

// Prints the version string.
func (c *VersionCmd) Run(ctx context.Context) error {
	fmt.Println(internal.VersionString())
	return nil
}
