package operations

import (
	"fmt"
	"log/slog"

	"github.com/nixpig/bindle/internal/backend"
)

// DestroyOpts holds the options for the Destroy operation.
type DestroyOpts struct {
	// Rootfs is the path whose bind mount should be removed.
	Rootfs string
	// Log receives operation logs.
	Log *slog.Logger
}

// Destroy unmounts the bind-mounted rootfs and removes its directory. It
// returns true if a mount was found and removed, false if the path was not
// mounted.
func Destroy(opts *DestroyOpts) (bool, error) {
	b, err := backend.New(backend.Config{Log: opts.Log})
	if err != nil {
		return false, fmt.Errorf("create backend: %w", err)
	}
	defer b.Close()

	removed, err := b.Destroy(opts.Rootfs).Wait()
	if err != nil {
		return false, fmt.Errorf("destroy rootfs: %w", err)
	}

	return removed, nil
}
