package operations

import (
	"fmt"

	"github.com/nixpig/bindle/internal/mounts"
)

// Mounts returns a snapshot of the current mount table.
func Mounts() ([]mounts.Entry, error) {
	entries, err := mounts.Table()
	if err != nil {
		return nil, fmt.Errorf("read mount table: %w", err)
	}

	return entries, nil
}
