package mounts

import (
	"fmt"

	"github.com/moby/sys/mountinfo"
)

// Entry is one record from a mount table snapshot.
type Entry struct {
	// Source is the mounted source path or device.
	Source string
	// Target is the path the mount is attached to.
	Target string
	// Options is the comma-separated per-mount options, e.g. "ro,relatime".
	Options string
}

// Table returns a point-in-time snapshot of the mount table for the current
// mount namespace. Entries are in the order the kernel reports them. The
// snapshot is immediately stale; callers must not assume entries still exist
// by the time they act on them.
func Table() ([]Entry, error) {
	infos, err := mountinfo.GetMounts(nil)
	if err != nil {
		return nil, fmt.Errorf("read mountinfo: %w", err)
	}

	entries := make([]Entry, 0, len(infos))
	for _, info := range infos {
		entries = append(entries, Entry{
			Source:  info.Source,
			Target:  info.Mountpoint,
			Options: info.Options,
		})
	}

	return entries, nil
}
