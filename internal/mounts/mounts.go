// Package mounts wraps the mount-related syscalls and the mount table so the
// rest of the codebase never touches /proc or golang.org/x/sys directly.
package mounts

import (
	"os"

	"golang.org/x/sys/unix"
)

// Mount attaches source at target with the given filesystem type, mount
// flags and data string.
func Mount(source, target, fstype string, flags uintptr, data string) error {
	return unix.Mount(source, target, fstype, flags, data)
}

// Unmount detaches the mount at target.
func Unmount(target string) error {
	return unix.Unmount(target, 0)
}

// MkdirAll creates path along with any missing parents.
func MkdirAll(path string) error {
	return os.MkdirAll(path, 0o755)
}

// Rmdir removes the directory at path, which must be empty.
func Rmdir(path string) error {
	return unix.Rmdir(path)
}
