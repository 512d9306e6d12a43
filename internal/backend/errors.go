package backend

import "errors"

var (
	// ErrInvalidArgument is returned when the layer list is empty or holds
	// more than the single layer this backend supports.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrPermissionDenied is returned by New when the current user is not
	// root or the privilege check itself fails.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrResourceUnavailable is returned when creating or removing the
	// rootfs directory fails, or the mount table cannot be read.
	ErrResourceUnavailable = errors.New("resource unavailable")

	// ErrMountFailed is returned when a bind mount, read-only remount or
	// unmount syscall fails.
	ErrMountFailed = errors.New("mount failed")

	// ErrClosed is returned for operations submitted after Close.
	ErrClosed = errors.New("backend closed")
)
