package backend

import (
	"os/user"

	"github.com/nixpig/bindle/internal/mounts"
)

// System is the OS surface the backend reads and mutates: directory
// create/remove, mount/unmount, the mount table and the current user. Tests
// substitute an in-memory implementation; everything else uses Host.
type System interface {
	CurrentUser() (*user.User, error)
	MkdirAll(path string) error
	Rmdir(path string) error
	Mount(source, target, fstype string, flags uintptr, data string) error
	Unmount(target string) error
	Mounts() ([]mounts.Entry, error)
}

type hostSystem struct{}

// Host returns the System backed by the real kernel mount namespace.
func Host() System {
	return hostSystem{}
}

func (hostSystem) CurrentUser() (*user.User, error) {
	return user.Current()
}

func (hostSystem) MkdirAll(path string) error {
	return mounts.MkdirAll(path)
}

func (hostSystem) Rmdir(path string) error {
	return mounts.Rmdir(path)
}

func (hostSystem) Mount(source, target, fstype string, flags uintptr, data string) error {
	return mounts.Mount(source, target, fstype, flags, data)
}

func (hostSystem) Unmount(target string) error {
	return mounts.Unmount(target)
}

func (hostSystem) Mounts() ([]mounts.Entry, error) {
	return mounts.Table()
}
