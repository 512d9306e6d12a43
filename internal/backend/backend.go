// Package backend provisions container root filesystems by bind-mounting a
// single pre-built layer onto the rootfs path and remounting it read-only.
// Destroy reverses this by finding the mount in the live mount table,
// unmounting it and removing the directory.
//
// All operations execute on a single worker goroutine, one at a time, in
// submission order, regardless of which rootfs they target. The mount
// namespace is process-wide kernel state; total ordering is the only
// synchronisation, so exactly one Backend should mediate all bind-mount
// provisioning on a host. No state is tracked in memory between operations;
// truth is re-derived from the mount table on every Destroy.
package backend

import (
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sys/unix"
)

// Config holds construction options for New.
type Config struct {
	// Log receives structured debug logs for each operation. Defaults to
	// slog.Default.
	Log *slog.Logger
	// System is the OS surface to operate on. Defaults to Host.
	System System
}

// Backend is the bind-mount provisioning backend. Create one with New and
// release it with Close.
type Backend struct {
	log *slog.Logger
	sys System

	mu     sync.Mutex
	cond   *sync.Cond
	queue  []func()
	closed bool
	done   chan struct{}
}

// New constructs a Backend and starts its worker. Bind-mounting and
// remounting require kernel privilege, so New fails with ErrPermissionDenied
// unless the effective user is root, or if the user lookup itself fails.
func New(cfg Config) (*Backend, error) {
	sys := cfg.System
	if sys == nil {
		sys = Host()
	}

	log := cfg.Log
	if log == nil {
		log = slog.Default()
	}

	u, err := sys.CurrentUser()
	if err != nil {
		return nil, fmt.Errorf("%w: determine current user: %w", ErrPermissionDenied, err)
	}

	if u.Uid != "0" {
		return nil, fmt.Errorf(
			"%w: bind backend requires root, running as uid %s",
			ErrPermissionDenied, u.Uid,
		)
	}

	b := &Backend{
		log:  log,
		sys:  sys,
		done: make(chan struct{}),
	}
	b.cond = sync.NewCond(&b.mu)

	go b.serve()

	return b, nil
}

// Provision bind-mounts the single layer in layers onto rootfs, creating the
// rootfs directory first, then remounts it read-only. The returned Future
// resolves once the worker has executed the operation. A failed read-only
// remount leaves the directory and the read-write bind mount in place; there
// is no rollback, and a later Destroy is the recovery path.
func (b *Backend) Provision(layers []string, rootfs string) *Future[struct{}] {
	f := newFuture[struct{}]()

	if !b.submit(func() {
		f.resolve(struct{}{}, b.provision(layers, rootfs))
	}) {
		f.resolve(struct{}{}, ErrClosed)
	}

	return f
}

// Destroy unmounts the bind mount whose target is exactly rootfs and removes
// the directory. The Future resolves to true if a mount was found and
// removed, or false if no mount matched, which is not an error.
func (b *Backend) Destroy(rootfs string) *Future[bool] {
	f := newFuture[bool]()

	if !b.submit(func() {
		f.resolve(b.destroy(rootfs))
	}) {
		f.resolve(false, ErrClosed)
	}

	return f
}

// Close stops the worker and waits for it to drain already-accepted
// operations. It is safe to call more than once. Operations submitted after
// Close resolve with ErrClosed.
func (b *Backend) Close() error {
	b.mu.Lock()
	if !b.closed {
		b.closed = true
		b.cond.Broadcast()
	}
	b.mu.Unlock()

	<-b.done

	return nil
}

// submit enqueues fn for the worker without blocking the caller on its
// execution. It reports whether the backend was still open.
func (b *Backend) submit(fn func()) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return false
	}

	b.queue = append(b.queue, fn)
	b.cond.Signal()

	return true
}

func (b *Backend) serve() {
	defer close(b.done)

	b.mu.Lock()
	for {
		for len(b.queue) == 0 && !b.closed {
			b.cond.Wait()
		}

		if len(b.queue) == 0 {
			b.mu.Unlock()
			return
		}

		fn := b.queue[0]
		b.queue = b.queue[1:]

		b.mu.Unlock()
		fn()
		b.mu.Lock()
	}
}

func (b *Backend) provision(layers []string, rootfs string) error {
	if len(layers) == 0 {
		return fmt.Errorf("%w: no filesystem layer provided", ErrInvalidArgument)
	}

	if len(layers) > 1 {
		return fmt.Errorf(
			"%w: multiple layers are not supported by the bind backend",
			ErrInvalidArgument,
		)
	}

	layer := layers[0]

	if err := b.sys.MkdirAll(rootfs); err != nil {
		return fmt.Errorf(
			"%w: create container rootfs at %s: %w",
			ErrResourceUnavailable, rootfs, err,
		)
	}

	// Non-recursive on purpose; nested mounts inside a layer are out of
	// scope.
	if err := b.sys.Mount(layer, rootfs, "", unix.MS_BIND, ""); err != nil {
		return fmt.Errorf(
			"%w: bind mount rootfs %s to %s: %w",
			ErrMountFailed, layer, rootfs, err,
		)
	}

	// Remount read-only in place. If this fails the read-write bind mount
	// stays mounted; recovery is a later Destroy.
	if err := b.sys.Mount(
		"",
		rootfs,
		"",
		unix.MS_BIND|unix.MS_REMOUNT|unix.MS_RDONLY,
		"",
	); err != nil {
		return fmt.Errorf(
			"%w: remount rootfs %s read-only: %w",
			ErrMountFailed, rootfs, err,
		)
	}

	b.log.Debug("provisioned rootfs", "layer", layer, "rootfs", rootfs)

	return nil
}

func (b *Backend) destroy(rootfs string) (bool, error) {
	entries, err := b.sys.Mounts()
	if err != nil {
		return false, fmt.Errorf(
			"%w: failed to read mount table: %w",
			ErrResourceUnavailable, err,
		)
	}

	for _, entry := range entries {
		if entry.Target != rootfs {
			continue
		}

		// Fails if the rootfs is still in use; the directory is left for a
		// retry.
		if err := b.sys.Unmount(entry.Target); err != nil {
			return false, fmt.Errorf(
				"%w: destroy bind-mounted rootfs %s: %w",
				ErrMountFailed, rootfs, err,
			)
		}

		if err := b.sys.Rmdir(rootfs); err != nil {
			return false, fmt.Errorf(
				"%w: remove rootfs mount point %s: %w",
				ErrResourceUnavailable, rootfs, err,
			)
		}

		b.log.Debug("destroyed rootfs", "rootfs", rootfs)

		return true, nil
	}

	b.log.Debug("no mount for rootfs", "rootfs", rootfs)

	return false, nil
}
