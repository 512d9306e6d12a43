package backend

// Future is the completion handle for a submitted operation. It resolves
// exactly once, when the worker finishes executing the operation.
type Future[T any] struct {
	done chan struct{}
	val  T
	err  error
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

func (f *Future[T]) resolve(val T, err error) {
	f.val = val
	f.err = err
	close(f.done)
}

// Wait blocks until the operation has finished and returns its result.
// There is no cancellation; once an operation is accepted it runs to
// completion.
func (f *Future[T]) Wait() (T, error) {
	<-f.done
	return f.val, f.err
}

// Done returns a channel that is closed once the operation has finished.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}
