package mutate

import (
	"context"
	"sync"

	"visa-admin-backend/internal/cache"
)

// Status tracks where a mutation currently stands.
type Status int

const (
	StatusIdle Status = iota
	StatusPending
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "idle"
	}
}

// Rule computes the cache prefixes to drop after a mutation succeeds. It
// receives the record the server returned, not the request payload, since
// the server is authoritative about fields like the parent applicant id.
type Rule[T any] func(result T) []cache.Prefix

// Orchestrator wraps one kind of mutation with status tracking, a declared
// post-success invalidation rule, and optional success/error hooks. It never
// deduplicates calls: every user-initiated mutation is dispatched
// independently.
type Orchestrator[T any] struct {
	store      *cache.Store
	invalidate Rule[T]
	onSuccess  func(T)
	onError    func(error)

	mu      sync.Mutex
	status  Status
	lastErr error
}

// Option configures an Orchestrator.
type Option[T any] func(*Orchestrator[T])

// WithOnSuccess registers a hook invoked after a successful call, once the
// cache has been invalidated.
func WithOnSuccess[T any](fn func(T)) Option[T] {
	return func(o *Orchestrator[T]) { o.onSuccess = fn }
}

// WithOnError registers a hook invoked when the remote call fails.
func WithOnError[T any](fn func(error)) Option[T] {
	return func(o *Orchestrator[T]) { o.onError = fn }
}

// New creates an Orchestrator for one mutation kind.
func New[T any](store *cache.Store, invalidate Rule[T], opts ...Option[T]) *Orchestrator[T] {
	o := &Orchestrator[T]{store: store, invalidate: invalidate}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Do runs the remote call. Invalidation is applied only after the call
// resolves successfully; a failed mutation leaves the cache untouched.
func (o *Orchestrator[T]) Do(ctx context.Context, call func(ctx context.Context) (T, error)) (T, error) {
	o.set(StatusPending, nil)

	result, err := call(ctx)
	if err != nil {
		o.set(StatusError, err)
		if o.onError != nil {
			o.onError(err)
		}
		var zero T
		return zero, err
	}

	if o.invalidate != nil {
		o.store.Invalidate(o.invalidate(result)...)
	}
	o.set(StatusSuccess, nil)
	if o.onSuccess != nil {
		o.onSuccess(result)
	}
	return result, nil
}

// Status returns the orchestrator's last observed status.
func (o *Orchestrator[T]) Status() Status {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.status
}

// Err returns the error from the last failed call, if any.
func (o *Orchestrator[T]) Err() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.lastErr
}

func (o *Orchestrator[T]) set(s Status, err error) {
	o.mu.Lock()
	o.status = s
	o.lastErr = err
	o.mu.Unlock()
}
