// Package lock serializes critical sections such as biometric rotation,
// either within one process or across replicas through Redis.
package lock

import (
	"context"
	"errors"
)

// ErrNotHeld is returned once a lease expired or was taken over.
var ErrNotHeld = errors.New("lock not held")

// Lease is a held lock.
type Lease interface {
	// Check returns ErrNotHeld if the lock is no longer held. Callers check
	// before committing work the lock protects.
	Check(ctx context.Context) error
	// Unlock releases the lock. It returns ErrNotHeld if the lock was lost
	// before release.
	Unlock(ctx context.Context) error
}

// Locker acquires a single named mutex. Lock blocks until the lock is held or
// ctx is done.
type Locker interface {
	Lock(ctx context.Context) (Lease, error)
}

// Local is an in-process Locker. The zero value is not usable; use NewLocal.
type Local struct {
	ch chan struct{}
}

func NewLocal() *Local {
	return &Local{ch: make(chan struct{}, 1)}
}

func (l *Local) Lock(ctx context.Context) (Lease, error) {
	select {
	case l.ch <- struct{}{}:
		return &localLease{ch: l.ch}, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

type localLease struct {
	ch       chan struct{}
	released bool
}

func (l *localLease) Check(context.Context) error {
	if l.released {
		return ErrNotHeld
	}
	return nil
}

func (l *localLease) Unlock(context.Context) error {
	if l.released {
		return ErrNotHeld
	}
	l.released = true
	<-l.ch
	return nil
}
