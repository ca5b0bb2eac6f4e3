package mutation

import "context"

// Pending is the handle of a submitted mutation. It resolves once the remote
// write has settled and any rollback has been applied.
type Pending struct {
	done chan struct{}
	err  error
}

func newPending() *Pending {
	return &Pending{done: make(chan struct{})}
}

// Resolved returns a Pending that is already settled with err.
func Resolved(err error) *Pending {
	p := newPending()
	p.resolve(err)
	return p
}

func (p *Pending) resolve(err error) {
	p.err = err
	close(p.done)
}

// Done returns a channel closed when the mutation settles.
func (p *Pending) Done() <-chan struct{} {
	return p.done
}

// Err returns the outcome once settled, and nil while still in flight.
// A failed write yields a domain.Failure.
func (p *Pending) Err() error {
	select {
	case <-p.done:
		return p.err
	default:
		return nil
	}
}

// Wait blocks until the mutation settles or ctx is done. Giving up on the
// wait does not cancel the remote write.
func (p *Pending) Wait(ctx context.Context) error {
	select {
	case <-p.done:
		return p.err
	case <-ctx.Done():
		return ctx.Err()
	}
}
