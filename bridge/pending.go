package bridge

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/viant/jsonrpc"
)

var (
	// ErrDuplicateId reports a correlation id that is already in flight.
	ErrDuplicateId = errors.New("duplicate request id")
	// ErrTimeout reports a call whose deadline elapsed with no reply.
	ErrTimeout = errors.New("request timeout")
)

// Call is the wait slot for one in-flight forwarded request.
type Call struct {
	Id       string
	Created  time.Time
	response chan *jsonrpc.Response
}

// Pending correlates in-flight request ids to the calls awaiting their reply.
// Each entry is resolved exactly once, either with a response or by its
// deadline, and is removed from the table upon resolution.
type Pending struct {
	mux   sync.Mutex
	calls map[string]*Call
}

// NewPending creates an empty pending call table.
func NewPending() *Pending {
	return &Pending{calls: make(map[string]*Call)}
}

// Register allocates a wait slot for id. Reusing an id while a call is in
// flight is rejected with ErrDuplicateId so a reply can never be cross
// delivered to the wrong caller.
func (p *Pending) Register(id string) (*Call, error) {
	p.mux.Lock()
	defer p.mux.Unlock()
	if _, ok := p.calls[id]; ok {
		return nil, ErrDuplicateId
	}
	call := &Call{
		Id:       id,
		Created:  time.Now(),
		response: make(chan *jsonrpc.Response, 1),
	}
	p.calls[id] = call
	return call, nil
}

// Resolve delivers response to the call registered under id and removes the
// entry. It returns false for a late or unknown id; such replies carry no
// subscriber and are dropped by the caller.
func (p *Pending) Resolve(id string, response *jsonrpc.Response) bool {
	p.mux.Lock()
	call, ok := p.calls[id]
	if ok {
		delete(p.calls, id)
	}
	p.mux.Unlock()
	if !ok {
		return false
	}
	// The channel is buffered; delivery never blocks the receive loop.
	call.response <- response
	return true
}

// Remove discards the entry for id without resolving it, used when a write to
// the agent fails after registration.
func (p *Pending) Remove(id string) {
	p.mux.Lock()
	defer p.mux.Unlock()
	delete(p.calls, id)
}

// Size returns the number of in-flight calls.
func (p *Pending) Size() int {
	p.mux.Lock()
	defer p.mux.Unlock()
	return len(p.calls)
}

// Await suspends until call resolves or timeout elapses. On timeout the entry
// is removed so a reply arriving later finds no waiter and is dropped, never
// misdelivered.
func (p *Pending) Await(ctx context.Context, call *Call, timeout time.Duration) (*jsonrpc.Response, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case response := <-call.response:
		return response, nil
	case <-timer.C:
		p.Remove(call.Id)
		return nil, ErrTimeout
	case <-ctx.Done():
		p.Remove(call.Id)
		return nil, ctx.Err()
	}
}
