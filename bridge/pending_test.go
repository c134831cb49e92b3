package bridge

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/jsonrpc"
)

func TestPending_RegisterRejectsDuplicate(t *testing.T) {
	pending := NewPending()
	call, err := pending.Register("a1")
	require.NoError(t, err)
	require.NotNil(t, call)

	_, err = pending.Register("a1")
	assert.ErrorIs(t, err, ErrDuplicateId)
	assert.Equal(t, 1, pending.Size(), "existing entry must stay untouched")
}

func TestPending_ResolveDeliversToExactWaiter(t *testing.T) {
	pending := NewPending()
	first, err := pending.Register("a1")
	require.NoError(t, err)
	second, err := pending.Register("a2")
	require.NoError(t, err)

	resolved := pending.Resolve("a2", &jsonrpc.Response{Jsonrpc: jsonrpc.Version, Id: "a2", Result: json.RawMessage(`"x"`)})
	assert.True(t, resolved)

	ctx := context.Background()
	response, err := pending.Await(ctx, second, time.Second)
	require.NoError(t, err)
	assert.Equal(t, json.RawMessage(`"x"`), response.Result)

	// The other waiter is unaffected and still times out on its own.
	_, err = pending.Await(ctx, first, 20*time.Millisecond)
	assert.ErrorIs(t, err, ErrTimeout)
	assert.Equal(t, 0, pending.Size())
}

func TestPending_ResolveUnknownIdIsNoop(t *testing.T) {
	pending := NewPending()
	assert.False(t, pending.Resolve("ghost", &jsonrpc.Response{}))
}

func TestPending_TimeoutRemovesEntry(t *testing.T) {
	pending := NewPending()
	call, err := pending.Register("a1")
	require.NoError(t, err)

	_, err = pending.Await(context.Background(), call, 20*time.Millisecond)
	assert.ErrorIs(t, err, ErrTimeout)
	assert.Equal(t, 0, pending.Size())

	// A reply arriving after timeout is dropped, never misdelivered.
	assert.False(t, pending.Resolve("a1", &jsonrpc.Response{}))
}

func TestPending_AwaitHonoursContext(t *testing.T) {
	pending := NewPending()
	call, err := pending.Register("a1")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = pending.Await(ctx, call, time.Second)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, pending.Size())
}
