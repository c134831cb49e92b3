package bridge

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// testConn is an in-memory bridge.Conn recording writes and closes.
type testConn struct {
	mux      sync.Mutex
	frames   [][]byte
	closed   bool
	writeErr error
	closeErr error
	onWrite  func(data []byte)
}

func (c *testConn) Write(_ context.Context, data []byte) error {
	c.mux.Lock()
	if c.writeErr != nil {
		err := c.writeErr
		c.mux.Unlock()
		return err
	}
	c.frames = append(c.frames, data)
	onWrite := c.onWrite
	c.mux.Unlock()
	if onWrite != nil {
		onWrite(data)
	}
	return nil
}

func (c *testConn) Close() error {
	c.mux.Lock()
	defer c.mux.Unlock()
	c.closed = true
	return c.closeErr
}

func (c *testConn) isClosed() bool {
	c.mux.Lock()
	defer c.mux.Unlock()
	return c.closed
}

func (c *testConn) written() [][]byte {
	c.mux.Lock()
	defer c.mux.Unlock()
	ret := make([][]byte, len(c.frames))
	copy(ret, c.frames)
	return ret
}

func TestSlot_InstallSupersedes(t *testing.T) {
	slot := NewSlot()
	assert.Nil(t, slot.Current())

	first := &testConn{}
	slot.Install(first)
	assert.Equal(t, Conn(first), slot.Current())
	assert.False(t, first.isClosed())

	second := &testConn{}
	slot.Install(second)
	assert.Equal(t, Conn(second), slot.Current())
	assert.True(t, first.isClosed(), "superseded connection must be closed")
	assert.False(t, second.isClosed())
}

func TestSlot_InstallSwallowsCloseError(t *testing.T) {
	slot := NewSlot()
	first := &testConn{closeErr: errors.New("close failed")}
	slot.Install(first)

	second := &testConn{}
	slot.Install(second)
	assert.Equal(t, Conn(second), slot.Current())
}

func TestSlot_ClearStaleIsNoop(t *testing.T) {
	slot := NewSlot()
	first := &testConn{}
	second := &testConn{}
	slot.Install(first)
	slot.Install(second)

	// A slow closing old connection clearing itself must not erase the newer one.
	slot.Clear(first)
	assert.Equal(t, Conn(second), slot.Current())

	slot.Clear(second)
	assert.Nil(t, slot.Current())
}
