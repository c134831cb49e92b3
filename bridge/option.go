package bridge

import (
	"fmt"
	"time"

	mcpschema "github.com/viant/mcp-protocol/schema"
)

// Option is a function that configures the bridge.
type Option func(b *Bridge) error

// WithCallTimeout sets the deadline applied to forwarded calls.
func WithCallTimeout(timeout time.Duration) Option {
	return func(b *Bridge) error {
		if timeout <= 0 {
			return fmt.Errorf("invalid call timeout: %v", timeout)
		}
		b.callTimeout = timeout
		return nil
	}
}

// WithQueueCapacity bounds the event queue.
func WithQueueCapacity(capacity int) Option {
	return func(b *Bridge) error {
		if capacity <= 0 {
			return fmt.Errorf("invalid queue capacity: %v", capacity)
		}
		b.queueCapacity = capacity
		return nil
	}
}

// WithImplementation sets the server implementation info reported on initialize.
func WithImplementation(implementation mcpschema.Implementation) Option {
	return func(b *Bridge) error {
		b.info = implementation
		return nil
	}
}

// WithInstructions sets the instructions reported on initialize.
func WithInstructions(instructions string) Option {
	return func(b *Bridge) error {
		b.instructions = &instructions
		return nil
	}
}

// WithProtocolVersion overrides the protocol version reported on initialize.
func WithProtocolVersion(version string) Option {
	return func(b *Bridge) error {
		b.protocolVersion = version
		return nil
	}
}
