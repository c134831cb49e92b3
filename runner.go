package relay

import (
	"context"
	"log"
	"time"

	"github.com/jessevdk/go-flags"
	mcpschema "github.com/viant/mcp-protocol/schema"

	"github.com/agentbridge/relay/bridge"
	"github.com/agentbridge/relay/registry"
	"github.com/agentbridge/relay/schema"
	"github.com/agentbridge/relay/server"
)

// Run parses args and serves the relay until the process is terminated.
func Run(args []string) error {
	options := &Options{}
	if _, err := flags.ParseArgs(options, args); err != nil {
		return err
	}
	ctx := context.Background()

	reg := registry.New(DefaultTools()...)
	bridgeOptions := []bridge.Option{
		bridge.WithCallTimeout(time.Duration(options.CallTimeout) * time.Second),
		bridge.WithQueueCapacity(options.QueueSize),
		bridge.WithImplementation(mcpschema.Implementation{Name: options.Name, Version: options.Version}),
	}
	if options.Instructions != "" {
		bridgeOptions = append(bridgeOptions, bridge.WithInstructions(options.Instructions))
	}
	aBridge, err := bridge.New(reg, bridgeOptions...)
	if err != nil {
		return err
	}
	srv, err := server.New(aBridge,
		server.WithAddr(options.Addr),
		server.WithKeepAliveInterval(time.Duration(options.KeepAlive)*time.Second),
	)
	if err != nil {
		return err
	}
	log.Printf("[relay] listening on %v, call timeout %vs", options.Addr, options.CallTimeout)
	return srv.HTTP(ctx, options.Addr).ListenAndServe()
}

// EchoInput is the input of the built-in echo tool.
type EchoInput struct {
	Data string `json:"data"`
}

// CommandInput is the input of the built-in agent command tool.
type CommandInput struct {
	Command string                 `json:"command"`
	Payload map[string]interface{} `json:"payload,omitempty"`
}

// DefaultTools declares the tools the relay advertises before the agent
// reports its own catalogue.
func DefaultTools() []mcpschema.Tool {
	ret := make([]mcpschema.Tool, 0, 2)
	if tool, err := declareTool("echo", "Echo data back through the local agent", &EchoInput{}); err == nil {
		ret = append(ret, tool)
	}
	if tool, err := declareTool("agent_command", "Execute a command on the local agent", &CommandInput{}); err == nil {
		ret = append(ret, tool)
	}
	return ret
}

func declareTool(name, description string, input any) (mcpschema.Tool, error) {
	inputSchema, err := schema.InputSchemaFor(input)
	if err != nil {
		return mcpschema.Tool{}, err
	}
	return mcpschema.Tool{Name: name, Description: &description, InputSchema: inputSchema}, nil
}
