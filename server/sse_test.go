package server

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	mcpschema "github.com/viant/mcp-protocol/schema"

	"github.com/agentbridge/relay/bridge"
	"github.com/agentbridge/relay/registry"
)

func TestServer_EventStream(t *testing.T) {
	reg := registry.New(mcpschema.Tool{Name: "echo"})
	aBridge, err := bridge.New(reg)
	require.NoError(t, err)
	srv, err := New(aBridge, WithKeepAliveInterval(30*time.Millisecond))
	require.NoError(t, err)
	testServer := httptest.NewServer(srv.HTTP(context.Background(), "").Handler)
	defer testServer.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, testServer.URL+"/events", nil)
	require.NoError(t, err)
	response, err := http.DefaultClient.Do(request)
	require.NoError(t, err)
	defer response.Body.Close()
	assert.Equal(t, "text/event-stream", response.Header.Get("Content-Type"))

	reader := bufio.NewReader(response.Body)

	// With nothing queued the stream emits keep-alive comments.
	line, err := readEventLine(reader)
	require.NoError(t, err)
	assert.Equal(t, ": keepalive", line)

	// A queued agent frame is delivered as a data event.
	aBridge.HandleFrame([]byte(`{"jsonrpc":"2.0","method":"notifications/progress","params":{"done":1}}`))
	deadline := time.Now().Add(2 * time.Second)
	for {
		line, err = readEventLine(reader)
		require.NoError(t, err)
		if strings.HasPrefix(line, "data: ") {
			assert.Contains(t, line, "notifications/progress")
			break
		}
		require.True(t, time.Now().Before(deadline), "expected a data event before deadline")
	}
}

func readEventLine(reader *bufio.Reader) (string, error) {
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			return "", err
		}
		line = strings.TrimRight(line, "\n")
		if line != "" {
			return line, nil
		}
	}
}
