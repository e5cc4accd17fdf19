package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyantic/sojourn/internal/logging"
	"github.com/voyantic/sojourn/internal/store/memory"
	"github.com/voyantic/sojourn/pkg/bridge"
	"github.com/voyantic/sojourn/pkg/catalog"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cat := catalog.Default()
	b := bridge.New(memory.NewStore(), cat, bridge.WithLogger(logging.NewNop()))
	return NewServer(b, cat, "test", WithLogger(logging.NewNop()))
}

// roundTrip pushes a raw JSON-RPC message through the embedded server
// and returns the marshalled response.
func roundTrip(t *testing.T, s *Server, msg string) string {
	t.Helper()
	resp := s.mcpServer.HandleMessage(context.Background(), json.RawMessage(msg))
	require.NotNil(t, resp)
	out, err := json.Marshal(resp)
	require.NoError(t, err)
	return string(out)
}

func TestToolName(t *testing.T) {
	assert.Equal(t, "travel_get_quote", ToolName(bridge.ActionGetQuote))
	assert.Equal(t, "travel_check_claim_status", ToolName(bridge.ActionCheckClaimStatus))
}

func TestListTools(t *testing.T) {
	s := newTestServer(t)

	out := roundTrip(t, s, `{"jsonrpc":"2.0","id":1,"method":"tools/list"}`)
	for _, name := range []string{
		"travel_get_quote",
		"travel_list_plans",
		"travel_purchase_policy",
		"travel_file_claim",
		"travel_check_claim_status",
	} {
		assert.Contains(t, out, name)
	}
	// Required fields survive the schema translation.
	assert.Contains(t, out, "destination")
	assert.Contains(t, out, "policy_id")
}

func TestCallTool_GetQuote(t *testing.T) {
	s := newTestServer(t)

	out := roundTrip(t, s, `{"jsonrpc":"2.0","id":2,"method":"tools/call","params":{
		"name":"travel_get_quote",
		"arguments":{"destination":"worldwide","days":14,"age":70,"activities":["Skiing"]}}}`)

	assert.Contains(t, out, "Q-")
	assert.Contains(t, out, "final_price")
	assert.NotContains(t, out, "isError")
}

func TestCallTool_ValidationError(t *testing.T) {
	s := newTestServer(t)

	out := roundTrip(t, s, `{"jsonrpc":"2.0","id":3,"method":"tools/call","params":{
		"name":"travel_get_quote",
		"arguments":{"destination":"europe"}}}`)

	// Errors come back as tool results, not protocol errors.
	assert.Contains(t, out, "isError")
	assert.Contains(t, out, "required")
}

func TestCallTool_NotFound(t *testing.T) {
	s := newTestServer(t)

	out := roundTrip(t, s, `{"jsonrpc":"2.0","id":4,"method":"tools/call","params":{
		"name":"travel_check_claim_status",
		"arguments":{"claim_id":"CLM-NONE"}}}`)

	assert.Contains(t, out, "isError")
	assert.Contains(t, out, "claim not found")
}

func TestReadResource_Plans(t *testing.T) {
	s := newTestServer(t)

	out := roundTrip(t, s, `{"jsonrpc":"2.0","id":5,"method":"resources/read","params":{
		"uri":"sojourn://plans"}}`)

	assert.Contains(t, out, "Basic Explorer")
	assert.Contains(t, out, "Pro Voyager")
	assert.Contains(t, out, "Digital Nomad")
}
