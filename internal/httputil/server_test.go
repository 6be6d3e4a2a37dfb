// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/doctool/internal/dispatch"
	"github.com/pdiddy/doctool/pkg/types"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	router := NewRouter(dispatch.New(dispatch.Deps{}), zerolog.Nop(), time.Minute)
	ts := httptest.NewServer(router)
	t.Cleanup(ts.Close)
	return ts
}

func postCall(t *testing.T, ts *httptest.Server, body string) *http.Response {
	t.Helper()
	resp, err := ts.Client().Post(ts.URL+"/v1/call", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeEnvelope(t *testing.T, resp *http.Response) types.CallResponse {
	t.Helper()
	var envelope types.CallResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return envelope
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)

	resp, err := ts.Client().Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, string(body))
}

func TestCall_UnknownOperation(t *testing.T) {
	ts := newTestServer(t)

	resp := postCall(t, ts, `{"operationName":"bogus"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	envelope := decodeEnvelope(t, resp)
	assert.False(t, envelope.Success)
	assert.Equal(t, "Unknown tool: bogus", envelope.Message)
}

func TestCall_MalformedBody(t *testing.T) {
	ts := newTestServer(t)

	resp := postCall(t, ts, `{"operationName": `)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	envelope := decodeEnvelope(t, resp)
	assert.False(t, envelope.Success)
	assert.Contains(t, envelope.Message, "invalid request body")
}

func TestCall_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "raw.txt")
	require.NoError(t, os.WriteFile(in, []byte("a\r\n\r\n\r\nb"), 0o644))

	ts := newTestServer(t)

	req, err := json.Marshal(types.CallRequest{
		Operation: "text_formatter",
		Arguments: map[string]any{"inputPath": in, "outputDir": dir},
	})
	require.NoError(t, err)

	resp := postCall(t, ts, string(req))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	envelope := decodeEnvelope(t, resp)
	require.True(t, envelope.Success, "message: %s", envelope.Message)
	assert.Contains(t, envelope.Message, "wrote ")

	outPath := strings.TrimPrefix(envelope.Message, "wrote ")
	got, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "a\n\nb\n", string(got))
}

func TestOps(t *testing.T) {
	ts := newTestServer(t)

	resp, err := ts.Client().Get(ts.URL + "/v1/ops")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var descriptors []dispatch.Descriptor
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&descriptors))
	assert.Len(t, descriptors, 14)
	assert.Equal(t, "document_reader", descriptors[0].Name)
}
