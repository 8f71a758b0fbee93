package app

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
app:
  server:
    http:
      address: "127.0.0.1:0"
instrument:
  enabled: false
  service_name: bitekit-test
hash:
  hmac:
    secret: secret
modules:
  toolkit:
    enabled: true
    random:
      default_bytes: 8
      max_bytes: 64
`

func TestApp_ServeAndStop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testConfig), 0o600))
	t.Setenv("CONFIG_PATH", path)

	application := New()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	errChan := application.Serve(l)

	baseURL := "http://" + l.Addr().String()
	client := &http.Client{Timeout: 5 * time.Second}

	resp, err := client.Get(baseURL + "/api/v1/toolkit/random/hex")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var env struct {
		Data struct {
			Value string `json:"value"`
			Bytes int    `json:"bytes"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &env))
	assert.Len(t, env.Data.Value, 16)
	assert.Equal(t, 8, env.Data.Bytes)

	resp, err = client.Post(baseURL+"/api/v1/toolkit/digest", "application/json",
		strings.NewReader(`{"algorithm":"hmac-sha256","input":"hello world"}`))
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	application.Stop(ctx)

	assert.ErrorIs(t, <-errChan, http.ErrServerClosed)
}
