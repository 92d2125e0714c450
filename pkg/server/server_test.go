package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mchmarny/jellmachine/pkg/metric"
)

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(b)
}

func TestServeAndShutdown(t *testing.T) {
	reg := prometheus.NewRegistry()
	metric.NewCounterWithRegistry(reg, "menu_events_total", "test", "id").Increment("reload")

	srv := New(
		WithPort(0),
		WithShutdownTimeout(time.Second),
		WithSimpleHealth(),
		WithMetrics(reg),
		WithHandler("/hello", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("hi"))
		})),
	)
	assert.False(t, srv.IsRunning())
	assert.Empty(t, srv.Addr())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx) }()

	require.Eventually(t, srv.IsRunning, 3*time.Second, 10*time.Millisecond)
	base := "http://" + srv.Addr()

	code, body := get(t, base+"/healthz")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body)

	code, body = get(t, base+"/metrics")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, `jellmachine_menu_events_total{id="reload"} 1`)

	code, body = get(t, base+"/hello")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "hi", body)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down")
	}
	assert.False(t, srv.IsRunning())
}

func TestServeBindFailure(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	srv := New(WithPort(l.Addr().(*net.TCPAddr).Port))
	err = srv.Serve(context.Background())
	assert.Error(t, err)
	assert.False(t, srv.IsRunning())
}
