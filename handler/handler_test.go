package handler

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/lambda-feedback/sampleapp/util/logging"
)

func newTestHandler(buf *bytes.Buffer) *RequestHandler {
	return &RequestHandler{
		access: logging.NewAccessLogger(zapcore.AddSync(buf)),
		log:    zap.NewNop(),
	}
}

func TestServeHTTP_Success(t *testing.T) {
	var buf bytes.Buffer
	handler := newTestHandler(&buf)

	req := httptest.NewRequest(http.MethodGet, "/anything", nil)
	req.RemoteAddr = "127.0.0.1:51234"
	req.Header.Set("X-Custom", "value")

	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	res := w.Result()
	defer res.Body.Close()

	body, _ := io.ReadAll(res.Body)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Empty(t, body)
	assert.Empty(t, res.Header.Get("Content-Type"))
	assert.Equal(t, "Received request from 127.0.0.1\n", buf.String())
}

func TestServeHTTP_IgnoresRequest(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{"post with body", http.MethodPost, "/submit", `{"example": "value"}`},
		{"put", http.MethodPut, "/a/b/c", "plain text"},
		{"delete", http.MethodDelete, "/", ""},
		{"patch", http.MethodPatch, "/x?y=z", "\x00\x01\x02"},
		{"options", http.MethodOptions, "*", ""},
		{"custom method", "PURGE", "/cache", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			handler := newTestHandler(&buf)

			req := httptest.NewRequest(tt.method, "/", strings.NewReader(tt.body))
			req.URL.Path = tt.path
			req.RemoteAddr = "10.1.2.3:4000"

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Zero(t, w.Body.Len())
			assert.Equal(t, "Received request from 10.1.2.3\n", buf.String())
		})
	}
}

func TestServeHTTP_OneLinePerRequest(t *testing.T) {
	var buf bytes.Buffer
	handler := newTestHandler(&buf)

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "192.168.0.1:1000"
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}

	assert.Equal(t, 3, strings.Count(buf.String(), "Received request from 192.168.0.1\n"))
}

func TestServeHTTP_DebugLog(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)

	var buf bytes.Buffer
	handler := &RequestHandler{
		access: logging.NewAccessLogger(zapcore.AddSync(&buf)),
		log:    zap.New(core),
	}

	req := httptest.NewRequest(http.MethodPost, "/path", nil)
	req.RemoteAddr = "127.0.0.1:9999"

	handler.ServeHTTP(httptest.NewRecorder(), req)

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "/path", fields["path"])
	assert.Equal(t, http.MethodPost, fields["method"])
	assert.Equal(t, "127.0.0.1:9999", fields["remote"])
}

func TestPeerAddress(t *testing.T) {
	tests := []struct {
		remote   string
		expected string
	}{
		{"127.0.0.1:8080", "127.0.0.1"},
		{"[::1]:51234", "::1"},
		{"[::ffff:127.0.0.1]:1", "::ffff:127.0.0.1"},
		{"203.0.113.7", "203.0.113.7"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.remote, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote

			assert.Equal(t, tt.expected, PeerAddress(req))
		})
	}
}
