package logging_test

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/lambda-feedback/sampleapp/util/logging"
)

func TestAccessLogger_Request(t *testing.T) {
	var buf bytes.Buffer
	log := logging.NewAccessLogger(zapcore.AddSync(&buf))

	log.Request("127.0.0.1")

	require.NoError(t, log.Sync())
	assert.Equal(t, "Received request from 127.0.0.1\n", buf.String())
}

func TestAccessLogger_Request_IPv6(t *testing.T) {
	var buf bytes.Buffer
	log := logging.NewAccessLogger(zapcore.AddSync(&buf))

	log.Request("::1")

	assert.Equal(t, "Received request from ::1\n", buf.String())
}

func TestAccessLogger_Request_Concurrent(t *testing.T) {
	var buf bytes.Buffer
	log := logging.NewAccessLogger(zapcore.Lock(zapcore.AddSync(&buf)))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			log.Request("10.0.0.1")
		}()
	}
	wg.Wait()

	lines := bytes.Split(bytes.TrimSuffix(buf.Bytes(), []byte("\n")), []byte("\n"))
	assert.Len(t, lines, 50)
	for _, line := range lines {
		assert.Equal(t, "Received request from 10.0.0.1", string(line))
	}
}
