package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// AccessLogger writes one plain line per accepted request. Lines
// carry no timestamp, level or fields, only the message itself.
type AccessLogger struct {
	log *zap.Logger
}

// NewAccessLogger creates an access logger writing to ws.
func NewAccessLogger(ws zapcore.WriteSyncer) *AccessLogger {
	encoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		MessageKey: "msg",
		LineEnding: zapcore.DefaultLineEnding,
	})

	core := zapcore.NewCore(encoder, ws, zapcore.InfoLevel)

	return &AccessLogger{log: zap.New(core)}
}

// NewStdoutAccessLogger creates an access logger writing to stdout.
func NewStdoutAccessLogger() *AccessLogger {
	return NewAccessLogger(zapcore.Lock(os.Stdout))
}

// Request logs a request received from the given peer address.
func (a *AccessLogger) Request(peer string) {
	a.log.Info("Received request from " + peer)
}

func (a *AccessLogger) Sync() error {
	return a.log.Sync()
}
