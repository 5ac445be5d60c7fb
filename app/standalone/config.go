package standalone

import "github.com/lambda-feedback/sampleapp/internal/server"

type Config struct {
	// H2c enables the HTTP/2 cleartext upgrade.
	H2c bool `conf:"h2c"`
}

// HttpConfig returns the listener configuration. Host and port
// are fixed, only the protocol options are configurable.
func (c Config) HttpConfig() server.HttpConfig {
	config := server.DefaultHttpConfig()
	config.H2c = c.H2c
	return config
}
