package server

// DefaultPort is the port the service listens on.
const DefaultPort = 8080

// HttpConfig is the listener configuration. An empty host binds
// all interfaces, port 0 picks an ephemeral port.
type HttpConfig struct {
	Host string
	Port int
	H2c  bool
}

// DefaultHttpConfig returns the configuration binding all
// interfaces on DefaultPort.
func DefaultHttpConfig() HttpConfig {
	return HttpConfig{
		Host: "",
		Port: DefaultPort,
	}
}
