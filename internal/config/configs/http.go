package configs

import "time"

// HTTP defines configuration for the matching API server. Port is usually
// all a deployment sets; the timeouts protect the server from slow clients
// and CORSOrigins lists the wizard frontends allowed to call it from a
// browser.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`

	// ReadTimeout bounds reading a whole request, body included.
	ReadTimeout time.Duration `env:"READ_TIMEOUT" envDefault:"10s"`

	// WriteTimeout bounds writing a response. Optimizing a mix for a large
	// inventory is the slowest call, so it is more generous than
	// ReadTimeout.
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"30s"`

	// ShutdownTimeout bounds the graceful shutdown. In-flight requests that
	// outlive it are cut off.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`

	// CORSOrigins is a comma separated list of origins allowed by CORS.
	// Empty allows any origin.
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:","`
}
