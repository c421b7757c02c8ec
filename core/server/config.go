package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	ApiKey string `mapstructure:"api_key" default:""`
	// Workers is the number of subjects reconciled concurrently during
	// a full population run.
	Workers int `mapstructure:"workers" default:"4"`
}

// WorkerCount returns the configured concurrency degree, falling back to a
// single worker when the value is unset or nonsense.
func (c Config) WorkerCount() int {
	if c.Workers < 1 {
		return 1
	}
	return c.Workers
}
