package configs

import "time"

// Redis configures the optional publisher inventory cache. When Enabled is
// false the service reads the inventory straight from PostgreSQL and the
// remaining fields are ignored.
type Redis struct {
	// Enabled turns the read-through cache on.
	Enabled bool `env:"ENABLED" envDefault:"false"`

	// Addr is the host:port of the Redis server.
	Addr string `env:"ADDR" envDefault:"localhost:6379"`

	// Password authenticates against Redis. Empty disables AUTH.
	Password string `env:"PASSWORD"`

	// DB selects the logical Redis database.
	DB int `env:"DB" envDefault:"0"`

	// TTL is how long a city's inventory stays cached. The seed command
	// invalidates entries explicitly, so a long TTL only delays edits made
	// outside it.
	TTL time.Duration `env:"TTL" envDefault:"5m"`
}
