package redis

import "time"

type Config struct {
	ConnectionURL  string        `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"` // ConnectionURL in the form "redis://:password@localhost:6379/0".
	RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`             // RetryAttempts is the number of ping attempts before giving up.
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"2s"`            // RetryInterval is the pause between attempts.
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s"`          // ConnectTimeout bounds the whole connect loop.
	CartPrefix     string        `env:"REDIS_CART_PREFIX" envDefault:"cart:"`            // CartPrefix namespaces cart snapshot keys.
	CartTTL        time.Duration `env:"REDIS_CART_TTL" envDefault:"720h"`                // CartTTL expires idle carts; zero keeps them forever.
	LockPrefix     string        `env:"REDIS_LOCK_PREFIX" envDefault:"checkout:lock:"`   // LockPrefix namespaces checkout guard keys.
	LockTTL        time.Duration `env:"REDIS_LOCK_TTL" envDefault:"30s"`                 // LockTTL releases a stuck checkout guard.
}
