package mongo

import "time"

type Config struct {
	ConnectionURL   string        `env:"MONGODB_URL" envDefault:"mongodb://localhost:27017"` // ConnectionURL is the mongodb:// URI.
	Database        string        `env:"MONGODB_DATABASE" envDefault:"storefront"`           // Database holds the carts collection.
	CartCollection  string        `env:"MONGODB_CART_COLLECTION" envDefault:"carts"`         // CartCollection stores cart snapshots.
	CartTTL         time.Duration `env:"MONGODB_CART_TTL" envDefault:"720h"`                 // CartTTL drives the TTL index on updated_at; zero disables it.
	ConnectTimeout  time.Duration `env:"MONGODB_CONNECT_TIMEOUT" envDefault:"10s"`           // ConnectTimeout bounds each dial.
	MaxPoolSize     uint64        `env:"MONGODB_MAX_POOL_SIZE" envDefault:"50"`              // MaxPoolSize caps the connection pool.
	MinPoolSize     uint64        `env:"MONGODB_MIN_POOL_SIZE" envDefault:"1"`               // MinPoolSize keeps connections warm.
	MaxConnIdleTime time.Duration `env:"MONGODB_MAX_CONN_IDLE_TIME" envDefault:"300s"`       // MaxConnIdleTime closes idle connections.
	RetryAttempts   int           `env:"MONGODB_RETRY_ATTEMPTS" envDefault:"3"`              // RetryAttempts is the number of connect attempts.
	RetryInterval   time.Duration `env:"MONGODB_RETRY_INTERVAL" envDefault:"2s"`             // RetryInterval is the pause between attempts.
}
