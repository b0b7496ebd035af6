package storefront

import (
	"time"

	"github.com/pieglobal/storefront/pkg/apiclient"
	"github.com/pieglobal/storefront/pkg/cookie"
	"github.com/pieglobal/storefront/pkg/httpserver"
	"github.com/pieglobal/storefront/pkg/logger"
	"github.com/pieglobal/storefront/pkg/mongo"
	"github.com/pieglobal/storefront/pkg/pg"
	"github.com/pieglobal/storefront/pkg/ratelimiter"
	"github.com/pieglobal/storefront/pkg/redis"
	"github.com/pieglobal/storefront/pkg/visitor"
)

// Cart store drivers accepted by CART_STORE.
const (
	StoreMemory   = "memory"
	StoreRedis    = "redis"
	StorePostgres = "postgres"
	StoreMongo    = "mongo"
)

// Config is the whole process configuration, read from the environment.
type Config struct {
	CartStore        string        `env:"CART_STORE" envDefault:"memory"`       // CartStore selects memory, redis, postgres or mongo.
	RequestTimeout   time.Duration `env:"REQUEST_TIMEOUT" envDefault:"20s"`     // RequestTimeout bounds every API request.
	ReadinessTimeout time.Duration `env:"READINESS_TIMEOUT" envDefault:"3s"`    // ReadinessTimeout bounds /readyz checks.
	PruneInterval    time.Duration `env:"CART_PRUNE_INTERVAL" envDefault:"1h"`  // PruneInterval schedules expired cart cleanup on postgres.
	RateLimitEnabled bool          `env:"RATE_LIMIT_ENABLED" envDefault:"true"` // RateLimitEnabled throttles checkout and contact messages.

	Logger   logger.Config
	HTTP     httpserver.Config
	API      apiclient.Config
	Cookie   cookie.Config
	Visitor  visitor.Config
	Redis    redis.Config
	Postgres pg.Config
	Mongo    mongo.Config
	Limits   ratelimiter.Config
}
