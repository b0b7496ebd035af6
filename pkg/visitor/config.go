package visitor

import "time"

type Config struct {
	CookieName string        `env:"VISITOR_COOKIE_NAME" envDefault:"cart_token"` // CookieName is the signed cookie holding the token.
	Header     string        `env:"VISITOR_HEADER" envDefault:"X-Cart-Token"`    // Header is accepted in place of the cookie.
	TTL        time.Duration `env:"VISITOR_TTL" envDefault:"720h"`               // TTL is refreshed on every request that carries the token.
}
