package apiclient

import "time"

type Config struct {
	BaseURL   string        `env:"API_URL" envDefault:"http://localhost:8000/api/"` // BaseURL is the REST API root, e.g. "https://api.example.com/api/".
	Timeout   time.Duration `env:"API_TIMEOUT" envDefault:"15s"`                    // Timeout bounds every request, including body read.
	CSRFToken string        `env:"API_CSRF_TOKEN"`                                  // CSRFToken is sent as X-CSRFToken when set.
	UserAgent string        `env:"API_USER_AGENT" envDefault:"storefront/1.0"`      // UserAgent identifies this service to the API.
}
