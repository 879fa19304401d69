package middleware

import (
	"net/http"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"taskscribe/config"
	"taskscribe/internal/model"
	"taskscribe/pkg/log"
)

const defaultCacheTTL = 5 * time.Minute

type Middleware struct {
	l    log.Logger
	auth *authVerifier
}

// New creates the middleware set. Verified bearer tokens are cached for
// cfg.CacheTTL so the identity provider is not hit on every request.
func New(l log.Logger, cfg config.AuthConfig) Middleware {
	ttl := defaultCacheTTL
	if d, err := time.ParseDuration(cfg.CacheTTL); err == nil && d > 0 {
		ttl = d
	}

	return Middleware{
		l: l,
		auth: &authVerifier{
			userInfoURL: cfg.UserInfoURL,
			apiKey:      cfg.APIKey,
			httpClient:  &http.Client{Timeout: 10 * time.Second},
			cache:       expirable.NewLRU[string, model.Scope](1024, nil, ttl),
		},
	}
}
