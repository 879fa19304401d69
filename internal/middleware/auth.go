package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"taskscribe/internal/model"
	"taskscribe/pkg/response"
)

var errTokenRejected = errors.New("identity provider rejected token")

// authVerifier resolves bearer tokens against the hosted identity provider's
// userinfo endpoint.
type authVerifier struct {
	userInfoURL string
	apiKey      string
	httpClient  *http.Client
	cache       *expirable.LRU[string, model.Scope]
}

type userInfoResp struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

func (v *authVerifier) verify(ctx context.Context, token string) (model.Scope, error) {
	if sc, ok := v.cache.Get(token); ok {
		return sc, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.userInfoURL, nil)
	if err != nil {
		return model.Scope{}, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if v.apiKey != "" {
		req.Header.Set("apikey", v.apiKey)
	}

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return model.Scope{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return model.Scope{}, fmt.Errorf("%w: status %d", errTokenRejected, resp.StatusCode)
	}

	var info userInfoResp
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return model.Scope{}, err
	}
	if info.ID == "" {
		return model.Scope{}, errTokenRejected
	}

	sc := model.Scope{UserID: info.ID, Email: info.Email}
	v.cache.Add(token, sc)
	return sc, nil
}

// Auth requires a valid bearer token and stores the resolved Scope on the
// gin context for handlers.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearer(c.GetHeader("Authorization"))
		if token == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		sc, err := m.auth.verify(c.Request.Context(), token)
		if err != nil {
			m.l.Warnf(c.Request.Context(), "middleware.Auth verify: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		SetScope(c, sc)
		c.Next()
	}
}

func extractBearer(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
