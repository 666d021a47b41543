package httpauth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrMissingKey indicates the guard was built without a signing key.
	ErrMissingKey = errors.New("httpauth: signing key is required")
)

// Config configures the bearer-token guard.
type Config struct {
	// Key is the HMAC signing key. Required.
	Key []byte

	// Issuer, when set, is required to match the token's iss claim.
	Issuer string

	// Audience, when set, is required to match the token's aud claim.
	Audience string
}

// Guard validates bearer tokens on incoming requests.
type Guard struct {
	config Config
	parser *jwt.Parser
}

// New creates a Guard.
func New(config Config) (*Guard, error) {
	if len(config.Key) == 0 {
		return nil, ErrMissingKey
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"}),
	}
	if config.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(config.Issuer))
	}
	if config.Audience != "" {
		opts = append(opts, jwt.WithAudience(config.Audience))
	}

	return &Guard{
		config: config,
		parser: jwt.NewParser(opts...),
	}, nil
}

// Middleware rejects requests without a valid bearer token with 401.
func (g *Guard) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenString == "" {
			unauthorized(w, "missing bearer token")
			return
		}

		token, err := g.parser.Parse(strings.TrimSpace(tokenString), func(*jwt.Token) (any, error) {
			return g.config.Key, nil
		})
		if err != nil || !token.Valid {
			unauthorized(w, "invalid token")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="vitalsign"`)
	http.Error(w, msg, http.StatusUnauthorized)
}
