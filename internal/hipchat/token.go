package hipchat

import (
	"math/rand"
	"os"
	"strings"
)

const TokenEnv = "HIPCHAT_API_TOKEN"

// TokenSource yields the API token for one call. An empty token means
// notifications are logged instead of sent.
type TokenSource interface {
	Token() string
}

type TokenFunc func() string

func (f TokenFunc) Token() string { return f() }

// EnvTokenSource reads the token from the environment on every call. The
// variable may hold a comma-separated pool of personal tokens; one is picked at
// random per call to spread requests over the API rate limit of each token.
type EnvTokenSource struct {
	Key string
}

func (s EnvTokenSource) Token() string {
	key := s.Key
	if key == "" {
		key = TokenEnv
	}
	return PickToken(os.Getenv(key))
}

// PickToken returns one trimmed, non-empty entry of a comma-separated list.
func PickToken(raw string) string {
	var pool []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			pool = append(pool, part)
		}
	}
	switch len(pool) {
	case 0:
		return ""
	case 1:
		return pool[0]
	default:
		return pool[rand.Intn(len(pool))]
	}
}
