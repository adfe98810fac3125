package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// releaseScript deletes the key only if it still holds the caller's token,
// so an expired guard re-acquired by someone else is left alone.
var releaseScript = goredis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// TipGuard implements ports.TipGuard using Redis SET NX.
type TipGuard struct {
	client *goredis.Client
	prefix string
}

// NewTipGuard creates a new Redis-backed in-flight guard.
func NewTipGuard(client *goredis.Client) *TipGuard {
	return &TipGuard{
		client: client,
		prefix: "tipguard:",
	}
}

// Acquire marks key as in flight for at most ttl.
// Returns the release token and true if the guard was free.
func (g *TipGuard) Acquire(ctx context.Context, key string, ttl time.Duration) (string, bool, error) {
	token := uuid.New().String()
	result, err := g.client.SetArgs(ctx, g.prefix+key, token, goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Result()
	if err != nil {
		if err == goredis.Nil {
			return "", false, nil
		}
		return "", false, fmt.Errorf("redis tip guard acquire: %w", err)
	}
	return token, result == "OK", nil
}

// Release frees key if it is still held with token.
func (g *TipGuard) Release(ctx context.Context, key string, token string) error {
	if err := releaseScript.Run(ctx, g.client, []string{g.prefix + key}, token).Err(); err != nil {
		return fmt.Errorf("redis tip guard release: %w", err)
	}
	return nil
}
