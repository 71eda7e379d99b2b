package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// The auth allow-list keeps a hash of every live token keyed by role and
// subject. Login writes it, the auth middlewares verify against it, and
// revoke/logout deletes it so stolen tokens die with the session.

func authCacheKey(role, subject string) string {
	return AuthCachePrefix + role + ":" + subject
}

// SaveSessionToken stores the hash of a freshly issued token with a TTL.
func SaveSessionToken(client *redis.Client, role, subject, token string, ttl time.Duration) error {
	ctx := context.Background()
	if err := client.Set(ctx, authCacheKey(role, subject), HashToken(token), ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session token: %w", err)
	}
	return nil
}

// VerifySessionToken reports whether the presented token matches the stored
// hash for this role/subject. A missing key means the session was revoked or
// expired.
func VerifySessionToken(client *redis.Client, role, subject, token string) (bool, error) {
	ctx := context.Background()
	stored, err := client.Get(ctx, authCacheKey(role, subject)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read session token: %w", err)
	}
	return stored == HashToken(token), nil
}

// RevokeSessionToken removes the stored token hash, ending the session.
func RevokeSessionToken(client *redis.Client, role, subject string) error {
	ctx := context.Background()
	return client.Del(ctx, authCacheKey(role, subject)).Err()
}
