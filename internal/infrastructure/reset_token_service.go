package infrastructure

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// ResetTokenService keeps single-use password reset tokens in Redis, keyed by
// token with the owning user id as value.
type ResetTokenService struct {
	client *redis.Client
}

func NewResetTokenService(addr, password string, db int) *ResetTokenService {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	return &ResetTokenService{client: client}
}

func (s *ResetTokenService) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *ResetTokenService) Set(ctx context.Context, token, userID string, ttl time.Duration) error {
	return s.client.Set(ctx, resetKey(token), userID, ttl).Err()
}

// Get returns ("", nil) for an unknown or expired token.
func (s *ResetTokenService) Get(ctx context.Context, token string) (string, error) {
	userID, err := s.client.Get(ctx, resetKey(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", err
	}
	return userID, nil
}

func (s *ResetTokenService) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, resetKey(token)).Err()
}

func resetKey(token string) string {
	return fmt.Sprintf("reset:%s", token)
}
