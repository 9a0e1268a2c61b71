package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/khanhduong/smartresume/internal/application/usecase/auth"
	"github.com/khanhduong/smartresume/internal/domain/user"
)

const refreshKeyPrefix = "refresh:"

// redisTokenStore keeps refresh tokens in Redis with a TTL. Exchange
// deletes the key, so a refresh token is single-use.
type redisTokenStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisTokenStore(rdb *redis.Client, ttl time.Duration) auth.TokenStore {
	return &redisTokenStore{rdb: rdb, ttl: ttl}
}

type storedIdentity struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

func (s *redisTokenStore) Store(ctx context.Context, token string, u *user.User) error {
	payload, err := json.Marshal(storedIdentity{UserID: u.ID.String(), Username: u.Username})
	if err != nil {
		return fmt.Errorf("cannot marshal token payload: %w", err)
	}
	return s.rdb.Set(ctx, refreshKeyPrefix+token, payload, s.ttl).Err()
}

func (s *redisTokenStore) Exchange(ctx context.Context, token string) (*user.User, error) {
	key := refreshKeyPrefix + token

	raw, err := s.rdb.GetDel(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, errors.New("refresh token not found")
		}
		return nil, fmt.Errorf("cannot read refresh token: %w", err)
	}

	var id storedIdentity
	if err := json.Unmarshal([]byte(raw), &id); err != nil {
		return nil, fmt.Errorf("cannot unmarshal token payload: %w", err)
	}

	u := &user.User{Username: id.Username}
	if err := u.ID.UnmarshalText([]byte(id.UserID)); err != nil {
		return nil, fmt.Errorf("corrupt user id in token payload: %w", err)
	}
	return u, nil
}
