package otp

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func codeKey(phone string) string {
	return "otp:code:" + phone
}

func throttleKey(phone string) string {
	return "otp:throttle:" + phone
}

func (s *RedisStore) Save(ctx context.Context, phone, codeHash string, ttl time.Duration) error {
	return s.client.Set(ctx, codeKey(phone), codeHash, ttl).Err()
}

func (s *RedisStore) Get(ctx context.Context, phone string) (string, error) {
	val, err := s.client.Get(ctx, codeKey(phone)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrCodeNotFound
		}
		return "", err
	}
	return val, nil
}

func (s *RedisStore) Delete(ctx context.Context, phone string) error {
	return s.client.Del(ctx, codeKey(phone)).Err()
}

func (s *RedisStore) Throttle(ctx context.Context, phone string, window time.Duration) error {
	// SET NX — и проверка, и установка окна одним вызовом.
	ok, err := s.client.SetNX(ctx, throttleKey(phone), "1", window).Result()
	if err != nil {
		return err
	}
	if !ok {
		return ErrThrottled
	}
	return nil
}
