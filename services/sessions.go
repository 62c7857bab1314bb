package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	SESSION_KEY_PREFIX = "session:"      // Префикс ключей сессий в Redis
	SESSION_TTL        = 7 * 24 * time.Hour // Время жизни сессии
)

// CreateSession выпускает случайный токен и сохраняет его в Redis с TTL.
func CreateSession(ctx context.Context, userID int64) (string, error) {
	if RedisClient == nil {
		return "", fmt.Errorf("redis not available")
	}

	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", err
	}
	token := hex.EncodeToString(tokenBytes)

	key := SESSION_KEY_PREFIX + token
	if err := RedisClient.Set(ctx, key, userID, SESSION_TTL).Err(); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}
	return token, nil
}

// ResolveSession возвращает id пользователя по токену.
// Неизвестный или истёкший токен - (0, nil), это не ошибка.
func ResolveSession(ctx context.Context, token string) (int64, error) {
	if RedisClient == nil {
		return 0, fmt.Errorf("redis not available")
	}

	val, err := RedisClient.Get(ctx, SESSION_KEY_PREFIX+token).Result()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to resolve session: %w", err)
	}

	userID, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("corrupted session value: %w", err)
	}
	return userID, nil
}

// DeleteSession удаляет сессию. Отсутствие токена не ошибка.
func DeleteSession(ctx context.Context, token string) error {
	if RedisClient == nil {
		return fmt.Errorf("redis not available")
	}
	return RedisClient.Del(ctx, SESSION_KEY_PREFIX+token).Err()
}
