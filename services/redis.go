package services

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"

	"socialnet/config"
)

// RedisClient - общий клиент Redis для сессий и кеша ленты.
// nil означает работу без Redis: сессии тогда недоступны, лента считается
// напрямую из хранилища.
var RedisClient *redis.Client

func InitRedis() error {
	if config.AppConfig == nil {
		return fmt.Errorf("AppConfig is not loaded")
	}

	redisConfig := config.AppConfig.Redis
	RedisClient = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", redisConfig.Host, redisConfig.Port),
		Password: redisConfig.Password,
		DB:       redisConfig.DB,
	})

	// Тест соединения
	if _, err := RedisClient.Ping(context.Background()).Result(); err != nil {
		RedisClient = nil
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return nil
}

func CloseRedis() error {
	if RedisClient != nil {
		return RedisClient.Close()
	}
	return nil
}
