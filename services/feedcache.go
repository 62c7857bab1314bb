package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"socialnet/models"
	"socialnet/store"
)

var feedCacheLookups = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "feed_cache_lookups_total",
		Help: "Feed cache lookups by outcome",
	},
	[]string{"outcome"},
)

const (
	FEED_KEY_PREFIX = "user_feed:"    // Префикс ключей кеша ленты в Redis
	FEED_CACHE_TTL  = 1 * time.Hour   // TTL кеша ленты
)

// FeedCache - кеш собранных лент поверх хранилища. Лента кешируется целиком
// одним JSON-блобом на пользователя: записи обогащены флагом "лайкнул ли
// смотрящий", поэтому кешировать посты по отдельности и шарить между лентами
// нельзя. Каждая мутация, затрагивающая ленту (пост, лайк, комментарий,
// подтверждение дружбы, удаление пользователя), обязана инвалидировать ключи
// затронутых пользователей - см. Invalidate и InvalidateForAuthor.
type FeedCache struct {
	store store.SocialStore
}

func NewFeedCache(st store.SocialStore) *FeedCache {
	return &FeedCache{store: st}
}

// GetFeed возвращает ленту пользователя: из кеша, а при промахе или
// недоступном Redis - пересчётом из хранилища с последующим кешированием.
func (fc *FeedCache) GetFeed(ctx context.Context, userID int64) []models.FeedPost {
	if RedisClient == nil {
		return fc.store.GetPostsForFeed(userID)
	}

	key := feedKey(userID)
	val, err := RedisClient.Get(ctx, key).Result()
	if err == nil {
		var posts []models.FeedPost
		if jsonErr := json.Unmarshal([]byte(val), &posts); jsonErr == nil {
			feedCacheLookups.WithLabelValues("hit").Inc()
			return posts
		}
		// Битый кеш - сносим и пересчитываем
		RedisClient.Del(ctx, key)
	} else if err != redis.Nil {
		log.Printf("ERROR: feed cache read failed for user %d: %v", userID, err)
	}
	feedCacheLookups.WithLabelValues("miss").Inc()

	posts := fc.store.GetPostsForFeed(userID)
	if data, jsonErr := json.Marshal(posts); jsonErr == nil {
		if setErr := RedisClient.Set(ctx, key, data, FEED_CACHE_TTL).Err(); setErr != nil {
			log.Printf("ERROR: feed cache write failed for user %d: %v", userID, setErr)
		}
	}
	return posts
}

// Invalidate сбрасывает кеш лент перечисленных пользователей.
func (fc *FeedCache) Invalidate(ctx context.Context, userIDs ...int64) {
	if RedisClient == nil || len(userIDs) == 0 {
		return
	}
	keys := make([]string, len(userIDs))
	for i, id := range userIDs {
		keys[i] = feedKey(id)
	}
	if err := RedisClient.Del(ctx, keys...).Err(); err != nil {
		log.Printf("ERROR: feed cache invalidation failed: %v", err)
	}
}

// InvalidateForAuthor сбрасывает ленты, в которых виден контент автора:
// его собственную и ленты всех подтверждённых друзей.
func (fc *FeedCache) InvalidateForAuthor(ctx context.Context, authorID int64) {
	ids := []int64{authorID}
	for _, friend := range fc.store.GetFriends(authorID) {
		ids = append(ids, friend.ID)
	}
	fc.Invalidate(ctx, ids...)
}

func feedKey(userID int64) string {
	return fmt.Sprintf("%s%d", FEED_KEY_PREFIX, userID)
}
