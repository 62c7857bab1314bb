package handlers

import (
	"context"

	"socialnet/services"
	"socialnet/store"
)

// Store и FeedCache - зависимости обработчиков, задаются при старте сервера
// через Init (в тестах - напрямую на свежем in-memory хранилище).
var (
	Store     store.SocialStore
	FeedCache *services.FeedCache
)

func Init(st store.SocialStore) {
	Store = st
	FeedCache = services.NewFeedCache(st)
}

// invalidateFeeds сбрасывает кеш лент, затронутых контентом автора:
// через очередь, а при недоступной очереди - синхронно.
func invalidateFeeds(ctx context.Context, authorID int64, action string) {
	if services.QueueServiceInstance != nil && services.RedisClient != nil {
		if err := services.QueueServiceInstance.EnqueueInvalidate(ctx, authorID, action); err == nil {
			return
		}
	}
	FeedCache.InvalidateForAuthor(ctx, authorID)
}
