package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	FEED_INVALIDATE_QUEUE = "feed_invalidate_queue"
	QUEUE_WORKER_COUNT    = 5
)

// FeedInvalidateTask - задача сброса кеша лент после мутации контента автора.
type FeedInvalidateTask struct {
	AuthorID int64  `json:"author_id"`
	Action   string `json:"action"` // "post", "like", "comment", "friend", "delete"
}

// QueueService разгружает обработчики запросов: инвалидация лент выполняется
// воркерами из очереди в Redis, а не в хендлере. При недоступной очереди
// вызывающий обязан инвалидировать синхронно.
type QueueService struct {
	feedCache *FeedCache
}

func NewQueueService(fc *FeedCache) *QueueService {
	return &QueueService{feedCache: fc}
}

// QueueServiceInstance инициализируется при старте сервера вместе с Redis.
var QueueServiceInstance *QueueService

// StartWorkers запускает воркеры обработки очереди.
func (qs *QueueService) StartWorkers(ctx context.Context) {
	for i := 0; i < QUEUE_WORKER_COUNT; i++ {
		go qs.worker(ctx, i)
	}
}

func (qs *QueueService) worker(ctx context.Context, workerID int) {
	log.Printf("Feed invalidate worker %d started", workerID)

	for {
		select {
		case <-ctx.Done():
			log.Printf("Feed invalidate worker %d stopping", workerID)
			return
		default:
			// Блокирующее чтение задачи с таймаутом
			result, err := RedisClient.BLPop(ctx, 5*time.Second, FEED_INVALIDATE_QUEUE).Result()
			if err != nil {
				if err == redis.Nil {
					continue
				}
				if ctx.Err() != nil {
					return
				}
				log.Printf("ERROR: worker %d failed to pop task: %v", workerID, err)
				time.Sleep(time.Second)
				continue
			}
			if len(result) < 2 {
				continue
			}

			var task FeedInvalidateTask
			if err := json.Unmarshal([]byte(result[1]), &task); err != nil {
				log.Printf("ERROR: worker %d got malformed task: %v", workerID, err)
				continue
			}
			qs.feedCache.InvalidateForAuthor(ctx, task.AuthorID)
		}
	}
}

// EnqueueInvalidate ставит задачу сброса лент в очередь.
func (qs *QueueService) EnqueueInvalidate(ctx context.Context, authorID int64, action string) error {
	if RedisClient == nil {
		return fmt.Errorf("redis not available")
	}
	data, err := json.Marshal(FeedInvalidateTask{AuthorID: authorID, Action: action})
	if err != nil {
		return err
	}
	return RedisClient.RPush(ctx, FEED_INVALIDATE_QUEUE, data).Err()
}

// GetQueueStats возвращает длину очереди.
func (qs *QueueService) GetQueueStats(ctx context.Context) (int64, error) {
	if RedisClient == nil {
		return 0, fmt.Errorf("redis not available")
	}
	return RedisClient.LLen(ctx, FEED_INVALIDATE_QUEUE).Result()
}
