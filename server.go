package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"socialnet/api/handlers"
	"socialnet/api/middleware"
	"socialnet/api/routes"
	"socialnet/config"
	"socialnet/services"
	"socialnet/store"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "config.yaml", "Path to the configuration file")
	flag.Parse()

	if err := config.LoadConfig(configPath); err != nil {
		panic("Failed to load configuration: " + err.Error())
	}
	log.Println("Starting server...")

	st := store.New()
	handlers.Init(st)

	ctx := context.Background()

	// Redis опционален: без него нет сессий и кеша ленты
	if err := services.InitRedis(); err != nil {
		log.Printf("WARNING: Redis unavailable, sessions disabled: %v", err)
	} else {
		services.QueueServiceInstance = services.NewQueueService(services.NewFeedCache(st))
		services.QueueServiceInstance.StartWorkers(ctx)
	}

	// RabbitMQ опционален: без него push-события уходят напрямую в WebSocket
	if err := services.InitRabbitMQ(); err != nil {
		log.Printf("WARNING: RabbitMQ unavailable, falling back to direct push: %v", err)
	} else {
		if err := services.StartFeedEventConsumer(ctx, "feed_push_queue"); err != nil {
			log.Printf("WARNING: failed to start feed consumer: %v", err)
		}
		defer services.CloseRabbitMQ()
	}

	router := gin.Default()
	router.Use(gin.Recovery())
	router.Use(middleware.PrometheusMiddleware())

	routes.PublicApi(router, st)

	addr := fmt.Sprintf("%s:%d", config.AppConfig.Backend.Host, config.AppConfig.Backend.Port)
	if err := router.Run(addr); err != nil {
		panic(err)
	}
}
