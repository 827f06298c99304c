package app

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/RoyPushkar-kun/Library-Management-System/config"
	"github.com/RoyPushkar-kun/Library-Management-System/db"
)

// handler-side aliases
type Ctx = gin.Context
type H = gin.H

// App aggregates the process-wide dependencies.
type App struct {
	Router *gin.Engine
	DB     *gorm.DB
	RDB    *redis.Client // nil when REDIS_ADDR is unset
	Store  *db.Store
	Config config.Config
}

func MustNew() *App {
	cfg := config.Load()

	dbConn := db.ConnectDB(cfg)

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPwd, DB: 0})
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatalf("redis: %v", err)
		}
	} else {
		log.Println("REDIS_ADDR not set, report cache disabled")
	}

	r := gin.Default()
	useCORS(r, cfg.WebOrigin)

	return &App{
		Router: r,
		DB:     dbConn,
		RDB:    rdb,
		Store:  db.NewStore(dbConn),
		Config: cfg,
	}
}

func (a *App) Close() {
	if a.RDB != nil {
		_ = a.RDB.Close()
	}
	if sqlDB, err := a.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
