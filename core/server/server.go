package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pickup/core/cache"
	"pickup/core/config"
	"pickup/core/constants"
	"pickup/core/database"
	"pickup/core/logger"
	"pickup/core/middleware"
	"pickup/core/queue"
	"pickup/core/storage"
	"pickup/core/utils"
	"pickup/modules/auth"
	"pickup/modules/event"
	eventEntity "pickup/modules/event/entity"
	"pickup/modules/group"
	"pickup/modules/notification"
	"pickup/modules/profile"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// Deps are the process-wide collaborators the modules share.
type Deps struct {
	DB      database.IDatabase
	Cache   cache.Cache
	Queue   queue.Enqueuer
	Tokens  *utils.TokenIssuer
	Objects storage.ObjectStore
}

// NewEcho registers every module under /api/v1. The second return value
// handles the event:created task and is attached to the worker by Run.
func NewEcho(deps Deps) (*echo.Echo, func(context.Context, eventEntity.CreatedTask) error) {
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(middleware.RequestID())
	e.Use(echomw.CORS())

	if deps.Objects == nil {
		deps.Objects = storage.Noop{}
	}
	mw := middleware.NewMiddleware(deps.Tokens, deps.Cache)
	v1 := e.Group("/api/v1")

	v1.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	profiles := profile.Init(v1, deps.DB, mw)
	auth.Init(v1, deps.DB, deps.Cache, deps.Tokens, profiles, mw)
	groups := group.Init(v1, deps.DB, deps.Cache, mw)
	events := event.Init(v1, deps.DB, deps.Cache, deps.Queue, profiles, mw)
	notifications := notification.Init(v1, deps.DB, groups, mw)

	onEventCreated := func(ctx context.Context, task eventEntity.CreatedTask) error {
		exists, err := events.HandleEventCreated(ctx, task)
		if err != nil || !exists {
			return err
		}
		if err := events.PublishICS(ctx, deps.Objects, uuid.MustParse(task.EventID)); err != nil {
			logger.Error("Server:PublishICS", err, "event_id", task.EventID)
		}
		return notifications.NotifyEventCreated(ctx, task)
	}
	return e, onEventCreated
}

func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger.Init(cfg.Log.Level, cfg.Log.Format)

	db, err := database.InitDB(cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := db.EnsureSchema(context.Background()); err != nil {
		return err
	}

	redisCache, err := cache.NewRedisCache(cfg.Redis)
	if err != nil {
		return err
	}
	defer redisCache.Close()

	tasks := queue.NewAsynqQueue(cfg.Redis)
	defer tasks.Close()

	var objects storage.ObjectStore = storage.Noop{}
	if cfg.Storage.Bucket != "" {
		s3Store, err := storage.NewS3Store(cfg.Storage)
		if err != nil {
			return err
		}
		objects = s3Store
	}

	e, onEventCreated := NewEcho(Deps{
		DB:      db,
		Cache:   redisCache,
		Queue:   tasks,
		Tokens:  utils.NewTokenIssuer(cfg.JWT.Secret, cfg.JWT.Issuer, constants.AccessTokenTTL),
		Objects: objects,
	})

	worker := queue.NewWorker(cfg.Redis, 5)
	queue.Handle(worker, constants.TaskEventCreated, onEventCreated)
	if err := worker.Start(); err != nil {
		return fmt.Errorf("start worker: %w", err)
	}
	defer worker.Shutdown()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	go func() {
		logger.Info("Server starting", "addr", addr, "env", cfg.Env)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server:Start", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Server shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(ctx)
}
