package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"pickup/core/config"
	"pickup/core/constants"
	"pickup/core/logger"

	"github.com/hibiken/asynq"
)

// Enqueuer is what services depend on; tests swap in a recorder.
type Enqueuer interface {
	Enqueue(ctx context.Context, taskType string, payload any) error
}

type AsynqQueue struct {
	client *asynq.Client
}

func redisOpt(cfg config.RedisConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}
}

func NewAsynqQueue(cfg config.RedisConfig) *AsynqQueue {
	return &AsynqQueue{client: asynq.NewClient(redisOpt(cfg))}
}

func (q *AsynqQueue) Enqueue(ctx context.Context, taskType string, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s payload: %w", taskType, err)
	}
	info, err := q.client.EnqueueContext(ctx, asynq.NewTask(taskType, raw), asynq.Queue(constants.QueueDefault), asynq.MaxRetry(3))
	if err != nil {
		return err
	}
	logger.Debug("Queue:Enqueue", "type", taskType, "id", info.ID)
	return nil
}

func (q *AsynqQueue) Close() error {
	return q.client.Close()
}

// Worker runs registered handlers until Shutdown.
type Worker struct {
	server *asynq.Server
	mux    *asynq.ServeMux
}

func NewWorker(cfg config.RedisConfig, concurrency int) *Worker {
	srv := asynq.NewServer(redisOpt(cfg), asynq.Config{
		Concurrency: concurrency,
		Queues:      map[string]int{constants.QueueDefault: 1},
	})
	return &Worker{server: srv, mux: asynq.NewServeMux()}
}

// Handle decodes the task payload into T before calling fn.
func Handle[T any](w *Worker, taskType string, fn func(ctx context.Context, payload T) error) {
	w.mux.HandleFunc(taskType, func(ctx context.Context, t *asynq.Task) error {
		var payload T
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return fmt.Errorf("%w: %v", asynq.SkipRetry, err)
		}
		return fn(ctx, payload)
	})
}

func (w *Worker) Start() error {
	return w.server.Start(w.mux)
}

func (w *Worker) Shutdown() {
	w.server.Shutdown()
}

// Noop drops every task. Used when redis is not configured.
type Noop struct{}

func (Noop) Enqueue(_ context.Context, taskType string, _ any) error {
	logger.Debug("Queue:Noop", "type", taskType)
	return nil
}
