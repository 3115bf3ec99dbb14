package asynqserver

import (
	"github.com/cityinfo/backend/internal/config"
	"github.com/cityinfo/backend/internal/queue/processor"
	"github.com/cityinfo/backend/internal/queue/task"
	"github.com/cityinfo/backend/internal/worker"

	"github.com/hibiken/asynq"
)

func New(cfg config.Queue, workers *worker.Workers) (*asynq.Server, *asynq.ServeMux) {
	mux, queues := getQueues(workers)
	srv := asynq.NewServer(
		RedisOptions(cfg),
		asynq.Config{
			Concurrency: 10,
			LogLevel:    asynq.ErrorLevel,
			Queues:      queues,
		},
	)

	return srv, mux
}

func RedisOptions(cfg config.Queue) asynq.RedisConnOpt {
	return asynq.RedisClientOpt{Addr: cfg.RedisAddr, Password: cfg.Password}
}

func getQueues(workers *worker.Workers) (*asynq.ServeMux, map[string]int) {
	mux := asynq.NewServeMux()
	mux.Handle(task.PointOfInterestDeletedTaskName, processor.NewPointOfInterestDeletedProcessor(workers))
	queues := map[string]int{
		task.PointOfInterestDeletedQueueName: 1,
	}
	return mux, queues
}
