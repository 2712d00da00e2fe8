package queue

import (
	"time"

	"github.com/hibiken/asynq"

	"book-catalog/internal/shared"
	"book-catalog/pkg/logger"
)

type Scheduler struct {
	scheduler *asynq.Scheduler
}

func NewScheduler(redisAddress string) *Scheduler {
	scheduler := asynq.NewScheduler(
		asynq.RedisClientOpt{Addr: redisAddress},
		&asynq.SchedulerOpts{
			Location: time.UTC,
			LogLevel: asynq.InfoLevel,
		},
	)

	return &Scheduler{scheduler: scheduler}
}

// RegisterCatalogJobs registers all recurring catalog jobs.
func (s *Scheduler) RegisterCatalogJobs() error {
	return s.registerRefreshCatalogCacheJob()
}

// ================================================
// JOB: Refresh catalog list cache (every 5 minutes)
// ================================================
func (s *Scheduler) registerRefreshCatalogCacheJob() error {
	task := asynq.NewTask(shared.TypeRefreshCatalogCache, nil)

	_, err := s.scheduler.Register(
		"*/5 * * * *",
		task,
		asynq.Queue(shared.QueueCatalog),
		asynq.MaxRetry(1),
		asynq.Timeout(1*time.Minute),
	)

	if err != nil {
		logger.Error("Failed to register RefreshCatalogCache job", err)
		return err
	}

	return nil
}

func (s *Scheduler) Start() error {
	return s.scheduler.Run()
}

func (s *Scheduler) Shutdown() {
	s.scheduler.Shutdown()
}
