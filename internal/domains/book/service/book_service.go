package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"book-catalog/internal/domains/book/model"
	"book-catalog/internal/domains/book/repository"
	"book-catalog/internal/shared"
	"book-catalog/pkg/logger"
)

type bookService struct {
	repo     repository.RepositoryInterface
	queue    TaskEnqueuer
	maxRetry int
	// how long processed tasks stay inspectable in Redis
	retention time.Duration
}

func NewBookService(repo repository.RepositoryInterface, queue TaskEnqueuer, maxRetry int, retention time.Duration) ServiceInterface {
	return &bookService{
		repo:      repo,
		queue:     queue,
		maxRetry:  maxRetry,
		retention: retention,
	}
}

// Submit is fire-and-forget: the caller gets a response as soon as the
// task is enqueued, not when the consumer stores the book.
func (s *bookService) Submit(ctx context.Context, req model.SubmitBookRequest) (model.ValidationErrors, error) {
	if errs := req.Validate(); len(errs) > 0 {
		return errs, nil
	}

	payload, err := json.Marshal(req.ToPayload())
	if err != nil {
		return nil, fmt.Errorf("marshal submission: %w", err)
	}

	task := asynq.NewTask(shared.TypeStoreBook, payload)

	info, err := s.queue.EnqueueContext(
		ctx,
		task,
		asynq.Queue(shared.QueueCatalog),
		asynq.MaxRetry(s.maxRetry),
		asynq.Timeout(30*time.Second),
		asynq.Retention(s.retention),
	)
	if err != nil {
		logger.Error("Failed to enqueue book submission", err)
		return nil, model.ErrPublishFailed
	}

	logger.Info("Enqueued book submission", map[string]interface{}{
		"task_id": info.ID,
		"queue":   info.Queue,
		"title":   req.Title,
	})

	return nil, nil
}

func (s *bookService) List(ctx context.Context) ([]model.BookWithAuthor, error) {
	return s.repo.ListBooksWithAuthors(ctx)
}
