package service

import (
	"context"

	"github.com/hibiken/asynq"

	"book-catalog/internal/domains/book/model"
)

// ServiceInterface is the catalog business logic contract.
type ServiceInterface interface {
	// Submit validates a submission and enqueues it for the consumer.
	// A non-empty ValidationErrors map means the submission was
	// rejected; model.ErrPublishFailed means the queue was unreachable.
	Submit(ctx context.Context, req model.SubmitBookRequest) (model.ValidationErrors, error)

	// List returns the persisted catalog, newest release first.
	List(ctx context.Context) ([]model.BookWithAuthor, error)
}

// TaskEnqueuer is the slice of asynq.Client the service needs;
// narrowed to an interface so tests can fake the queue.
type TaskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}
