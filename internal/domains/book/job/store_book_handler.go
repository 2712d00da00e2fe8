package job

import (
	"context"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"book-catalog/internal/domains/book/model"
	"book-catalog/internal/domains/book/repository"
	"book-catalog/internal/shared/utils"
	"book-catalog/pkg/logger"
)

// StoreBookHandler consumes catalog:store_book tasks: parse the
// payload, resolve the author and persist the book in one transaction.
// Returning nil acks the task; returning an error leaves it for broker
// redelivery. Errors wrapping asynq.SkipRetry go straight to the
// archive since redelivering a malformed payload can never succeed.
type StoreBookHandler struct {
	repo repository.RepositoryInterface
}

func NewStoreBookHandler(repo repository.RepositoryInterface) *StoreBookHandler {
	return &StoreBookHandler{repo: repo}
}

func (h *StoreBookHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload model.StoreBookPayload
	if err := utils.UnmarshalTask(t, &payload); err != nil {
		logger.Error("Discarding unparseable book message", err)
		return fmt.Errorf("unmarshal payload: %v: %w", err, asynq.SkipRetry)
	}

	releaseDate, err := time.Parse(model.ReleaseDateLayout, payload.ReleaseDate)
	if err != nil {
		logger.Error("Discarding book message with invalid release date", err)
		return fmt.Errorf("parse release date %q: %v: %w", payload.ReleaseDate, err, asynq.SkipRetry)
	}

	book, err := h.repo.StoreBook(ctx, payload, releaseDate)
	if err != nil {
		// Transaction already rolled back; no ack, broker redelivers.
		return fmt.Errorf("store book %q: %w", payload.Title, err)
	}

	logger.Info("Stored book", map[string]interface{}{
		"title":        book.Title,
		"author":       payload.Author,
		"release_date": book.ReleaseDate.Format("2006-01-02"),
	})

	return nil
}
