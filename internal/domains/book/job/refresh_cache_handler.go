package job

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"

	"book-catalog/internal/domains/book/repository"
	"book-catalog/pkg/logger"
)

// RefreshCacheHandler rebuilds the book list cache on a schedule so
// reads stay warm even when nothing was submitted for a while.
type RefreshCacheHandler struct {
	repo repository.RepositoryInterface
}

func NewRefreshCacheHandler(repo repository.RepositoryInterface) *RefreshCacheHandler {
	return &RefreshCacheHandler{repo: repo}
}

func (h *RefreshCacheHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	if err := h.repo.WarmListCache(ctx); err != nil {
		return fmt.Errorf("warm list cache: %w", err)
	}

	logger.Info("Refreshed book list cache", nil)

	return nil
}
