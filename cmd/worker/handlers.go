package main

import (
	"github.com/hibiken/asynq"

	bookJob "book-catalog/internal/domains/book/job"
	"book-catalog/internal/shared"
	"book-catalog/pkg/container"
)

// HandlerRegistry holds all job handlers.
type HandlerRegistry struct {
	storeBook    *bookJob.StoreBookHandler
	refreshCache *bookJob.RefreshCacheHandler
}

// initializeHandlers creates all job handlers with their dependencies.
func initializeHandlers(c *container.Container) *HandlerRegistry {
	return &HandlerRegistry{
		storeBook:    bookJob.NewStoreBookHandler(c.BookRepo),
		refreshCache: bookJob.NewRefreshCacheHandler(c.BookRepo),
	}
}

// RegisterHandlers registers all handlers with the mux.
func (h *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	mux.HandleFunc(shared.TypeStoreBook, h.storeBook.ProcessTask)
	mux.HandleFunc(shared.TypeRefreshCatalogCache, h.refreshCache.ProcessTask)
}
