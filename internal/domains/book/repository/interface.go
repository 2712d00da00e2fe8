package repository

import (
	"context"
	"time"

	"book-catalog/internal/domains/book/model"
)

// RepositoryInterface is the storage contract for the catalog domain.
type RepositoryInterface interface {
	// StoreBook resolves-or-creates the author and inserts the book in
	// one transaction. The author upsert is atomic, so concurrent
	// consumers storing the same new author name share one row.
	StoreBook(ctx context.Context, payload model.StoreBookPayload, releaseDate time.Time) (*model.Book, error)

	// ListBooksWithAuthors returns every book joined with its author's
	// name, most recent release first.
	ListBooksWithAuthors(ctx context.Context) ([]model.BookWithAuthor, error)

	// WarmListCache rebuilds the list cache from the database.
	WarmListCache(ctx context.Context) error
}
