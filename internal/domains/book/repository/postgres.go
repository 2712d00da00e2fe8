package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"book-catalog/internal/domains/book/model"
	"book-catalog/pkg/cache"
	"book-catalog/pkg/database"
)

// postgresRepository implements RepositoryInterface on pgxpool with a
// Redis cache in front of the list query.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) RepositoryInterface {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

const (
	booksListCacheKey = "books:list"
	listCacheTTL      = 5 * time.Minute

	// ISO-8601 date used by the list endpoint.
	listDateLayout = "2006-01-02"
)

// StoreBook persists one consumed submission. Author resolution and the
// book insert share a transaction so a failed insert never leaves a
// half-created record visible.
func (r *postgresRepository) StoreBook(ctx context.Context, payload model.StoreBookPayload, releaseDate time.Time) (*model.Book, error) {
	book, err := database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*model.Book, error) {
		author, err := upsertAuthor(ctx, tx, payload.Author)
		if err != nil {
			return nil, err
		}

		return insertBook(ctx, tx, payload, releaseDate, author)
	})
	if err != nil {
		return nil, err
	}

	// The list changed; drop the cached copy.
	_ = r.cache.Delete(ctx, booksListCacheKey)

	return book, nil
}

// upsertAuthor is the atomic get-or-create. The DO UPDATE arm makes
// RETURNING yield the existing row on conflict, so two consumers racing
// on a new name both get the same id.
func upsertAuthor(ctx context.Context, tx pgx.Tx, name string) (*model.Author, error) {
	query := `
        INSERT INTO authors (name)
        VALUES ($1)
        ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
        RETURNING id, name, created_at
    `

	var author model.Author
	err := tx.QueryRow(ctx, query, name).Scan(
		&author.ID,
		&author.Name,
		&author.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert author: %w", err)
	}

	return &author, nil
}

func insertBook(ctx context.Context, tx pgx.Tx, payload model.StoreBookPayload, releaseDate time.Time, author *model.Author) (*model.Book, error) {
	query := `
        INSERT INTO books (title, pages, release_date, author_id)
        VALUES ($1, $2, $3, $4)
        RETURNING id, title, pages, release_date, author_id, created_at
    `

	var book model.Book
	err := tx.QueryRow(
		ctx,
		query,
		payload.Title,
		payload.Pages,
		releaseDate,
		author.ID,
	).Scan(
		&book.ID,
		&book.Title,
		&book.Pages,
		&book.ReleaseDate,
		&book.AuthorID,
		&book.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert book: %w", err)
	}

	return &book, nil
}

// ListBooksWithAuthors serves the list endpoint, cache-aside.
func (r *postgresRepository) ListBooksWithAuthors(ctx context.Context) ([]model.BookWithAuthor, error) {
	var cached []model.BookWithAuthor
	if found, err := r.cache.Get(ctx, booksListCacheKey, &cached); err == nil && found {
		return cached, nil
	}

	books, err := r.queryBooksWithAuthors(ctx)
	if err != nil {
		return nil, err
	}

	_ = r.cache.Set(ctx, booksListCacheKey, books, listCacheTTL)

	return books, nil
}

// WarmListCache rebuilds the cached list from the database.
func (r *postgresRepository) WarmListCache(ctx context.Context) error {
	books, err := r.queryBooksWithAuthors(ctx)
	if err != nil {
		return err
	}

	return r.cache.Set(ctx, booksListCacheKey, books, listCacheTTL)
}

func (r *postgresRepository) queryBooksWithAuthors(ctx context.Context) ([]model.BookWithAuthor, error) {
	query := `
        SELECT b.title, a.name, b.pages, b.release_date
        FROM books b
        JOIN authors a ON a.id = b.author_id
        ORDER BY b.release_date DESC, b.created_at DESC
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query books: %w", err)
	}
	defer rows.Close()

	books := []model.BookWithAuthor{}
	for rows.Next() {
		var (
			row         model.BookWithAuthor
			releaseDate time.Time
		)
		if err := rows.Scan(&row.Title, &row.Author, &row.Pages, &releaseDate); err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}

		row.ReleaseDate = releaseDate.Format(listDateLayout)
		books = append(books, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating books: %w", err)
	}

	return books, nil
}
