package model

import (
	"time"

	"github.com/google/uuid"
)

// Author is created lazily the first time a submission mentions a new
// name. Name carries a unique index so concurrent consumers resolve to
// the same row.
type Author struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type Book struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Pages       int       `json:"pages" db:"pages"`
	ReleaseDate time.Time `json:"release_date" db:"release_date"`
	AuthorID    uuid.UUID `json:"author_id" db:"author_id"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// BookWithAuthor is the list endpoint row: book joined with its
// author's name, release date already formatted as YYYY-MM-DD.
type BookWithAuthor struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	Pages       int    `json:"pages"`
	ReleaseDate string `json:"releaseDate"`
}
