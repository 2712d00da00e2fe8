package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"

	"book-catalog/internal/domains/book/model"
	"book-catalog/internal/domains/book/service"
	"book-catalog/internal/shared"
	"book-catalog/internal/shared/middleware"
)

const testAPIKey = "0123456789"

type fakeRepository struct {
	books   []model.BookWithAuthor
	listErr error
}

func (f *fakeRepository) StoreBook(ctx context.Context, payload model.StoreBookPayload, releaseDate time.Time) (*model.Book, error) {
	return &model.Book{Title: payload.Title}, nil
}

func (f *fakeRepository) ListBooksWithAuthors(ctx context.Context) ([]model.BookWithAuthor, error) {
	return f.books, f.listErr
}

func (f *fakeRepository) WarmListCache(ctx context.Context) error {
	return nil
}

type fakeEnqueuer struct {
	enqueued   int
	enqueueErr error
}

func (f *fakeEnqueuer) EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	if f.enqueueErr != nil {
		return nil, f.enqueueErr
	}
	f.enqueued++
	return &asynq.TaskInfo{ID: "task-1", Queue: shared.QueueCatalog}, nil
}

func setupTestRouter(repo *fakeRepository, queue *fakeEnqueuer) *gin.Engine {
	gin.SetMode(gin.TestMode)

	svc := service.NewBookService(repo, queue, 3, 24*time.Hour)
	bookHandler := NewBookHandler(svc)

	router := gin.New()
	router.GET("/books", bookHandler.ListBooks)
	router.POST("/books", middleware.APIKeyAuth(testAPIKey), bookHandler.SubmitBook)

	return router
}

func postBooks(router *gin.Engine, apiKey, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/books", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if apiKey != "" {
		req.Header.Set("X-API-KEY", apiKey)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func TestSubmitBook_Created(t *testing.T) {
	queue := &fakeEnqueuer{}
	router := setupTestRouter(&fakeRepository{}, queue)

	body := `{"title":"The Parent Agency","author":"David Baddiel","pages":59,"releaseDate":"23-09-2004"}`
	rec := postBooks(router, testAPIKey, body)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"status":"Sent!"}`, rec.Body.String())
	assert.Equal(t, 1, queue.enqueued)
}

func TestSubmitBook_WrongAPIKey(t *testing.T) {
	queue := &fakeEnqueuer{}
	router := setupTestRouter(&fakeRepository{}, queue)

	body := `{"title":"The Parent Agency","author":"David Baddiel","pages":59,"releaseDate":"23-09-2004"}`
	rec := postBooks(router, "wrong-key", body)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"Wrong API token provided"}`, rec.Body.String())
	assert.Zero(t, queue.enqueued)
}

func TestSubmitBook_MissingAPIKey(t *testing.T) {
	router := setupTestRouter(&fakeRepository{}, &fakeEnqueuer{})

	rec := postBooks(router, "", `{}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSubmitBook_ValidationErrors(t *testing.T) {
	queue := &fakeEnqueuer{}
	router := setupTestRouter(&fakeRepository{}, queue)

	body := `{"title":"","author":"David Baddiel","pages":1001,"releaseDate":"23-09-2004"}`
	rec := postBooks(router, testAPIKey, body)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t, `{
		"errors": {
			"title": ["This value should not be blank."],
			"pages": ["Pages must be between 0 and 1000 to enter"]
		}
	}`, rec.Body.String())
	assert.Zero(t, queue.enqueued)
}

func TestSubmitBook_MalformedBody(t *testing.T) {
	router := setupTestRouter(&fakeRepository{}, &fakeEnqueuer{})

	rec := postBooks(router, testAPIKey, `{not json`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t, `{"error":"malformed request body"}`, rec.Body.String())
}

func TestSubmitBook_QueueUnavailable(t *testing.T) {
	queue := &fakeEnqueuer{enqueueErr: errors.New("redis: connection refused")}
	router := setupTestRouter(&fakeRepository{}, queue)

	body := `{"title":"The Parent Agency","author":"David Baddiel","pages":59,"releaseDate":"23-09-2004"}`
	rec := postBooks(router, testAPIKey, body)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t, `{"error":"could not queue submission"}`, rec.Body.String())
}

func TestListBooks_ReturnsOrderedCatalog(t *testing.T) {
	repo := &fakeRepository{books: []model.BookWithAuthor{
		{Title: "The Person Controller", Author: "David Baddiel", Pages: 432, ReleaseDate: "2015-09-10"},
		{Title: "The Parent Agency", Author: "David Baddiel", Pages: 59, ReleaseDate: "2004-09-23"},
	}}
	router := setupTestRouter(repo, &fakeEnqueuer{})

	req := httptest.NewRequest(http.MethodGet, "/books", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"data": [
			{"title":"The Person Controller","author":"David Baddiel","pages":432,"releaseDate":"2015-09-10"},
			{"title":"The Parent Agency","author":"David Baddiel","pages":59,"releaseDate":"2004-09-23"}
		]
	}`, rec.Body.String())
}

func TestListBooks_NoAPIKeyRequired(t *testing.T) {
	router := setupTestRouter(&fakeRepository{books: []model.BookWithAuthor{}}, &fakeEnqueuer{})

	req := httptest.NewRequest(http.MethodGet, "/books", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":[]}`, rec.Body.String())
}

func TestListBooks_RepositoryFailure(t *testing.T) {
	repo := &fakeRepository{listErr: errors.New("connection refused")}
	router := setupTestRouter(repo, &fakeEnqueuer{})

	req := httptest.NewRequest(http.MethodGet, "/books", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t, `{"error":"could not load books"}`, rec.Body.String())
}
