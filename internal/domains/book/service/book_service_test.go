package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"book-catalog/internal/domains/book/model"
	"book-catalog/internal/shared"
)

type fakeRepository struct {
	books   []model.BookWithAuthor
	listErr error
}

func (f *fakeRepository) StoreBook(ctx context.Context, payload model.StoreBookPayload, releaseDate time.Time) (*model.Book, error) {
	return &model.Book{Title: payload.Title, Pages: payload.Pages, ReleaseDate: releaseDate}, nil
}

func (f *fakeRepository) ListBooksWithAuthors(ctx context.Context) ([]model.BookWithAuthor, error) {
	return f.books, f.listErr
}

func (f *fakeRepository) WarmListCache(ctx context.Context) error {
	return nil
}

type fakeEnqueuer struct {
	tasks      []*asynq.Task
	enqueueErr error
}

func (f *fakeEnqueuer) EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	if f.enqueueErr != nil {
		return nil, f.enqueueErr
	}
	f.tasks = append(f.tasks, task)
	return &asynq.TaskInfo{ID: "task-1", Queue: shared.QueueCatalog}, nil
}

func intPtr(v int) *int {
	return &v
}

func validSubmission() model.SubmitBookRequest {
	return model.SubmitBookRequest{
		Title:       "The Parent Agency",
		Author:      "David Baddiel",
		Pages:       intPtr(59),
		ReleaseDate: "23-09-2004",
	}
}

func TestSubmit_EnqueuesValidSubmission(t *testing.T) {
	queue := &fakeEnqueuer{}
	svc := NewBookService(&fakeRepository{}, queue, 3, 24*time.Hour)

	errs, err := svc.Submit(context.Background(), validSubmission())

	require.NoError(t, err)
	assert.Empty(t, errs)
	require.Len(t, queue.tasks, 1)

	task := queue.tasks[0]
	assert.Equal(t, shared.TypeStoreBook, task.Type())

	var payload model.StoreBookPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &payload))
	assert.Equal(t, model.StoreBookPayload{
		Title:       "The Parent Agency",
		Author:      "David Baddiel",
		Pages:       59,
		ReleaseDate: "23-09-2004",
	}, payload)
}

func TestSubmit_InvalidSubmissionNeverReachesQueue(t *testing.T) {
	queue := &fakeEnqueuer{}
	svc := NewBookService(&fakeRepository{}, queue, 3, 24*time.Hour)

	req := validSubmission()
	req.Title = ""

	errs, err := svc.Submit(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, []string{model.MsgBlank}, errs["title"])
	assert.Empty(t, queue.tasks)
}

func TestSubmit_EnqueueFailure(t *testing.T) {
	queue := &fakeEnqueuer{enqueueErr: errors.New("redis: connection refused")}
	svc := NewBookService(&fakeRepository{}, queue, 3, 24*time.Hour)

	errs, err := svc.Submit(context.Background(), validSubmission())

	assert.Empty(t, errs)
	assert.ErrorIs(t, err, model.ErrPublishFailed)
}

func TestList_DelegatesToRepository(t *testing.T) {
	books := []model.BookWithAuthor{
		{Title: "The Parent Agency", Author: "David Baddiel", Pages: 59, ReleaseDate: "2004-09-23"},
	}
	svc := NewBookService(&fakeRepository{books: books}, &fakeEnqueuer{}, 3, 24*time.Hour)

	got, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, books, got)
}
