package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int {
	return &v
}

func validSubmission() SubmitBookRequest {
	return SubmitBookRequest{
		Title:       "The Parent Agency",
		Author:      "David Baddiel",
		Pages:       intPtr(59),
		ReleaseDate: "23-09-2004",
	}
}

func TestValidate_ValidSubmission(t *testing.T) {
	errs := validSubmission().Validate()

	assert.Empty(t, errs)
}

func TestValidate_Title(t *testing.T) {
	t.Run("blank", func(t *testing.T) {
		req := validSubmission()
		req.Title = ""

		errs := req.Validate()

		assert.Equal(t, []string{MsgBlank}, errs["title"])
		assert.Len(t, errs, 1)
	})

	t.Run("forbidden symbols", func(t *testing.T) {
		req := validSubmission()
		req.Title = "test@!%"

		errs := req.Validate()

		assert.Equal(t, []string{MsgTitleSymbols}, errs["title"])
	})

	t.Run("too long", func(t *testing.T) {
		req := validSubmission()
		req.Title = "test123 test123 test123 test123 test123"

		errs := req.Validate()

		assert.Equal(t, []string{MsgTooLong}, errs["title"])
	})

	t.Run("messages accumulate per field", func(t *testing.T) {
		req := validSubmission()
		req.Title = "way too long for a title @ with forbidden symbols"

		errs := req.Validate()

		assert.Equal(t, []string{MsgTooLong, MsgTitleSymbols}, errs["title"])
	})
}

func TestValidate_Author(t *testing.T) {
	t.Run("blank", func(t *testing.T) {
		req := validSubmission()
		req.Author = ""

		errs := req.Validate()

		assert.Equal(t, []string{MsgBlank}, errs["author"])
	})

	t.Run("forbidden symbols uses the author message", func(t *testing.T) {
		req := validSubmission()
		req.Author = "David#Baddiel"

		errs := req.Validate()

		assert.Equal(t, []string{MsgAuthorSymbols}, errs["author"])
	})
}

func TestValidate_Pages(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		req := validSubmission()
		req.Pages = nil

		errs := req.Validate()

		assert.Equal(t, []string{MsgBlank}, errs["pages"])
	})

	t.Run("above range", func(t *testing.T) {
		req := validSubmission()
		req.Pages = intPtr(1001)

		errs := req.Validate()

		assert.Equal(t, []string{MsgPagesRange}, errs["pages"])
	})

	t.Run("below range", func(t *testing.T) {
		req := validSubmission()
		req.Pages = intPtr(-1)

		errs := req.Validate()

		assert.Equal(t, []string{MsgPagesRange}, errs["pages"])
	})

	t.Run("bounds are inclusive", func(t *testing.T) {
		for _, pages := range []int{0, 1000} {
			req := validSubmission()
			req.Pages = intPtr(pages)

			assert.Empty(t, req.Validate())
		}
	})
}

func TestValidate_ReleaseDate(t *testing.T) {
	t.Run("blank", func(t *testing.T) {
		req := validSubmission()
		req.ReleaseDate = ""

		errs := req.Validate()

		assert.Equal(t, []string{MsgBlank}, errs["releaseDate"])
	})

	t.Run("wrong format", func(t *testing.T) {
		req := validSubmission()
		req.ReleaseDate = "12/22/2022"

		errs := req.Validate()

		assert.Equal(t, []string{MsgDateFormat}, errs["releaseDate"])
	})

	t.Run("impossible calendar date", func(t *testing.T) {
		req := validSubmission()
		req.ReleaseDate = "99-02-2022"

		errs := req.Validate()

		assert.Equal(t, []string{MsgInvalidDate}, errs["releaseDate"])
	})

	t.Run("more than 100 years in the past", func(t *testing.T) {
		req := validSubmission()
		req.ReleaseDate = "01-12-1900"

		errs := req.Validate()

		assert.Equal(t, []string{MsgDateRange}, errs["releaseDate"])
	})

	t.Run("more than 100 years in the future", func(t *testing.T) {
		req := validSubmission()
		req.ReleaseDate = time.Now().AddDate(101, 0, 1).Format(ReleaseDateLayout)

		errs := req.Validate()

		assert.Equal(t, []string{MsgDateRange}, errs["releaseDate"])
	})

	t.Run("only the first failing date check is reported", func(t *testing.T) {
		req := validSubmission()
		req.ReleaseDate = "99-99-9999"

		errs := req.Validate()

		assert.Equal(t, []string{MsgInvalidDate}, errs["releaseDate"])
	})
}

func TestYearsApart(t *testing.T) {
	base := time.Date(2020, 6, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, yearsApart(base, base))
	assert.Equal(t, 0, yearsApart(base, base.AddDate(0, 11, 0)))
	assert.Equal(t, 1, yearsApart(base, base.AddDate(1, 0, 0)))
	assert.Equal(t, 99, yearsApart(base, base.AddDate(100, 0, -1)))
	// Order must not matter.
	assert.Equal(t, 5, yearsApart(base.AddDate(5, 0, 0), base))
}

func TestToPayload(t *testing.T) {
	payload := validSubmission().ToPayload()

	assert.Equal(t, StoreBookPayload{
		Title:       "The Parent Agency",
		Author:      "David Baddiel",
		Pages:       59,
		ReleaseDate: "23-09-2004",
	}, payload)
}
