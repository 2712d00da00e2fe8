package model

import (
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ReleaseDateLayout is the submission date format (dd-mm-yyyy).
const ReleaseDateLayout = "02-01-2006"

// Validation messages, part of the public API contract.
const (
	MsgBlank         = "This value should not be blank."
	MsgTooLong       = "This value is too long. It should have 30 characters or less."
	MsgTitleSymbols  = "Allowed symbols: azAz0-9."
	MsgAuthorSymbols = "Allowed symbols must be azAz0-9. to enter"
	MsgPagesRange    = "Pages must be between 0 and 1000 to enter"
	MsgDateFormat    = "Date format must be dd-mm-yyyy to enter"
	MsgInvalidDate   = "Invalid date."
	MsgDateRange     = "Release date should be +/- 100 years"
)

var (
	allowedSymbols     = regexp.MustCompile(`^[A-Za-z0-9. ]+$`)
	releaseDatePattern = regexp.MustCompile(`^\d{2}-\d{2}-\d{4}$`)
)

// SubmitBookRequest is the untrusted POST /books payload.
// Pages is a pointer so a missing field is distinguishable from 0.
type SubmitBookRequest struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	Pages       *int   `json:"pages"`
	ReleaseDate string `json:"releaseDate"`
}

// ValidationErrors maps field names to ordered error messages.
// An empty map means the submission is valid.
type ValidationErrors map[string][]string

func (v ValidationErrors) add(field, message string) {
	v[field] = append(v[field], message)
}

// Validate checks every field rule and collects messages instead of
// failing fast. Title, author and pages rules run independently so a
// field can accumulate several messages; the release date checks run
// as a short-circuiting sequence (format, calendar validity, range)
// and record only the first failure.
func (r SubmitBookRequest) Validate() ValidationErrors {
	errs := ValidationErrors{}

	titleRules := []validation.Rule{
		validation.Required.Error(MsgBlank),
		validation.RuneLength(0, 30).Error(MsgTooLong),
		validation.Match(allowedSymbols).Error(MsgTitleSymbols),
	}
	for _, rule := range titleRules {
		if err := validation.Validate(r.Title, rule); err != nil {
			errs.add("title", err.Error())
		}
	}

	authorRules := []validation.Rule{
		validation.Required.Error(MsgBlank),
		validation.RuneLength(0, 30).Error(MsgTooLong),
		validation.Match(allowedSymbols).Error(MsgAuthorSymbols),
	}
	for _, rule := range authorRules {
		if err := validation.Validate(r.Author, rule); err != nil {
			errs.add("author", err.Error())
		}
	}

	if r.Pages == nil {
		errs.add("pages", MsgBlank)
	} else if err := validation.Validate(*r.Pages,
		validation.Min(0).Error(MsgPagesRange),
		validation.Max(1000).Error(MsgPagesRange),
	); err != nil {
		errs.add("pages", MsgPagesRange)
	}

	switch {
	case r.ReleaseDate == "":
		errs.add("releaseDate", MsgBlank)
	case !releaseDatePattern.MatchString(r.ReleaseDate):
		errs.add("releaseDate", MsgDateFormat)
	default:
		parsed, err := time.Parse(ReleaseDateLayout, r.ReleaseDate)
		if err != nil || parsed.Format(ReleaseDateLayout) != r.ReleaseDate {
			// Rejects calendar-impossible dates like 99-02-2022.
			errs.add("releaseDate", MsgInvalidDate)
		} else if yearsApart(parsed, time.Now()) > 100 {
			errs.add("releaseDate", MsgDateRange)
		}
	}

	return errs
}

// ToPayload converts a validated submission into the queue payload.
func (r SubmitBookRequest) ToPayload() StoreBookPayload {
	pages := 0
	if r.Pages != nil {
		pages = *r.Pages
	}

	return StoreBookPayload{
		Title:       r.Title,
		Author:      r.Author,
		Pages:       pages,
		ReleaseDate: r.ReleaseDate,
	}
}

// yearsApart returns the number of whole years between two dates,
// regardless of order.
func yearsApart(a, b time.Time) int {
	if a.After(b) {
		a, b = b, a
	}

	years := b.Year() - a.Year()
	if a.AddDate(years, 0, 0).After(b) {
		years--
	}

	return years
}
