package domain

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

// Field length bounds, measured in Unicode code points after trimming.
const (
	// MaxTitleLength is the maximum trimmed title length.
	MaxTitleLength = 100

	// MaxContentLength is the maximum trimmed content length.
	MaxContentLength = 50000
)

// MaxFileSize is the upload size ceiling in bytes (1 MiB, inclusive).
const MaxFileSize = 1 << 20

// Document is a stored corpus entry. Documents are never mutated in
// place: they are created, exported, and deleted as whole values.
type Document struct {
	// ID is the unique identifier, assigned at creation and never reused.
	ID string `json:"id"`

	// Title is the human-readable title, 1..100 characters after trimming.
	Title string `json:"title"`

	// Content is the full text, 1..50,000 characters after trimming.
	Content string `json:"content"`

	// CreatedAt is when the document entered the store. Immutable.
	CreatedAt time.Time `json:"createdAt"`
}

// DraftDocument is the (title, content) pair produced by file ingestion
// or typed by the user, before it is committed to the store.
type DraftDocument struct {
	// Title is the suggested title. The caller may still edit it, so it
	// is re-validated at add time.
	Title string

	// Content is the extracted or typed text.
	Content string
}

// RawFile is an uploaded file before ingestion.
type RawFile struct {
	// Name is the original filename, including extension.
	Name string

	// MediaType is the declared media type (e.g. "text/plain").
	// May be empty when the host did not provide one.
	MediaType string

	// Data is the raw file bytes.
	Data []byte
}

// ValidateDraft checks a trimmed (title, content) pair against the
// length bounds. All violations are reported together via errors.Join;
// callers test individual failures with errors.Is.
func ValidateDraft(title, content string) error {
	var errs []error

	title = strings.TrimSpace(title)
	switch {
	case title == "":
		errs = append(errs, ErrTitleRequired)
	case utf8.RuneCountInString(title) > MaxTitleLength:
		errs = append(errs, ErrTitleTooLong)
	}

	content = strings.TrimSpace(content)
	switch {
	case content == "":
		errs = append(errs, ErrContentRequired)
	case utf8.RuneCountInString(content) > MaxContentLength:
		errs = append(errs, ErrContentTooLong)
	}

	return errors.Join(errs...)
}
