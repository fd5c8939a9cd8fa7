package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// Document field validation errors. Several may be joined into a
	// single error when more than one field is invalid.

	// ErrTitleRequired indicates the title is empty after trimming.
	ErrTitleRequired = errors.New("title is required")

	// ErrTitleTooLong indicates the trimmed title exceeds MaxTitleLength.
	ErrTitleTooLong = fmt.Errorf("title exceeds %d characters", MaxTitleLength)

	// ErrContentRequired indicates the content is empty after trimming.
	ErrContentRequired = errors.New("content is required")

	// ErrContentTooLong indicates the trimmed content exceeds MaxContentLength.
	ErrContentTooLong = fmt.Errorf("content exceeds %d characters", MaxContentLength)

	// File ingestion errors.

	// ErrFileTooLarge indicates the uploaded file exceeds MaxFileSize bytes.
	ErrFileTooLarge = errors.New("file exceeds 1 MiB")

	// ErrUnsupportedFileType indicates neither the media type nor the
	// file extension is on the allow-list.
	ErrUnsupportedFileType = errors.New("unsupported file type")

	// ErrReadFailure indicates a low-level decode or parse fault,
	// distinct from the policy failures above.
	ErrReadFailure = errors.New("failed to read file")

	// Import errors.

	// ErrNotAJSONFile indicates the import file does not carry a .json extension.
	ErrNotAJSONFile = errors.New("not a JSON file")

	// ErrParseFailure indicates the import payload is not valid JSON.
	ErrParseFailure = errors.New("invalid JSON")

	// ErrNotAnArray indicates the import payload's top level is not a JSON array.
	ErrNotAnArray = errors.New("top level is not an array")

	// ErrNoValidDocuments indicates no array element survived validation.
	ErrNoValidDocuments = errors.New("no valid documents found")

	// Chat validation errors. These block a send before any message is
	// appended and before any network call.

	// ErrEmptyQuestion indicates the question is empty after trimming.
	ErrEmptyQuestion = errors.New("question is empty")

	// ErrInvalidAPIKeyFormat indicates the API key is missing or does not
	// start with the required "sk-" prefix.
	ErrInvalidAPIKeyFormat = errors.New("API key must start with sk-")

	// ErrNoDocumentsSelected indicates the selection set is empty.
	ErrNoDocumentsSelected = errors.New("no documents selected")

	// ErrSendInFlight indicates a question is already being processed.
	// Exactly one question may be in flight at a time.
	ErrSendInFlight = errors.New("a question is already in flight")
)

// RemoteError is a failure reported by the question-answering service,
// either a non-2xx response or a transport fault. The Detail string is
// surfaced to the user verbatim and is never appended to chat history.
type RemoteError struct {
	// StatusCode is the HTTP status, or 0 for transport failures.
	StatusCode int

	// Detail is the human-readable error message.
	Detail string
}

// Error returns the detail message.
func (e *RemoteError) Error() string {
	return e.Detail
}
