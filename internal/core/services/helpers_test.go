package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/docchat-labs/docchat-cli/internal/core/domain"
)

// fakeClock returns a pinned time.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

// seqIDGenerator yields deterministic id-1, id-2, ... identifiers.
type seqIDGenerator struct {
	n int
}

func (g *seqIDGenerator) NewID() string {
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

// stubQueryClient records the last Ask call and returns a canned result.
// The optional observe hook runs inside Ask, before returning, so tests
// can inspect or block the in-flight state.
type stubQueryClient struct {
	answer  *domain.Answer
	err     error
	observe func()

	calls        int
	lastAPIKey   string
	lastDocs     []domain.Document
	lastQuestion string
}

func (c *stubQueryClient) Ask(
	_ context.Context, apiKey string, documents []domain.Document, question string,
) (*domain.Answer, error) {
	c.calls++
	c.lastAPIKey = apiKey
	c.lastDocs = documents
	c.lastQuestion = question
	if c.observe != nil {
		c.observe()
	}
	if c.err != nil {
		return nil, c.err
	}
	return c.answer, nil
}

// errSetStore wraps a store and fails every Set.
type errSetStore struct {
	inner interface {
		Get(ctx context.Context, key string) (string, bool, error)
		Set(ctx context.Context, key, value string) error
		Delete(ctx context.Context, key string) error
	}
}

func (s *errSetStore) Get(ctx context.Context, key string) (string, bool, error) {
	return s.inner.Get(ctx, key)
}

func (s *errSetStore) Set(context.Context, string, string) error {
	return errors.New("disk full")
}

func (s *errSetStore) Delete(ctx context.Context, key string) error {
	return s.inner.Delete(ctx, key)
}

// stubExtractor is a fixed-output extractor for pipeline tests.
type stubExtractor struct {
	mediaTypes []string
	extensions []string
	text       string
	err        error
	verbatim   bool
}

func (e *stubExtractor) SupportedMediaTypes() []string {
	return e.mediaTypes
}

func (e *stubExtractor) SupportedExtensions() []string {
	return e.extensions
}

func (e *stubExtractor) Extract(_ context.Context, data []byte) (string, error) {
	if e.err != nil {
		return "", e.err
	}
	if e.verbatim {
		return string(data), nil
	}
	return e.text, nil
}
