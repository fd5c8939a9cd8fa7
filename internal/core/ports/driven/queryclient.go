package driven

import (
	"context"

	"github.com/docchat-labs/docchat-cli/internal/core/domain"
)

// QueryClient performs one question-answering call against the remote
// service. It is stateless: exactly one request per invocation, no
// retry and no client-side queueing.
type QueryClient interface {
	// Ask submits the question together with the full content of every
	// selected document. Non-2xx responses and transport faults are
	// returned as *domain.RemoteError.
	Ask(ctx context.Context, apiKey string, documents []domain.Document, question string) (*domain.Answer, error)
}
