package llm

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/abrar/astrolearn/internal/store"
)

// loggingProvider wraps a Provider and records every request in the
// llm_requests table.
type loggingProvider struct {
	inner        Provider
	providerName string
	repo         store.LLMRepo
}

// WithLogging wraps a provider so each request's token usage, latency
// and outcome are persisted via repo.
func WithLogging(inner Provider, providerName string, repo store.LLMRepo) Provider {
	return &loggingProvider{inner: inner, providerName: providerName, repo: repo}
}

func (l *loggingProvider) ModelID() string { return l.inner.ModelID() }

func (l *loggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)
	latency := time.Since(start)

	data := store.LLMRequestData{
		Provider:  l.providerName,
		Model:     l.inner.ModelID(),
		Purpose:   PurposeFrom(ctx),
		LatencyMs: latency.Milliseconds(),
		Success:   err == nil,
	}
	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	if logErr := l.repo.AppendRequest(ctx, data); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log LLM request: %v\n", logErr)
	}

	return resp, err
}
