package explain

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abrar/astrolearn/internal/llm"
)

func TestExplainTopic(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: "A black hole is a region of space where gravity is extreme."},
	)
	svc := NewService(mock, DefaultConfig())

	got, err := svc.ExplainTopic(context.Background(), "Black Holes")
	require.NoError(t, err)
	assert.Equal(t, "A black hole is a region of space where gravity is extreme.", got)

	require.Len(t, mock.Calls, 1)
	assert.Contains(t, mock.Calls[0].Prompt, "Black Holes")
	assert.NotEmpty(t, mock.Calls[0].System)
	assert.Equal(t, DefaultConfig().MaxTokens, mock.Calls[0].MaxTokens)
}

func TestExplainTopic_EmptyName(t *testing.T) {
	mock := llm.NewMockProvider()
	svc := NewService(mock, DefaultConfig())

	_, err := svc.ExplainTopic(context.Background(), "   ")
	require.Error(t, err)
	assert.Equal(t, 0, mock.CallCount())
}

func TestExplainTopic_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider() // Empty queue fails.
	svc := NewService(mock, DefaultConfig())

	_, err := svc.ExplainTopic(context.Background(), "Nebulae")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "fetch explanation"))
}

func TestAsk(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: "  Saturn's rings are mostly water ice.  "},
	)
	svc := NewService(mock, DefaultConfig())

	got, err := svc.Ask(context.Background(), "What are Saturn's rings made of?")
	require.NoError(t, err)
	assert.Equal(t, "Saturn's rings are mostly water ice.", got)

	require.Len(t, mock.Calls, 1)
	assert.Contains(t, mock.Calls[0].Prompt, "Saturn's rings")
}

func TestAsk_EmptyQuestion(t *testing.T) {
	mock := llm.NewMockProvider()
	svc := NewService(mock, DefaultConfig())

	_, err := svc.Ask(context.Background(), "")
	require.Error(t, err)
	assert.Equal(t, 0, mock.CallCount())
}
